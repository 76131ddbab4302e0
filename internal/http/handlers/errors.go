package handlers

import (
	"errors"
	"net/http"

	"transportes/internal/domain"
	"transportes/internal/http/middleware"
	"transportes/internal/utils"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the payload of every failed request.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Error:     message,
		Code:      code,
		Message:   message,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Internal details are logged, not returned.
func RespondDomainError(c *gin.Context, module string, err error) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", err.Error())
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error())
	default:
		utils.LogError(middleware.GetRequestID(c), module, c.Request.Method+" "+c.FullPath(), err)
		msg := "ocurrio un error interno"
		var ie domain.InternalError
		if errors.As(err, &ie) && ie.Msg != "" {
			msg = ie.Msg
		}
		respondError(c, http.StatusInternalServerError, "internal_error", msg)
	}
}
