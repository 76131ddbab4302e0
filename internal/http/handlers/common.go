package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"transportes/internal/domain"
	"transportes/internal/services"
	"transportes/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondError sends a plain error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	code := "bad_request"
	if status >= 500 {
		code = "internal_error"
	}
	if err != nil && status < 500 {
		message = message + ": " + err.Error()
	}
	respondError(c, status, code, message)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		RespondError(c, http.StatusBadRequest, "cuerpo vacio", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		if verr := services.BindingError(err); verr != nil {
			RespondDomainError(c, "payload", verr)
			return false
		}
		RespondError(c, http.StatusBadRequest, "payload invalido", err)
		return false
	}
	return true
}

// pathID reads :id and answers 400 when it is not a positive integer.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, ok := utils.ParseID(c.Param("id"))
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid_id", "id de "+name+" invalido")
		return 0, false
	}
	return id, true
}

// queryID parses an optional numeric filter; invalid values are ignored.
func queryID(c *gin.Context, key string) int64 {
	id, _ := utils.ParseID(c.Query(key))
	return id
}

// listParams reads ?q=&page=&limit=.
func listParams(c *gin.Context) domain.ListParams {
	page, _ := strconv.Atoi(strings.TrimSpace(c.Query("page")))
	limit, _ := strconv.Atoi(strings.TrimSpace(c.Query("limit")))
	return domain.ListParams{Q: c.Query("q"), Page: page, Limit: limit}.Normalize()
}

func queryBool(c *gin.Context, key string) bool {
	b, _ := strconv.ParseBool(strings.TrimSpace(c.Query(key)))
	return b
}

func created(c *gin.Context, id int64, message string) {
	c.JSON(http.StatusCreated, gin.H{"message": message, "id": id})
}

func respondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"message": message})
}

func sendPDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
