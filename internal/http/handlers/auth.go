package handlers

import (
	"errors"
	"net/http"

	"transportes/internal/domain"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func authService(c *gin.Context) services.AuthService {
	return services.AuthService{
		Repo:      repositories.UsuarioRepository{},
		Secret:    cfg().jwtSecret,
		Clock:     cfg().clock,
		RequestID: middleware.GetRequestID(c),
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, user, err := authService(c).Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrCredenciales) {
			respondError(c, http.StatusUnauthorized, "invalid_credentials", err.Error())
			return
		}
		RespondDomainError(c, "auth", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// POST /api/auth/register always assigns the default rol.
func Register(c *gin.Context) {
	var req services.UsuarioInput
	if !BindJSONOrError(c, &req) {
		return
	}
	u, err := authService(c).Register(c.Request.Context(), req)
	if err != nil {
		RespondDomainError(c, "auth", err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// GET /api/auth/me echoes the session claims.
func Me(c *gin.Context) {
	c.JSON(http.StatusOK, domain.RequestContext{
		UserID:   c.GetInt64(middleware.CtxUserID),
		Rol:      c.GetString(middleware.CtxUserRole),
		Permisos: c.GetStringSlice(middleware.CtxPermisos),
	})
}
