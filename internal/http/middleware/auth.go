package middleware

import (
	"net/http"
	"strings"

	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
	CtxPermisos = "permisos"

	PermisoAdmin = "admin"
)

func abort(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      message,
		"code":       code,
		"message":    message,
		"request_id": GetRequestID(c),
	})
}

// Auth validates the Bearer token and stores user_id, rol and permisos in the context.
// With disabled=true every request runs as an admin, for local development.
func Auth(secret []byte, disabled bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		if disabled {
			c.Set(CtxUserID, int64(0))
			c.Set(CtxUserRole, PermisoAdmin)
			c.Set(CtxPermisos, []string{PermisoAdmin})
			c.Next()
			return
		}

		header := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "token requerido")
			return
		}

		claims, err := services.ParseToken(secret, strings.TrimSpace(raw))
		if err != nil {
			abort(c, http.StatusUnauthorized, "unauthorized", "token invalido o expirado")
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserRole, strings.ToLower(claims.Rol))
		c.Set(CtxPermisos, claims.Permisos)
		c.Next()
	}
}

// HasPermiso reports whether the authenticated user holds code. admin grants everything.
func HasPermiso(c *gin.Context, code string) bool {
	perms := c.GetStringSlice(CtxPermisos)
	for _, p := range perms {
		if p == code || p == PermisoAdmin {
			return true
		}
	}
	return false
}

// RequirePermiso gates a route group behind one permission code.
func RequirePermiso(code string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxPermisos); !ok {
			abort(c, http.StatusUnauthorized, "unauthorized", "sesion no encontrada")
			return
		}
		if !HasPermiso(c, code) {
			abort(c, http.StatusForbidden, "forbidden", "permiso requerido: "+code)
			return
		}
		c.Next()
	}
}

// RequireRoles only lets through users whose rol is in allowedRoles.
//
//	r.GET("/admin", RequireRoles("admin"), handler)
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
	}

	return func(c *gin.Context) {
		role := c.GetString(CtxUserRole)
		if role == "" {
			abort(c, http.StatusUnauthorized, "unauthorized", "rol no encontrado en la sesion")
			return
		}
		if _, ok := allowed[strings.ToLower(strings.TrimSpace(role))]; !ok {
			abort(c, http.StatusForbidden, "forbidden", "rol no autorizado")
			return
		}
		c.Next()
	}
}
