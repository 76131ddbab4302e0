package handlers

import (
	"net/http"

	"transportes/internal/domain/models"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func rolService(c *gin.Context) services.RolService {
	return services.RolService{Repo: repositories.RolRepository{}, RequestID: middleware.GetRequestID(c)}
}

func GetUsuarios(c *gin.Context) {
	list, err := authService(c).ListUsuarios(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "usuarios", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetUsuarioByID(c *gin.Context) {
	id, valid := pathID(c, "usuario")
	if !valid {
		return
	}
	u, err := authService(c).GetUsuario(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "usuarios", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func CreateUsuario(c *gin.Context) {
	var payload services.UsuarioInput
	if !BindJSONOrError(c, &payload) {
		return
	}
	u, err := authService(c).CreateUsuario(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "usuarios", err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// PUT /api/usuarios/:id keeps the current password when none is sent.
func UpdateUsuario(c *gin.Context) {
	id, valid := pathID(c, "usuario")
	if !valid {
		return
	}
	var payload services.UsuarioInput
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := authService(c).UpdateUsuario(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "usuarios", err)
		return
	}
	respondOK(c, "usuario actualizado")
}

func DeleteUsuario(c *gin.Context) {
	id, valid := pathID(c, "usuario")
	if !valid {
		return
	}
	if id == c.GetInt64(middleware.CtxUserID) {
		respondError(c, http.StatusConflict, "conflict", "no puede eliminar su propio usuario")
		return
	}
	if err := authService(c).DeleteUsuario(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "usuarios", err)
		return
	}
	respondOK(c, "usuario eliminado")
}

func GetRoles(c *gin.Context) {
	list, err := rolService(c).List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "roles", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetRolByID(c *gin.Context) {
	id, valid := pathID(c, "rol")
	if !valid {
		return
	}
	r, err := rolService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "roles", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// POST /api/roles {nombre, descripcion, permisos: ["ventas", ...]}
func CreateRol(c *gin.Context) {
	var payload models.Rol
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = 0
	id, err := rolService(c).Save(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "roles", err)
		return
	}
	created(c, id, "rol creado")
}

// PUT /api/roles/:id replaces the permission set.
func UpdateRol(c *gin.Context) {
	id, valid := pathID(c, "rol")
	if !valid {
		return
	}
	var payload models.Rol
	if !BindJSONOrError(c, &payload) {
		return
	}
	payload.ID = id
	if _, err := rolService(c).Save(c.Request.Context(), payload); err != nil {
		RespondDomainError(c, "roles", err)
		return
	}
	respondOK(c, "rol actualizado")
}

func DeleteRol(c *gin.Context) {
	id, valid := pathID(c, "rol")
	if !valid {
		return
	}
	if err := rolService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "roles", err)
		return
	}
	respondOK(c, "rol eliminado")
}

func GetPermisos(c *gin.Context) {
	list, err := rolService(c).ListPermisos(c.Request.Context())
	if err != nil {
		RespondDomainError(c, "permisos", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func CreatePermiso(c *gin.Context) {
	var payload models.Permiso
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := rolService(c).CreatePermiso(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "permisos", err)
		return
	}
	created(c, id, "permiso creado")
}

func DeletePermiso(c *gin.Context) {
	id, valid := pathID(c, "permiso")
	if !valid {
		return
	}
	if err := rolService(c).DeletePermiso(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "permisos", err)
		return
	}
	respondOK(c, "permiso eliminado")
}
