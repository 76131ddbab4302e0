package handlers

import (
	"net/http"
	"strings"

	"transportes/internal/domain/models"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func rutaService(c *gin.Context) services.RutaService {
	return services.RutaService{Repo: repositories.RutaRepository{}, RequestID: middleware.GetRequestID(c)}
}

func unidadService(c *gin.Context) services.UnidadService {
	return services.UnidadService{Repo: repositories.UnidadRepository{}, RequestID: middleware.GetRequestID(c)}
}

func viajeService(c *gin.Context) services.ViajeService {
	return services.ViajeService{
		Repo:       repositories.ViajeRepository{},
		RutaRepo:   repositories.RutaRepository{},
		UnidadRepo: repositories.UnidadRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/rutas?q=&page=&limit=&activas=true
func GetRutas(c *gin.Context) {
	list, err := rutaService(c).List(c.Request.Context(), listParams(c), queryBool(c, "activas"))
	if err != nil {
		RespondDomainError(c, "rutas", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetRutaByID(c *gin.Context) {
	id, valid := pathID(c, "ruta")
	if !valid {
		return
	}
	r, err := rutaService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "rutas", err)
		return
	}
	c.JSON(http.StatusOK, r)
}

func CreateRuta(c *gin.Context) {
	var payload models.Ruta
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := rutaService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "rutas", err)
		return
	}
	created(c, id, "ruta creada")
}

func UpdateRuta(c *gin.Context) {
	id, valid := pathID(c, "ruta")
	if !valid {
		return
	}
	var payload models.Ruta
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := rutaService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "rutas", err)
		return
	}
	respondOK(c, "ruta actualizada")
}

func DeleteRuta(c *gin.Context) {
	id, valid := pathID(c, "ruta")
	if !valid {
		return
	}
	if err := rutaService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "rutas", err)
		return
	}
	respondOK(c, "ruta eliminada")
}

// GET /api/unidades?q=&estado=&ruta_id=
func GetUnidades(c *gin.Context) {
	estado := strings.ToLower(strings.TrimSpace(c.Query("estado")))
	list, err := unidadService(c).List(c.Request.Context(), listParams(c), estado, queryID(c, "ruta_id"))
	if err != nil {
		RespondDomainError(c, "unidades", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetUnidadByID(c *gin.Context) {
	id, valid := pathID(c, "unidad")
	if !valid {
		return
	}
	u, err := unidadService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "unidades", err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func CreateUnidad(c *gin.Context) {
	var payload models.Unidad
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := unidadService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "unidades", err)
		return
	}
	created(c, id, "unidad creada")
}

func UpdateUnidad(c *gin.Context) {
	id, valid := pathID(c, "unidad")
	if !valid {
		return
	}
	var payload models.Unidad
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := unidadService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "unidades", err)
		return
	}
	respondOK(c, "unidad actualizada")
}

func DeleteUnidad(c *gin.Context) {
	id, valid := pathID(c, "unidad")
	if !valid {
		return
	}
	if err := unidadService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "unidades", err)
		return
	}
	respondOK(c, "unidad eliminada")
}

// GET /api/viajes?ruta_id=&fecha=&estado=
func GetViajes(c *gin.Context) {
	f := repositories.ViajeFilter{
		ListParams: listParams(c),
		RutaID:     queryID(c, "ruta_id"),
		Fecha:      strings.TrimSpace(c.Query("fecha")),
		Estado:     strings.ToLower(strings.TrimSpace(c.Query("estado"))),
	}
	list, err := viajeService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, "viajes", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetViajeByID(c *gin.Context) {
	id, valid := pathID(c, "viaje")
	if !valid {
		return
	}
	v, err := viajeService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "viajes", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func CreateViaje(c *gin.Context) {
	var payload models.Viaje
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := viajeService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "viajes", err)
		return
	}
	created(c, id, "viaje creado")
}

func UpdateViaje(c *gin.Context) {
	id, valid := pathID(c, "viaje")
	if !valid {
		return
	}
	var payload models.Viaje
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := viajeService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "viajes", err)
		return
	}
	respondOK(c, "viaje actualizado")
}

func DeleteViaje(c *gin.Context) {
	id, valid := pathID(c, "viaje")
	if !valid {
		return
	}
	if err := viajeService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "viajes", err)
		return
	}
	respondOK(c, "viaje eliminado")
}
