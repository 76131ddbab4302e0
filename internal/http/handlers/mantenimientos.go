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

func mantenimientoService(c *gin.Context) services.MantenimientoService {
	return services.MantenimientoService{
		Repo:       repositories.MantenimientoRepository{},
		UnidadRepo: repositories.UnidadRepository{},
		Clock:      cfg().clock,
		RequestID:  middleware.GetRequestID(c),
	}
}

func alertasService(c *gin.Context) services.AlertasService {
	return services.AlertasService{
		Repo:      repositories.MantenimientoRepository{},
		Clock:     cfg().clock,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/mantenimientos?unidad_id=&estado=
func GetMantenimientos(c *gin.Context) {
	f := repositories.MantenimientoFilter{
		ListParams: listParams(c),
		UnidadID:   queryID(c, "unidad_id"),
		Estado:     strings.ToLower(strings.TrimSpace(c.Query("estado"))),
	}
	list, err := mantenimientoService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, "mantenimiento", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetMantenimientoByID(c *gin.Context) {
	id, valid := pathID(c, "mantenimiento")
	if !valid {
		return
	}
	m, err := mantenimientoService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "mantenimiento", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// POST /api/mantenimientos returns the stored record so the form sees the computed proximo_mantenimiento.
func CreateMantenimiento(c *gin.Context) {
	var payload models.Mantenimiento
	if !BindJSONOrError(c, &payload) {
		return
	}
	m, err := mantenimientoService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "mantenimiento", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func UpdateMantenimiento(c *gin.Context) {
	id, valid := pathID(c, "mantenimiento")
	if !valid {
		return
	}
	var payload models.Mantenimiento
	if !BindJSONOrError(c, &payload) {
		return
	}
	m, err := mantenimientoService(c).Update(c.Request.Context(), id, payload)
	if err != nil {
		RespondDomainError(c, "mantenimiento", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

type completarPayload struct {
	FechaRealizada string `json:"fecha_realizada" binding:"omitempty,datetime=2006-01-02"`
	Kilometraje    int    `json:"kilometraje" binding:"gte=0"`
}

// PUT /api/mantenimientos/:id/completar
func CompletarMantenimiento(c *gin.Context) {
	id, valid := pathID(c, "mantenimiento")
	if !valid {
		return
	}
	var payload completarPayload
	if c.Request.ContentLength != 0 && !BindJSONOrError(c, &payload) {
		return
	}
	m, err := mantenimientoService(c).Completar(c.Request.Context(), id, payload.FechaRealizada, payload.Kilometraje)
	if err != nil {
		RespondDomainError(c, "mantenimiento", err)
		return
	}
	c.JSON(http.StatusOK, m)
}

func DeleteMantenimiento(c *gin.Context) {
	id, valid := pathID(c, "mantenimiento")
	if !valid {
		return
	}
	if err := mantenimientoService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "mantenimiento", err)
		return
	}
	respondOK(c, "mantenimiento eliminado")
}

// GET /api/mantenimientos/alertas?prioridad=alta
func GetAlertas(c *gin.Context) {
	res, err := alertasService(c).Calcular(c.Request.Context(), c.Query("prioridad"))
	if err != nil {
		RespondDomainError(c, "alertas", err)
		return
	}
	c.JSON(http.StatusOK, res)
}
