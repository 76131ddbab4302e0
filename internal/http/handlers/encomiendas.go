package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"transportes/internal/domain/models"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func encomiendaService(c *gin.Context) services.EncomiendaService {
	return services.EncomiendaService{
		Repo:      repositories.EncomiendaRepository{},
		TarifaKg:  cfg().tarifaKg,
		RequestID: middleware.GetRequestID(c),
	}
}

// GET /api/encomiendas?viaje_id=&estado=
func GetEncomiendas(c *gin.Context) {
	f := repositories.EncomiendaFilter{
		ListParams: listParams(c),
		ViajeID:    queryID(c, "viaje_id"),
		Estado:     strings.ToLower(strings.TrimSpace(c.Query("estado"))),
	}
	list, err := encomiendaService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, "encomiendas", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/encomiendas/cotizar?peso_kg=2.5
func CotizarEncomienda(c *gin.Context) {
	peso, err := strconv.ParseFloat(strings.TrimSpace(c.Query("peso_kg")), 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", "peso_kg invalido")
		return
	}
	svc := encomiendaService(c)
	costo, err := svc.Cotizar(peso)
	if err != nil {
		RespondDomainError(c, "encomiendas", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"peso_kg": peso, "tarifa_kg": svc.TarifaKg, "costo": costo})
}

func GetEncomiendaByID(c *gin.Context) {
	id, valid := pathID(c, "encomienda")
	if !valid {
		return
	}
	e, err := encomiendaService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "encomiendas", err)
		return
	}
	c.JSON(http.StatusOK, e)
}

// POST /api/encomiendas ignores any client costo; it is recomputed from peso_kg.
func CreateEncomienda(c *gin.Context) {
	var payload models.Encomienda
	if !BindJSONOrError(c, &payload) {
		return
	}
	e, err := encomiendaService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "encomiendas", err)
		return
	}
	c.JSON(http.StatusCreated, e)
}

func UpdateEncomienda(c *gin.Context) {
	id, valid := pathID(c, "encomienda")
	if !valid {
		return
	}
	var payload models.Encomienda
	if !BindJSONOrError(c, &payload) {
		return
	}
	e, err := encomiendaService(c).Update(c.Request.Context(), id, payload)
	if err != nil {
		RespondDomainError(c, "encomiendas", err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func DeleteEncomienda(c *gin.Context) {
	id, valid := pathID(c, "encomienda")
	if !valid {
		return
	}
	if err := encomiendaService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "encomiendas", err)
		return
	}
	respondOK(c, "encomienda eliminada")
}
