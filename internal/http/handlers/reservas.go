package handlers

import (
	"net/http"
	"strings"

	"transportes/internal/domain"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func reservaService(c *gin.Context) services.ReservaService {
	return services.ReservaService{
		BoletoRepo: repositories.BoletoRepository{},
		ViajeRepo:  repositories.ViajeRepository{},
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/reservas/rutas/:id/viajes?fecha=YYYY-MM-DD
func GetViajesDeRuta(c *gin.Context) {
	id, valid := pathID(c, "ruta")
	if !valid {
		return
	}
	list, err := reservaService(c).ViajesDeRuta(c.Request.Context(), id, c.Query("fecha"))
	if err != nil {
		RespondDomainError(c, "reservas", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /api/reservas/viajes/:id/asientos
func GetAsientos(c *gin.Context) {
	id, valid := pathID(c, "viaje")
	if !valid {
		return
	}
	list, err := reservaService(c).Asientos(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "reservas", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// POST /api/reservas answers 409 when the seat is already taken.
func CreateReserva(c *gin.Context) {
	var payload services.ReservaInput
	if !BindJSONOrError(c, &payload) {
		return
	}
	b, err := reservaService(c).Reservar(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "reservas", err)
		return
	}
	c.JSON(http.StatusCreated, b)
}

// PUT /api/reservas/:id/cancelar
func CancelarReserva(c *gin.Context) {
	id, valid := pathID(c, "boleto")
	if !valid {
		return
	}
	if err := reservaService(c).CambiarEstado(c.Request.Context(), id, domain.EstadoBoletoCancelado); err != nil {
		RespondDomainError(c, "reservas", err)
		return
	}
	respondOK(c, "reserva cancelada")
}

// GET /api/boletos?viaje_id=&cliente_id=&estado=
func GetBoletos(c *gin.Context) {
	f := repositories.BoletoFilter{
		ListParams: listParams(c),
		ViajeID:    queryID(c, "viaje_id"),
		ClienteID:  queryID(c, "cliente_id"),
		Estado:     strings.ToLower(strings.TrimSpace(c.Query("estado"))),
	}
	list, err := reservaService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, "boletos", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetBoletoByID(c *gin.Context) {
	id, valid := pathID(c, "boleto")
	if !valid {
		return
	}
	b, err := reservaService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "boletos", err)
		return
	}
	c.JSON(http.StatusOK, b)
}

type estadoPayload struct {
	Estado string `json:"estado" binding:"required"`
}

// PUT /api/boletos/:id only changes the estado; seat and trip are fixed once issued.
func UpdateBoleto(c *gin.Context) {
	id, valid := pathID(c, "boleto")
	if !valid {
		return
	}
	var payload estadoPayload
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := reservaService(c).CambiarEstado(c.Request.Context(), id, payload.Estado); err != nil {
		RespondDomainError(c, "boletos", err)
		return
	}
	respondOK(c, "boleto actualizado")
}

func DeleteBoleto(c *gin.Context) {
	id, valid := pathID(c, "boleto")
	if !valid {
		return
	}
	if err := reservaService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "boletos", err)
		return
	}
	respondOK(c, "boleto eliminado")
}
