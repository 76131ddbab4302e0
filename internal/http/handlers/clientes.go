package handlers

import (
	"net/http"

	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func clienteService(c *gin.Context) services.ClienteService {
	return services.ClienteService{
		Repo:        repositories.ClienteRepository{},
		PersonaRepo: repositories.PersonaRepository{},
		RequestID:   middleware.GetRequestID(c),
	}
}

// GET /api/clientes?q=&page=&limit=
// Each row carries its persona.
func GetClientes(c *gin.Context) {
	list, err := clienteService(c).List(c.Request.Context(), listParams(c))
	if err != nil {
		RespondDomainError(c, "clientes", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetClienteByID(c *gin.Context) {
	id, valid := pathID(c, "cliente")
	if !valid {
		return
	}
	cl, err := clienteService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "clientes", err)
		return
	}
	c.JSON(http.StatusOK, cl)
}

// POST /api/clientes accepts persona_id or an inline persona object.
func CreateCliente(c *gin.Context) {
	var payload services.ClienteInput
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := clienteService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "clientes", err)
		return
	}
	created(c, id, "cliente creado")
}

func UpdateCliente(c *gin.Context) {
	id, valid := pathID(c, "cliente")
	if !valid {
		return
	}
	var payload services.ClienteInput
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := clienteService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "clientes", err)
		return
	}
	respondOK(c, "cliente actualizado")
}

func DeleteCliente(c *gin.Context) {
	id, valid := pathID(c, "cliente")
	if !valid {
		return
	}
	if err := clienteService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "clientes", err)
		return
	}
	respondOK(c, "cliente eliminado")
}
