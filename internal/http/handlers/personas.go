package handlers

import (
	"net/http"

	"transportes/internal/domain/models"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func personaService(c *gin.Context) services.PersonaService {
	return services.PersonaService{Repo: repositories.PersonaRepository{}, RequestID: middleware.GetRequestID(c)}
}

// GET /api/personas?q=&page=&limit=
func GetPersonas(c *gin.Context) {
	list, err := personaService(c).List(c.Request.Context(), listParams(c))
	if err != nil {
		RespondDomainError(c, "personas", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetPersonaByID(c *gin.Context) {
	id, valid := pathID(c, "persona")
	if !valid {
		return
	}
	p, err := personaService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "personas", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func CreatePersona(c *gin.Context) {
	var payload models.Persona
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := personaService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "personas", err)
		return
	}
	created(c, id, "persona creada")
}

func UpdatePersona(c *gin.Context) {
	id, valid := pathID(c, "persona")
	if !valid {
		return
	}
	var payload models.Persona
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := personaService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "personas", err)
		return
	}
	respondOK(c, "persona actualizada")
}

func DeletePersona(c *gin.Context) {
	id, valid := pathID(c, "persona")
	if !valid {
		return
	}
	if err := personaService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "personas", err)
		return
	}
	respondOK(c, "persona eliminada")
}
