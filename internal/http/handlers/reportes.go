package handlers

import (
	"net/http"

	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/reportes/resumen?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func GetResumen(c *gin.Context) {
	svc := services.ReportesService{
		Repo:      repositories.ReportesRepository{},
		Alertas:   alertasService(c),
		Clock:     cfg().clock,
		RequestID: middleware.GetRequestID(c),
	}
	res, err := svc.Resumen(c.Request.Context(), c.Query("desde"), c.Query("hasta"))
	if err != nil {
		RespondDomainError(c, "reportes", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/mantenimientos/alertas/ultima returns the last scheduled sweep without touching the database.
func GetUltimoBarrido(c *gin.Context) {
	s := cfg().scheduler
	if s == nil {
		respondError(c, http.StatusServiceUnavailable, "scheduler_disabled", "el barrido programado esta desactivado")
		return
	}
	c.JSON(http.StatusOK, s.Last())
}
