package services

import (
	"context"
	"time"

	"transportes/internal/domain"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/jonboulle/clockwork"
)

type ReportesService struct {
	Repo      repositories.ReportesRepository
	Alertas   AlertasService
	Clock     clockwork.Clock
	RequestID string
}

type rangoFechas struct {
	Desde string `json:"desde" binding:"required,datetime=2006-01-02"`
	Hasta string `json:"hasta" binding:"required,datetime=2006-01-02"`
}

type ResumenReporte struct {
	repositories.Resumen
	Alertas map[domain.Prioridad]int `json:"alertas"`
}

// Resumen defaults to the current month when no range is given.
func (s ReportesService) Resumen(ctx context.Context, desde, hasta string) (ResumenReporte, error) {
	now := time.Now()
	if s.Clock != nil {
		now = s.Clock.Now()
	}
	desde, hasta = utils.DateOnly(desde), utils.DateOnly(hasta)
	if desde == "" {
		desde = utils.FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.Local))
	}
	if hasta == "" {
		hasta = utils.FormatDate(now)
	}

	if err := validateStruct(rangoFechas{Desde: desde, Hasta: hasta}); err != nil {
		return ResumenReporte{}, err
	}
	var c fieldCheck
	c.rule(desde <= hasta, "desde", "no puede ser posterior a hasta")
	if c.err != nil {
		return ResumenReporte{}, c.err
	}

	res, err := s.Repo.Resumen(ctx, desde, hasta)
	if err != nil {
		return ResumenReporte{}, err
	}
	alertas, err := s.Alertas.Calcular(ctx, "")
	if err != nil {
		return ResumenReporte{}, err
	}
	return ResumenReporte{Resumen: res, Alertas: alertas.Conteo}, nil
}
