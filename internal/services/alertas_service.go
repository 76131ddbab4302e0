package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/metrics"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
)

// AlertasService classifies open mantenimientos into priority tiers.
type AlertasService struct {
	Repo      repositories.MantenimientoRepository
	Clock     clockwork.Clock
	RequestID string
}

type AlertasResult struct {
	Fecha   string                   `json:"fecha"`
	Conteo  map[domain.Prioridad]int `json:"conteo"`
	Alertas []domain.Alerta          `json:"alertas"`
}

func (s AlertasService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

// Calcular loads open records and classifies them against today. prioridad filters the
// list but the counts always cover every tier.
func (s AlertasService) Calcular(ctx context.Context, prioridad string) (AlertasResult, error) {
	items, err := s.Repo.ListAbiertos(ctx)
	if err != nil {
		return AlertasResult{}, err
	}
	return s.clasificar(items, prioridad)
}

func (s AlertasService) clasificar(items []models.Mantenimiento, prioridad string) (AlertasResult, error) {
	prioridad = strings.ToLower(strings.TrimSpace(prioridad))
	if prioridad != "" && !domain.OneOf(prioridad, string(domain.PrioridadAlta), string(domain.PrioridadMedia), string(domain.PrioridadBaja)) {
		return AlertasResult{}, domain.Invalid("prioridad", "use alta, media o baja")
	}

	today := s.now()
	all := domain.ClasificarAlertas(items, today)
	out := AlertasResult{
		Fecha:   utils.FormatDate(today),
		Conteo:  domain.ContarPorPrioridad(all),
		Alertas: all,
	}
	if prioridad != "" {
		filtered := make([]domain.Alerta, 0, len(all))
		for _, a := range all {
			if string(a.Prioridad) == prioridad {
				filtered = append(filtered, a)
			}
		}
		out.Alertas = filtered
	}
	return out, nil
}

// AlertasScheduler runs the alert sweep on a cron schedule and publishes the counts.
type AlertasScheduler struct {
	Service AlertasService
	Timeout time.Duration

	mu   sync.Mutex
	cron *cron.Cron
	last AlertasResult
}

// Start registers the sweep under spec (robfig/cron syntax, e.g. "@every 1h").
func (s *AlertasScheduler) Start(spec string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cron != nil {
		return fmt.Errorf("scheduler ya iniciado")
	}
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { s.Sweep(context.Background()) }); err != nil {
		return fmt.Errorf("cron spec %q: %w", spec, err)
	}
	c.Start()
	s.cron = c
	utils.LogEvent("", "alertas", "scheduler_start", "spec="+spec)
	return nil
}

// Stop waits for a running sweep to finish.
func (s *AlertasScheduler) Stop() {
	s.mu.Lock()
	c := s.cron
	s.cron = nil
	s.mu.Unlock()
	if c != nil {
		<-c.Stop().Done()
	}
}

// Sweep computes alerts once and publishes them. Errors are logged and counted, never retried.
func (s *AlertasScheduler) Sweep(ctx context.Context) {
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	res, err := s.Service.Calcular(ctx, "")
	if err != nil {
		metrics.RecordSweep(false)
		utils.LogError("", "alertas", "sweep", err)
		return
	}
	metrics.RecordSweep(true)

	counts := make(map[string]int, len(res.Conteo))
	for p, n := range res.Conteo {
		counts[string(p)] = n
	}
	metrics.SetAlertas(counts)

	s.mu.Lock()
	s.last = res
	s.mu.Unlock()

	utils.LogEvent("", "alertas", "sweep", fmt.Sprintf("alta=%d media=%d baja=%d",
		res.Conteo[domain.PrioridadAlta], res.Conteo[domain.PrioridadMedia], res.Conteo[domain.PrioridadBaja]))
}

// Last returns the result of the most recent successful sweep.
func (s *AlertasScheduler) Last() AlertasResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
