package services

import (
	"context"
	"fmt"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/jonboulle/clockwork"
)

type MantenimientoService struct {
	Repo       repositories.MantenimientoRepository
	UnidadRepo repositories.UnidadRepository
	Clock      clockwork.Clock
	RequestID  string
}

func (s MantenimientoService) clock() clockwork.Clock {
	if s.Clock != nil {
		return s.Clock
	}
	return clockwork.NewRealClock()
}

// prepare validates m. A realizado record without proximo_mantenimiento gets one from the odometer.
func (s MantenimientoService) prepare(m models.Mantenimiento) (models.Mantenimiento, error) {
	m.Tipo = utils.NormalizeSpace(m.Tipo)
	m.Descripcion = utils.TrimOrEmpty(m.Descripcion)
	m.FechaProgramada = utils.DateOnly(m.FechaProgramada)
	m.FechaRealizada = utils.DateOnly(m.FechaRealizada)
	m.ProximoMantenimiento = utils.DateOnly(m.ProximoMantenimiento)
	m.Estado = defaultLower(m.Estado, domain.EstadoMantPendiente)

	if err := validateStruct(m); err != nil {
		return m, err
	}
	if m.Estado == domain.EstadoMantRealizado && m.FechaRealizada == "" {
		m.FechaRealizada = utils.FormatDate(s.clock().Now())
	}

	if m.Estado == domain.EstadoMantRealizado && m.ProximoMantenimiento == "" {
		base := s.clock().Now()
		for _, d := range []string{m.FechaRealizada, m.FechaProgramada} {
			if d == "" {
				continue
			}
			if t, err := utils.ParseDate(d); err == nil {
				base = t
				break
			}
		}
		m.ProximoMantenimiento = utils.FormatDate(domain.ProximoMantenimiento(base, m.Kilometraje))
	}
	return m, nil
}

func (s MantenimientoService) List(ctx context.Context, f repositories.MantenimientoFilter) ([]models.Mantenimiento, error) {
	f.ListParams = f.ListParams.Normalize()
	return s.Repo.List(ctx, f)
}

func (s MantenimientoService) Get(ctx context.Context, id int64) (models.Mantenimiento, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s MantenimientoService) Create(ctx context.Context, m models.Mantenimiento) (models.Mantenimiento, error) {
	m, err := s.prepare(m)
	if err != nil {
		return m, err
	}
	if _, err := s.UnidadRepo.GetByID(ctx, m.UnidadID); err != nil {
		return m, err
	}
	m.ID, err = s.Repo.Create(ctx, m)
	if err != nil {
		return m, err
	}
	s.syncUnidad(ctx, m)
	utils.LogEvent(s.RequestID, "mantenimiento", "create",
		fmt.Sprintf("mantenimiento_id=%d unidad_id=%d proximo=%s", m.ID, m.UnidadID, m.ProximoMantenimiento))
	return m, nil
}

func (s MantenimientoService) Update(ctx context.Context, id int64, m models.Mantenimiento) (models.Mantenimiento, error) {
	m, err := s.prepare(m)
	if err != nil {
		return m, err
	}
	m.ID = id
	if err := s.Repo.Update(ctx, m); err != nil {
		return m, err
	}
	s.syncUnidad(ctx, m)
	return m, nil
}

// Completar marks a record as done today (unless a date is given), computes the next date
// and schedules it as a new pendiente record so it shows up in the alerts.
func (s MantenimientoService) Completar(ctx context.Context, id int64, fecha string, km int) (models.Mantenimiento, error) {
	m, siguienteID, err := s.Repo.Completar(ctx, id, func(m models.Mantenimiento) (models.Mantenimiento, models.Mantenimiento, error) {
		if m.Estado == domain.EstadoMantRealizado {
			return m, m, domain.ConflictError{Resource: "mantenimiento", Msg: "ya fue realizado"}
		}
		if m.Estado == domain.EstadoMantCancelado {
			return m, m, domain.ConflictError{Resource: "mantenimiento", Msg: "esta cancelado"}
		}
		m.Estado = domain.EstadoMantRealizado
		m.FechaRealizada = fecha
		if km > 0 {
			m.Kilometraje = km
		}
		m.ProximoMantenimiento = ""
		hecho, err := s.prepare(m)
		if err != nil {
			return hecho, m, err
		}
		hecho.ID = id
		siguiente := models.Mantenimiento{
			UnidadID:        hecho.UnidadID,
			Tipo:            hecho.Tipo,
			FechaProgramada: hecho.ProximoMantenimiento,
			Estado:          domain.EstadoMantPendiente,
		}
		return hecho, siguiente, nil
	})
	if err != nil {
		return m, err
	}
	s.syncUnidad(ctx, m)
	utils.LogEvent(s.RequestID, "mantenimiento", "completar",
		fmt.Sprintf("mantenimiento_id=%d siguiente_id=%d proximo=%s", m.ID, siguienteID, m.ProximoMantenimiento))
	return m, nil
}

// syncUnidad keeps the unit odometer moving forward; failures are logged only.
func (s MantenimientoService) syncUnidad(ctx context.Context, m models.Mantenimiento) {
	if m.Kilometraje <= 0 {
		return
	}
	if err := s.UnidadRepo.UpdateKilometraje(ctx, m.UnidadID, m.Kilometraje); err != nil {
		utils.LogError(s.RequestID, "mantenimiento", "sync_unidad", err)
	}
}

func (s MantenimientoService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
