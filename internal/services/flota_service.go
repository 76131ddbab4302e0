package services

import (
	"context"
	"fmt"
	"strings"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"
)

type RutaService struct {
	Repo      repositories.RutaRepository
	RequestID string
}

func normalizeRuta(m models.Ruta) (models.Ruta, error) {
	m.Origen = utils.NormalizeSpace(m.Origen)
	m.Destino = utils.NormalizeSpace(m.Destino)
	m.HoraSalida = utils.TimeHM(m.HoraSalida)

	if err := validateStruct(m); err != nil {
		return m, err
	}
	var c fieldCheck
	c.rule(!strings.EqualFold(m.Origen, m.Destino), "destino", "debe ser distinto del origen")
	return m, c.err
}

func (s RutaService) List(ctx context.Context, p domain.ListParams, soloActivas bool) ([]models.Ruta, error) {
	return s.Repo.List(ctx, p.Normalize(), soloActivas)
}

func (s RutaService) Get(ctx context.Context, id int64) (models.Ruta, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s RutaService) Create(ctx context.Context, m models.Ruta) (int64, error) {
	m, err := normalizeRuta(m)
	if err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(ctx, m)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "rutas", "create", fmt.Sprintf("ruta_id=%d %s-%s", id, m.Origen, m.Destino))
	return id, nil
}

func (s RutaService) Update(ctx context.Context, id int64, m models.Ruta) error {
	m, err := normalizeRuta(m)
	if err != nil {
		return err
	}
	m.ID = id
	return s.Repo.Update(ctx, m)
}

func (s RutaService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

type UnidadService struct {
	Repo      repositories.UnidadRepository
	RequestID string
}

func normalizeUnidad(u models.Unidad) (models.Unidad, error) {
	u.Placa = strings.ToUpper(utils.NormalizeSpace(u.Placa))
	u.NumeroInterno = strings.ToUpper(utils.TrimOrEmpty(u.NumeroInterno))
	u.Marca = utils.NormalizeSpace(u.Marca)
	u.Modelo = utils.NormalizeSpace(u.Modelo)
	u.Estado = defaultLower(u.Estado, domain.EstadoUnidadActiva)

	return u, validateStruct(u)
}

func (s UnidadService) List(ctx context.Context, p domain.ListParams, estado string, rutaID int64) ([]models.Unidad, error) {
	return s.Repo.List(ctx, p.Normalize(), strings.ToLower(strings.TrimSpace(estado)), rutaID)
}

func (s UnidadService) Get(ctx context.Context, id int64) (models.Unidad, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s UnidadService) Create(ctx context.Context, u models.Unidad) (int64, error) {
	u, err := normalizeUnidad(u)
	if err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(ctx, u)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "unidades", "create", fmt.Sprintf("unidad_id=%d placa=%s", id, u.Placa))
	return id, nil
}

func (s UnidadService) Update(ctx context.Context, id int64, u models.Unidad) error {
	u, err := normalizeUnidad(u)
	if err != nil {
		return err
	}
	u.ID = id
	return s.Repo.Update(ctx, u)
}

func (s UnidadService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

type ViajeService struct {
	Repo       repositories.ViajeRepository
	RutaRepo   repositories.RutaRepository
	UnidadRepo repositories.UnidadRepository
	RequestID  string
}

// prepare validates the viaje and fills hora_salida from the ruta when omitted.
func (s ViajeService) prepare(ctx context.Context, v models.Viaje) (models.Viaje, error) {
	v.Fecha = utils.DateOnly(v.Fecha)
	v.HoraSalida = utils.TimeHM(v.HoraSalida)
	v.Conductor = utils.NormalizeSpace(v.Conductor)
	v.Estado = defaultLower(v.Estado, domain.EstadoViajeProgramado)

	if err := validateStruct(v); err != nil {
		return v, err
	}

	ruta, err := s.RutaRepo.GetByID(ctx, v.RutaID)
	if err != nil {
		return v, err
	}
	if v.HoraSalida == "" {
		v.HoraSalida = ruta.HoraSalida
	}

	unidad, err := s.UnidadRepo.GetByID(ctx, v.UnidadID)
	if err != nil {
		return v, err
	}
	if unidad.Estado != domain.EstadoUnidadActiva && v.Estado == domain.EstadoViajeProgramado {
		return v, domain.ConflictError{Resource: "unidad " + unidad.Placa, Msg: "no esta activa (" + unidad.Estado + ")"}
	}
	return v, nil
}

func (s ViajeService) List(ctx context.Context, f repositories.ViajeFilter) ([]models.Viaje, error) {
	f.ListParams = f.ListParams.Normalize()
	return s.Repo.List(ctx, f)
}

func (s ViajeService) Get(ctx context.Context, id int64) (models.Viaje, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s ViajeService) Create(ctx context.Context, v models.Viaje) (int64, error) {
	v, err := s.prepare(ctx, v)
	if err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(ctx, v)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "viajes", "create", fmt.Sprintf("viaje_id=%d ruta_id=%d fecha=%s", id, v.RutaID, v.Fecha))
	return id, nil
}

func (s ViajeService) Update(ctx context.Context, id int64, v models.Viaje) error {
	v, err := s.prepare(ctx, v)
	if err != nil {
		return err
	}
	v.ID = id
	return s.Repo.Update(ctx, v)
}

func (s ViajeService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
