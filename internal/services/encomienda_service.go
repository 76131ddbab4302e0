package services

import (
	"context"
	"fmt"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"
)

type EncomiendaService struct {
	Repo      repositories.EncomiendaRepository
	TarifaKg  float64
	RequestID string
}

// prepare validates e and always recomputes costo from peso_kg; client costs are ignored.
func (s EncomiendaService) prepare(e models.Encomienda) (models.Encomienda, error) {
	e.DestinatarioNombre = utils.NormalizeSpace(e.DestinatarioNombre)
	e.DestinatarioTelefono = utils.TrimOrEmpty(e.DestinatarioTelefono)
	e.Descripcion = utils.TrimOrEmpty(e.Descripcion)
	e.Estado = defaultLower(e.Estado, domain.EstadoEncomiendaRecibida)

	if err := validateStruct(e); err != nil {
		return e, err
	}

	costo, err := domain.CostoEncomienda(e.PesoKg, s.TarifaKg)
	if err != nil {
		return e, err
	}
	e.Costo = costo
	return e, nil
}

// Cotizar returns the cost for a weight without storing anything.
func (s EncomiendaService) Cotizar(pesoKg float64) (float64, error) {
	return domain.CostoEncomienda(pesoKg, s.TarifaKg)
}

func (s EncomiendaService) List(ctx context.Context, f repositories.EncomiendaFilter) ([]models.Encomienda, error) {
	f.ListParams = f.ListParams.Normalize()
	return s.Repo.List(ctx, f)
}

func (s EncomiendaService) Get(ctx context.Context, id int64) (models.Encomienda, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s EncomiendaService) Create(ctx context.Context, e models.Encomienda) (models.Encomienda, error) {
	e, err := s.prepare(e)
	if err != nil {
		return e, err
	}
	e.Codigo = nuevoCodigo("ENC")
	e.ID, err = s.Repo.Create(ctx, e)
	if err != nil {
		return e, err
	}
	utils.LogEvent(s.RequestID, "encomiendas", "create",
		fmt.Sprintf("encomienda_id=%d peso=%.2f costo=%s", e.ID, e.PesoKg, utils.FormatMoney(e.Costo)))
	return e, nil
}

func (s EncomiendaService) Update(ctx context.Context, id int64, e models.Encomienda) (models.Encomienda, error) {
	e, err := s.prepare(e)
	if err != nil {
		return e, err
	}
	e.ID = id
	return e, s.Repo.Update(ctx, e)
}

func (s EncomiendaService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
