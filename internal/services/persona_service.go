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

type PersonaService struct {
	Repo      repositories.PersonaRepository
	RequestID string
}

func normalizePersona(p models.Persona) (models.Persona, error) {
	p.Nombre = utils.NormalizeSpace(p.Nombre)
	p.Apellido = utils.NormalizeSpace(p.Apellido)
	p.Documento = strings.ToUpper(utils.TrimOrEmpty(p.Documento))
	p.Telefono = utils.TrimOrEmpty(p.Telefono)
	p.Email = strings.ToLower(utils.TrimOrEmpty(p.Email))
	p.Direccion = utils.NormalizeSpace(p.Direccion)
	p.FechaNacimiento = utils.TrimOrEmpty(p.FechaNacimiento)

	return p, validateStruct(p)
}

func (s PersonaService) List(ctx context.Context, p domain.ListParams) ([]models.Persona, error) {
	return s.Repo.List(ctx, p.Normalize())
}

func (s PersonaService) Get(ctx context.Context, id int64) (models.Persona, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s PersonaService) Create(ctx context.Context, p models.Persona) (int64, error) {
	p, err := normalizePersona(p)
	if err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(ctx, p)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "personas", "create", fmt.Sprintf("persona_id=%d", id))
	return id, nil
}

func (s PersonaService) Update(ctx context.Context, id int64, p models.Persona) error {
	p, err := normalizePersona(p)
	if err != nil {
		return err
	}
	p.ID = id
	return s.Repo.Update(ctx, p)
}

func (s PersonaService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "personas", "delete", fmt.Sprintf("persona_id=%d", id))
	return nil
}
