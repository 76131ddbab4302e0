package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "transportes/internal/config"
	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"
)

type ClienteService struct {
	Repo        repositories.ClienteRepository
	PersonaRepo repositories.PersonaRepository
	DB          *sql.DB
	RequestID   string
}

// ClienteInput accepts either an existing persona_id or inline persona data,
// which is how the client form creates both records in one step.
type ClienteInput struct {
	PersonaID int64           `json:"persona_id" binding:"gte=0"`
	Persona   *models.Persona `json:"persona"`
	Tipo      string          `json:"tipo" binding:"omitempty,oneof=regular frecuente corporativo"`
	NIT       string          `json:"nit"`
	Activo    *bool           `json:"activo"`
}

func (in ClienteInput) toCliente() (models.Cliente, error) {
	c := models.Cliente{
		PersonaID: in.PersonaID,
		Tipo:      defaultLower(in.Tipo, "regular"),
		NIT:       strings.ToUpper(utils.TrimOrEmpty(in.NIT)),
		Activo:    true,
	}
	if in.Activo != nil {
		c.Activo = *in.Activo
	}
	return c, validateStruct(c)
}

func (s ClienteService) List(ctx context.Context, p domain.ListParams) ([]models.Cliente, error) {
	return s.Repo.List(ctx, p.Normalize())
}

func (s ClienteService) Get(ctx context.Context, id int64) (models.Cliente, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s ClienteService) Create(ctx context.Context, in ClienteInput) (int64, error) {
	c, err := in.toCliente()
	if err != nil {
		return 0, err
	}

	if c.PersonaID <= 0 {
		if in.Persona == nil {
			return 0, domain.Required("persona_id")
		}
		p, err := normalizePersona(*in.Persona)
		if err != nil {
			return 0, err
		}
		return s.createWithPersona(ctx, p, c)
	}

	id, err := s.Repo.Create(ctx, c)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "clientes", "create", fmt.Sprintf("cliente_id=%d persona_id=%d", id, c.PersonaID))
	return id, nil
}

func (s ClienteService) createWithPersona(ctx context.Context, p models.Persona, c models.Cliente) (int64, error) {
	db := s.DB
	if db == nil {
		db = s.Repo.DB
	}
	if db == nil {
		db = intconfig.DB
	}
	var id int64
	err := intdb.WithTx(ctx, db, func(tx *sql.Tx) error {
		personaID, err := s.PersonaRepo.CreateWith(ctx, tx, p)
		if err != nil {
			return err
		}
		c.PersonaID = personaID
		id, err = s.Repo.CreateWith(ctx, tx, c)
		return err
	})
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "clientes", "create", fmt.Sprintf("cliente_id=%d con persona nueva", id))
	return id, nil
}

func (s ClienteService) Update(ctx context.Context, id int64, in ClienteInput) error {
	c, err := in.toCliente()
	if err != nil {
		return err
	}
	if c.PersonaID <= 0 {
		current, err := s.Repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		c.PersonaID = current.PersonaID
	}
	if in.Persona != nil {
		p, err := normalizePersona(*in.Persona)
		if err != nil {
			return err
		}
		p.ID = c.PersonaID
		if err := s.PersonaRepo.Update(ctx, p); err != nil {
			return err
		}
	}
	c.ID = id
	return s.Repo.Update(ctx, c)
}

func (s ClienteService) Delete(ctx context.Context, id int64) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "clientes", "delete", fmt.Sprintf("cliente_id=%d", id))
	return nil
}
