package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const personaSelect = `
	SELECT id, nombre, apellido, documento,
	       COALESCE(telefono,''), COALESCE(email,''), COALESCE(direccion,''),
	       COALESCE(DATE_FORMAT(fecha_nacimiento, '%Y-%m-%d'),'')
	FROM personas`

type PersonaRepository struct {
	DB *sql.DB
}

func scanPersona(row interface{ Scan(...any) error }) (models.Persona, error) {
	var p models.Persona
	err := row.Scan(&p.ID, &p.Nombre, &p.Apellido, &p.Documento, &p.Telefono, &p.Email, &p.Direccion, &p.FechaNacimiento)
	return p, err
}

// GET /api/personas?q=&page=&limit=
func (r PersonaRepository) List(ctx context.Context, p domain.ListParams) ([]models.Persona, error) {
	var conds []string
	var args []any
	if c, a := searchClause(p.Q, "nombre", "apellido", "documento"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	limit, largs := pageClause(p)
	rows, err := pool(r.DB).QueryContext(ctx, personaSelect+whereSQL(conds)+" ORDER BY apellido, nombre"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("persona", err)
	}
	defer rows.Close()

	out := []models.Persona{}
	for rows.Next() {
		p, err := scanPersona(rows)
		if err != nil {
			return nil, translate("persona", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r PersonaRepository) GetByID(ctx context.Context, id int64) (models.Persona, error) {
	p, err := scanPersona(pool(r.DB).QueryRowContext(ctx, personaSelect+" WHERE id = ?", id))
	if err != nil {
		return models.Persona{}, translate("persona", err)
	}
	return p, nil
}

func (r PersonaRepository) Create(ctx context.Context, p models.Persona) (int64, error) {
	return r.CreateWith(ctx, pool(r.DB), p)
}

// CreateWith inserts using q, so callers can share a transaction.
func (r PersonaRepository) CreateWith(ctx context.Context, q intdb.DBTX, p models.Persona) (int64, error) {
	return insert(ctx, q, "persona", `
		INSERT INTO personas (nombre, apellido, documento, telefono, email, direccion, fecha_nacimiento)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Nombre, p.Apellido, p.Documento,
		intdb.NullIfEmpty(p.Telefono), intdb.NullIfEmpty(p.Email), intdb.NullIfEmpty(p.Direccion), intdb.NullIfEmpty(p.FechaNacimiento))
}

func (r PersonaRepository) Update(ctx context.Context, p models.Persona) error {
	return execOne(ctx, pool(r.DB), "persona", `
		UPDATE personas
		SET nombre = ?, apellido = ?, documento = ?, telefono = ?, email = ?, direccion = ?, fecha_nacimiento = ?
		WHERE id = ?`,
		p.Nombre, p.Apellido, p.Documento,
		intdb.NullIfEmpty(p.Telefono), intdb.NullIfEmpty(p.Email), intdb.NullIfEmpty(p.Direccion), intdb.NullIfEmpty(p.FechaNacimiento),
		p.ID)
}

func (r PersonaRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "persona", `DELETE FROM personas WHERE id = ?`, id)
}
