package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const clienteSelect = `
	SELECT c.id, c.persona_id, c.tipo, COALESCE(c.nit,''), c.activo,
	       p.id, p.nombre, p.apellido, p.documento,
	       COALESCE(p.telefono,''), COALESCE(p.email,''), COALESCE(p.direccion,''),
	       COALESCE(DATE_FORMAT(p.fecha_nacimiento, '%Y-%m-%d'),'')
	FROM clientes c
	JOIN personas p ON p.id = c.persona_id`

type ClienteRepository struct {
	DB *sql.DB
}

func scanCliente(row interface{ Scan(...any) error }) (models.Cliente, error) {
	var c models.Cliente
	p := &c.Persona
	err := row.Scan(&c.ID, &c.PersonaID, &c.Tipo, &c.NIT, &c.Activo,
		&p.ID, &p.Nombre, &p.Apellido, &p.Documento, &p.Telefono, &p.Email, &p.Direccion, &p.FechaNacimiento)
	return c, err
}

func (r ClienteRepository) List(ctx context.Context, p domain.ListParams) ([]models.Cliente, error) {
	var conds []string
	var args []any
	if c, a := searchClause(p.Q, "p.nombre", "p.apellido", "p.documento", "c.nit"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	limit, largs := pageClause(p)
	rows, err := pool(r.DB).QueryContext(ctx, clienteSelect+whereSQL(conds)+" ORDER BY c.id DESC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("cliente", err)
	}
	defer rows.Close()

	out := []models.Cliente{}
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, translate("cliente", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r ClienteRepository) GetByID(ctx context.Context, id int64) (models.Cliente, error) {
	c, err := scanCliente(pool(r.DB).QueryRowContext(ctx, clienteSelect+" WHERE c.id = ?", id))
	if err != nil {
		return models.Cliente{}, translate("cliente", err)
	}
	return c, nil
}

func (r ClienteRepository) Create(ctx context.Context, c models.Cliente) (int64, error) {
	return r.CreateWith(ctx, pool(r.DB), c)
}

func (r ClienteRepository) CreateWith(ctx context.Context, q intdb.DBTX, c models.Cliente) (int64, error) {
	return insert(ctx, q, "cliente",
		`INSERT INTO clientes (persona_id, tipo, nit, activo) VALUES (?, ?, ?, ?)`,
		c.PersonaID, c.Tipo, intdb.NullIfEmpty(c.NIT), c.Activo)
}

func (r ClienteRepository) Update(ctx context.Context, c models.Cliente) error {
	return execOne(ctx, pool(r.DB), "cliente",
		`UPDATE clientes SET persona_id = ?, tipo = ?, nit = ?, activo = ? WHERE id = ?`,
		c.PersonaID, c.Tipo, intdb.NullIfEmpty(c.NIT), c.Activo, c.ID)
}

func (r ClienteRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "cliente", `DELETE FROM clientes WHERE id = ?`, id)
}
