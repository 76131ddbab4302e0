package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const encomiendaSelect = `
	SELECT e.id, e.codigo, COALESCE(e.viaje_id,0), e.remitente_id, e.destinatario_nombre,
	       COALESCE(e.destinatario_telefono,''), COALESCE(e.descripcion,''), e.peso_kg, e.costo, e.estado,
	       CONCAT(p.nombre, ' ', p.apellido), DATE_FORMAT(e.created_at, '%Y-%m-%d')
	FROM encomiendas e
	JOIN clientes c ON c.id = e.remitente_id
	JOIN personas p ON p.id = c.persona_id`

type EncomiendaRepository struct {
	DB *sql.DB
}

type EncomiendaFilter struct {
	domain.ListParams
	ViajeID int64
	Estado  string
}

func scanEncomienda(row interface{ Scan(...any) error }) (models.Encomienda, error) {
	var e models.Encomienda
	err := row.Scan(&e.ID, &e.Codigo, &e.ViajeID, &e.RemitenteID, &e.DestinatarioNombre,
		&e.DestinatarioTelefono, &e.Descripcion, &e.PesoKg, &e.Costo, &e.Estado, &e.Remitente, &e.Fecha)
	return e, err
}

func (r EncomiendaRepository) List(ctx context.Context, f EncomiendaFilter) ([]models.Encomienda, error) {
	var conds []string
	var args []any
	if c, a := searchClause(f.Q, "e.codigo", "e.destinatario_nombre", "p.nombre", "p.apellido"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if f.ViajeID > 0 {
		conds = append(conds, "e.viaje_id = ?")
		args = append(args, f.ViajeID)
	}
	if f.Estado != "" {
		conds = append(conds, "e.estado = ?")
		args = append(args, f.Estado)
	}
	limit, largs := pageClause(f.ListParams)
	rows, err := pool(r.DB).QueryContext(ctx, encomiendaSelect+whereSQL(conds)+" ORDER BY e.id DESC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("encomienda", err)
	}
	defer rows.Close()

	out := []models.Encomienda{}
	for rows.Next() {
		e, err := scanEncomienda(rows)
		if err != nil {
			return nil, translate("encomienda", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r EncomiendaRepository) GetByID(ctx context.Context, id int64) (models.Encomienda, error) {
	e, err := scanEncomienda(pool(r.DB).QueryRowContext(ctx, encomiendaSelect+" WHERE e.id = ?", id))
	if err != nil {
		return models.Encomienda{}, translate("encomienda", err)
	}
	return e, nil
}

func (r EncomiendaRepository) Create(ctx context.Context, e models.Encomienda) (int64, error) {
	return insert(ctx, pool(r.DB), "encomienda", `
		INSERT INTO encomiendas (codigo, viaje_id, remitente_id, destinatario_nombre, destinatario_telefono, descripcion, peso_kg, costo, estado)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Codigo, intdb.NullIfZero(e.ViajeID), e.RemitenteID, e.DestinatarioNombre,
		intdb.NullIfEmpty(e.DestinatarioTelefono), intdb.NullIfEmpty(e.Descripcion), e.PesoKg, e.Costo, e.Estado)
}

func (r EncomiendaRepository) Update(ctx context.Context, e models.Encomienda) error {
	return execOne(ctx, pool(r.DB), "encomienda", `
		UPDATE encomiendas
		SET viaje_id = ?, remitente_id = ?, destinatario_nombre = ?, destinatario_telefono = ?, descripcion = ?,
		    peso_kg = ?, costo = ?, estado = ?
		WHERE id = ?`,
		intdb.NullIfZero(e.ViajeID), e.RemitenteID, e.DestinatarioNombre,
		intdb.NullIfEmpty(e.DestinatarioTelefono), intdb.NullIfEmpty(e.Descripcion), e.PesoKg, e.Costo, e.Estado, e.ID)
}

func (r EncomiendaRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "encomienda", `DELETE FROM encomiendas WHERE id = ?`, id)
}
