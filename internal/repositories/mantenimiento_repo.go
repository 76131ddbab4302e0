package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const mantenimientoSelect = `
	SELECT m.id, m.unidad_id, COALESCE(u.placa,''), m.tipo, COALESCE(m.descripcion,''),
	       COALESCE(DATE_FORMAT(m.fecha_programada, '%Y-%m-%d'),''),
	       COALESCE(DATE_FORMAT(m.fecha_realizada, '%Y-%m-%d'),''),
	       m.kilometraje,
	       COALESCE(DATE_FORMAT(m.proximo_mantenimiento, '%Y-%m-%d'),''),
	       m.costo, m.estado
	FROM mantenimientos m
	LEFT JOIN unidades u ON u.id = m.unidad_id`

type MantenimientoRepository struct {
	DB *sql.DB
}

type MantenimientoFilter struct {
	domain.ListParams
	UnidadID int64
	Estado   string
}

func scanMantenimiento(row interface{ Scan(...any) error }) (models.Mantenimiento, error) {
	var m models.Mantenimiento
	err := row.Scan(&m.ID, &m.UnidadID, &m.Placa, &m.Tipo, &m.Descripcion,
		&m.FechaProgramada, &m.FechaRealizada, &m.Kilometraje, &m.ProximoMantenimiento, &m.Costo, &m.Estado)
	return m, err
}

func (r MantenimientoRepository) List(ctx context.Context, f MantenimientoFilter) ([]models.Mantenimiento, error) {
	var conds []string
	var args []any
	if c, a := searchClause(f.Q, "m.tipo", "u.placa"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if f.UnidadID > 0 {
		conds = append(conds, "m.unidad_id = ?")
		args = append(args, f.UnidadID)
	}
	if f.Estado != "" {
		conds = append(conds, "m.estado = ?")
		args = append(args, f.Estado)
	}
	limit, largs := pageClause(f.ListParams)
	query := mantenimientoSelect + whereSQL(conds) + " ORDER BY COALESCE(m.proximo_mantenimiento, m.fecha_programada) ASC, m.id DESC" + limit
	return r.query(ctx, query, append(args, largs...)...)
}

// ListAbiertos returns every mantenimiento still waiting to be done, for the alert classifier.
func (r MantenimientoRepository) ListAbiertos(ctx context.Context) ([]models.Mantenimiento, error) {
	return r.query(ctx, mantenimientoSelect+" WHERE m.estado NOT IN (?, ?) ORDER BY m.id", domain.EstadoMantRealizado, domain.EstadoMantCancelado)
}

func (r MantenimientoRepository) query(ctx context.Context, query string, args ...any) ([]models.Mantenimiento, error) {
	rows, err := pool(r.DB).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translate("mantenimiento", err)
	}
	defer rows.Close()

	out := []models.Mantenimiento{}
	for rows.Next() {
		m, err := scanMantenimiento(rows)
		if err != nil {
			return nil, translate("mantenimiento", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r MantenimientoRepository) GetByID(ctx context.Context, id int64) (models.Mantenimiento, error) {
	m, err := scanMantenimiento(pool(r.DB).QueryRowContext(ctx, mantenimientoSelect+" WHERE m.id = ?", id))
	if err != nil {
		return models.Mantenimiento{}, translate("mantenimiento", err)
	}
	return m, nil
}

func (r MantenimientoRepository) Create(ctx context.Context, m models.Mantenimiento) (int64, error) {
	return createMantenimiento(ctx, pool(r.DB), m)
}

func createMantenimiento(ctx context.Context, q intdb.DBTX, m models.Mantenimiento) (int64, error) {
	return insert(ctx, q, "mantenimiento", `
		INSERT INTO mantenimientos (unidad_id, tipo, descripcion, fecha_programada, fecha_realizada, kilometraje, proximo_mantenimiento, costo, estado)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.UnidadID, m.Tipo, intdb.NullIfEmpty(m.Descripcion),
		intdb.NullIfEmpty(m.FechaProgramada), intdb.NullIfEmpty(m.FechaRealizada),
		m.Kilometraje, intdb.NullIfEmpty(m.ProximoMantenimiento), m.Costo, m.Estado)
}

func (r MantenimientoRepository) Update(ctx context.Context, m models.Mantenimiento) error {
	return updateMantenimiento(ctx, pool(r.DB), m)
}

func updateMantenimiento(ctx context.Context, q intdb.DBTX, m models.Mantenimiento) error {
	return execOne(ctx, q, "mantenimiento", `
		UPDATE mantenimientos
		SET unidad_id = ?, tipo = ?, descripcion = ?, fecha_programada = ?, fecha_realizada = ?,
		    kilometraje = ?, proximo_mantenimiento = ?, costo = ?, estado = ?
		WHERE id = ?`,
		m.UnidadID, m.Tipo, intdb.NullIfEmpty(m.Descripcion),
		intdb.NullIfEmpty(m.FechaProgramada), intdb.NullIfEmpty(m.FechaRealizada),
		m.Kilometraje, intdb.NullIfEmpty(m.ProximoMantenimiento), m.Costo, m.Estado, m.ID)
}

// Completar locks the record, lets apply turn it into the finished record plus its
// follow-up, and stores both in one transaction. The follow-up id is returned.
func (r MantenimientoRepository) Completar(ctx context.Context, id int64,
	apply func(models.Mantenimiento) (hecho, siguiente models.Mantenimiento, err error)) (models.Mantenimiento, int64, error) {
	var hecho models.Mantenimiento
	var siguienteID int64
	err := intdb.WithTx(ctx, pool(r.DB), func(tx *sql.Tx) error {
		actual, err := scanMantenimiento(tx.QueryRowContext(ctx, mantenimientoSelect+" WHERE m.id = ? FOR UPDATE", id))
		if err != nil {
			return translate("mantenimiento", err)
		}
		h, siguiente, err := apply(actual)
		if err != nil {
			return err
		}
		if err := updateMantenimiento(ctx, tx, h); err != nil {
			return err
		}
		siguienteID, err = createMantenimiento(ctx, tx, siguiente)
		if err != nil {
			return err
		}
		hecho = h
		return nil
	})
	if err != nil {
		return models.Mantenimiento{}, 0, err
	}
	return hecho, siguienteID, nil
}

func (r MantenimientoRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "mantenimiento", `DELETE FROM mantenimientos WHERE id = ?`, id)
}
