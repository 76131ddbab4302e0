package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const unidadSelect = `
	SELECT id, placa, numero_interno, COALESCE(marca,''), COALESCE(modelo,''), COALESCE(anio,0),
	       capacidad, kilometraje, estado, COALESCE(ruta_id,0)
	FROM unidades`

type UnidadRepository struct {
	DB *sql.DB
}

func scanUnidad(row interface{ Scan(...any) error }) (models.Unidad, error) {
	var u models.Unidad
	err := row.Scan(&u.ID, &u.Placa, &u.NumeroInterno, &u.Marca, &u.Modelo, &u.Anio,
		&u.Capacidad, &u.Kilometraje, &u.Estado, &u.RutaID)
	return u, err
}

// GET /api/unidades?q=ABC&estado=activa&ruta_id=1
func (r UnidadRepository) List(ctx context.Context, p domain.ListParams, estado string, rutaID int64) ([]models.Unidad, error) {
	var conds []string
	var args []any
	if c, a := searchClause(p.Q, "placa", "numero_interno"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if estado != "" {
		conds = append(conds, "estado = ?")
		args = append(args, estado)
	}
	if rutaID > 0 {
		conds = append(conds, "ruta_id = ?")
		args = append(args, rutaID)
	}
	limit, largs := pageClause(p)
	rows, err := pool(r.DB).QueryContext(ctx, unidadSelect+whereSQL(conds)+" ORDER BY id DESC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("unidad", err)
	}
	defer rows.Close()

	out := []models.Unidad{}
	for rows.Next() {
		u, err := scanUnidad(rows)
		if err != nil {
			return nil, translate("unidad", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UnidadRepository) GetByID(ctx context.Context, id int64) (models.Unidad, error) {
	u, err := scanUnidad(pool(r.DB).QueryRowContext(ctx, unidadSelect+" WHERE id = ?", id))
	if err != nil {
		return models.Unidad{}, translate("unidad", err)
	}
	return u, nil
}

func (r UnidadRepository) Create(ctx context.Context, u models.Unidad) (int64, error) {
	return insert(ctx, pool(r.DB), "unidad", `
		INSERT INTO unidades (placa, numero_interno, marca, modelo, anio, capacidad, kilometraje, estado, ruta_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.Placa, u.NumeroInterno, intdb.NullIfEmpty(u.Marca), intdb.NullIfEmpty(u.Modelo), nullIfZeroInt(u.Anio),
		u.Capacidad, u.Kilometraje, u.Estado, intdb.NullIfZero(u.RutaID))
}

func (r UnidadRepository) Update(ctx context.Context, u models.Unidad) error {
	return execOne(ctx, pool(r.DB), "unidad", `
		UPDATE unidades
		SET placa = ?, numero_interno = ?, marca = ?, modelo = ?, anio = ?, capacidad = ?, kilometraje = ?, estado = ?, ruta_id = ?
		WHERE id = ?`,
		u.Placa, u.NumeroInterno, intdb.NullIfEmpty(u.Marca), intdb.NullIfEmpty(u.Modelo), nullIfZeroInt(u.Anio),
		u.Capacidad, u.Kilometraje, u.Estado, intdb.NullIfZero(u.RutaID), u.ID)
}

// UpdateKilometraje only moves the odometer forward.
func (r UnidadRepository) UpdateKilometraje(ctx context.Context, id int64, km int) error {
	_, err := pool(r.DB).ExecContext(ctx,
		`UPDATE unidades SET kilometraje = GREATEST(kilometraje, ?) WHERE id = ?`, km, id)
	return translate("unidad", err)
}

func (r UnidadRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "unidad", `DELETE FROM unidades WHERE id = ?`, id)
}

func nullIfZeroInt(v int) any {
	if v == 0 {
		return nil
	}
	return v
}
