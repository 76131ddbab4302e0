package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const viajeSelect = `
	SELECT v.id, v.ruta_id, v.unidad_id, DATE_FORMAT(v.fecha, '%Y-%m-%d'), TIME_FORMAT(v.hora_salida, '%H:%i'),
	       COALESCE(v.conductor,''), v.estado,
	       r.origen, r.destino, u.placa, u.capacidad, r.precio
	FROM viajes v
	JOIN rutas r ON r.id = v.ruta_id
	JOIN unidades u ON u.id = v.unidad_id`

type ViajeRepository struct {
	DB *sql.DB
}

type ViajeFilter struct {
	domain.ListParams
	RutaID int64
	Fecha  string
	Estado string
}

func scanViaje(row interface{ Scan(...any) error }) (models.Viaje, error) {
	var v models.Viaje
	err := row.Scan(&v.ID, &v.RutaID, &v.UnidadID, &v.Fecha, &v.HoraSalida, &v.Conductor, &v.Estado,
		&v.Origen, &v.Destino, &v.Placa, &v.Capacidad, &v.Precio)
	return v, err
}

func (r ViajeRepository) List(ctx context.Context, f ViajeFilter) ([]models.Viaje, error) {
	var conds []string
	var args []any
	if c, a := searchClause(f.Q, "r.origen", "r.destino", "u.placa", "v.conductor"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if f.RutaID > 0 {
		conds = append(conds, "v.ruta_id = ?")
		args = append(args, f.RutaID)
	}
	if f.Fecha != "" {
		conds = append(conds, "v.fecha = ?")
		args = append(args, f.Fecha)
	}
	if f.Estado != "" {
		conds = append(conds, "v.estado = ?")
		args = append(args, f.Estado)
	}
	limit, largs := pageClause(f.ListParams)
	rows, err := pool(r.DB).QueryContext(ctx, viajeSelect+whereSQL(conds)+" ORDER BY v.fecha DESC, v.hora_salida ASC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("viaje", err)
	}
	defer rows.Close()

	out := []models.Viaje{}
	for rows.Next() {
		v, err := scanViaje(rows)
		if err != nil {
			return nil, translate("viaje", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r ViajeRepository) GetByID(ctx context.Context, id int64) (models.Viaje, error) {
	return r.getByID(ctx, pool(r.DB), id)
}

func (r ViajeRepository) getByID(ctx context.Context, q intdb.DBTX, id int64) (models.Viaje, error) {
	v, err := scanViaje(q.QueryRowContext(ctx, viajeSelect+" WHERE v.id = ?", id))
	if err != nil {
		return models.Viaje{}, translate("viaje", err)
	}
	return v, nil
}

func (r ViajeRepository) Create(ctx context.Context, v models.Viaje) (int64, error) {
	return insert(ctx, pool(r.DB), "viaje", `
		INSERT INTO viajes (ruta_id, unidad_id, fecha, hora_salida, conductor, estado)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.RutaID, v.UnidadID, v.Fecha, v.HoraSalida, intdb.NullIfEmpty(v.Conductor), v.Estado)
}

func (r ViajeRepository) Update(ctx context.Context, v models.Viaje) error {
	return execOne(ctx, pool(r.DB), "viaje", `
		UPDATE viajes SET ruta_id = ?, unidad_id = ?, fecha = ?, hora_salida = ?, conductor = ?, estado = ?
		WHERE id = ?`,
		v.RutaID, v.UnidadID, v.Fecha, v.HoraSalida, intdb.NullIfEmpty(v.Conductor), v.Estado, v.ID)
}

func (r ViajeRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "viaje", `DELETE FROM viajes WHERE id = ?`, id)
}
