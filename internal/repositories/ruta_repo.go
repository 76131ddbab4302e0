package repositories

import (
	"context"
	"database/sql"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const rutaSelect = `
	SELECT id, origen, destino, TIME_FORMAT(hora_salida, '%H:%i'), duracion_min, distancia_km, precio, activa
	FROM rutas`

type RutaRepository struct {
	DB *sql.DB
}

func scanRuta(row interface{ Scan(...any) error }) (models.Ruta, error) {
	var m models.Ruta
	err := row.Scan(&m.ID, &m.Origen, &m.Destino, &m.HoraSalida, &m.DuracionMin, &m.DistanciaKm, &m.Precio, &m.Activa)
	return m, err
}

// List supports q (origen/destino) and soloActivas for the reservation dropdown.
func (r RutaRepository) List(ctx context.Context, p domain.ListParams, soloActivas bool) ([]models.Ruta, error) {
	var conds []string
	var args []any
	if c, a := searchClause(p.Q, "origen", "destino"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if soloActivas {
		conds = append(conds, "activa = 1")
	}
	limit, largs := pageClause(p)
	rows, err := pool(r.DB).QueryContext(ctx, rutaSelect+whereSQL(conds)+" ORDER BY origen, destino, hora_salida"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("ruta", err)
	}
	defer rows.Close()

	out := []models.Ruta{}
	for rows.Next() {
		m, err := scanRuta(rows)
		if err != nil {
			return nil, translate("ruta", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (r RutaRepository) GetByID(ctx context.Context, id int64) (models.Ruta, error) {
	m, err := scanRuta(pool(r.DB).QueryRowContext(ctx, rutaSelect+" WHERE id = ?", id))
	if err != nil {
		return models.Ruta{}, translate("ruta", err)
	}
	return m, nil
}

func (r RutaRepository) Create(ctx context.Context, m models.Ruta) (int64, error) {
	return insert(ctx, pool(r.DB), "ruta", `
		INSERT INTO rutas (origen, destino, hora_salida, duracion_min, distancia_km, precio, activa)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.Origen, m.Destino, m.HoraSalida, m.DuracionMin, m.DistanciaKm, m.Precio, m.Activa)
}

func (r RutaRepository) Update(ctx context.Context, m models.Ruta) error {
	return execOne(ctx, pool(r.DB), "ruta", `
		UPDATE rutas
		SET origen = ?, destino = ?, hora_salida = ?, duracion_min = ?, distancia_km = ?, precio = ?, activa = ?
		WHERE id = ?`,
		m.Origen, m.Destino, m.HoraSalida, m.DuracionMin, m.DistanciaKm, m.Precio, m.Activa, m.ID)
}

func (r RutaRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "ruta", `DELETE FROM rutas WHERE id = ?`, id)
}
