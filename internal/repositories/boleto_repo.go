package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const boletoSelect = `
	SELECT b.id, b.codigo, b.viaje_id, b.cliente_id, b.asiento, b.precio, b.estado,
	       CONCAT(p.nombre, ' ', p.apellido), p.documento,
	       r.origen, r.destino, DATE_FORMAT(v.fecha, '%Y-%m-%d'), TIME_FORMAT(v.hora_salida, '%H:%i'), u.placa
	FROM boletos b
	JOIN clientes c ON c.id = b.cliente_id
	JOIN personas p ON p.id = c.persona_id
	JOIN viajes v ON v.id = b.viaje_id
	JOIN rutas r ON r.id = v.ruta_id
	JOIN unidades u ON u.id = v.unidad_id`

type BoletoRepository struct {
	DB *sql.DB
}

type BoletoFilter struct {
	domain.ListParams
	ViajeID   int64
	ClienteID int64
	Estado    string
}

func scanBoleto(row interface{ Scan(...any) error }) (models.Boleto, error) {
	var b models.Boleto
	err := row.Scan(&b.ID, &b.Codigo, &b.ViajeID, &b.ClienteID, &b.Asiento, &b.Precio, &b.Estado,
		&b.Pasajero, &b.Documento, &b.Origen, &b.Destino, &b.Fecha, &b.HoraSalida, &b.Placa)
	return b, err
}

func (r BoletoRepository) List(ctx context.Context, f BoletoFilter) ([]models.Boleto, error) {
	var conds []string
	var args []any
	if c, a := searchClause(f.Q, "b.codigo", "p.nombre", "p.apellido", "p.documento"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if f.ViajeID > 0 {
		conds = append(conds, "b.viaje_id = ?")
		args = append(args, f.ViajeID)
	}
	if f.ClienteID > 0 {
		conds = append(conds, "b.cliente_id = ?")
		args = append(args, f.ClienteID)
	}
	if f.Estado != "" {
		conds = append(conds, "b.estado = ?")
		args = append(args, f.Estado)
	}
	limit, largs := pageClause(f.ListParams)
	rows, err := pool(r.DB).QueryContext(ctx, boletoSelect+whereSQL(conds)+" ORDER BY b.id DESC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("boleto", err)
	}
	defer rows.Close()

	out := []models.Boleto{}
	for rows.Next() {
		b, err := scanBoleto(rows)
		if err != nil {
			return nil, translate("boleto", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r BoletoRepository) GetByID(ctx context.Context, id int64) (models.Boleto, error) {
	b, err := scanBoleto(pool(r.DB).QueryRowContext(ctx, boletoSelect+" WHERE b.id = ?", id))
	if err != nil {
		return models.Boleto{}, translate("boleto", err)
	}
	return b, nil
}

// AsientosOcupados maps seat number to the boleto holding it (cancelled boletos free the seat).
func (r BoletoRepository) AsientosOcupados(ctx context.Context, viajeID int64) (map[int]int64, error) {
	return asientosOcupados(ctx, pool(r.DB), viajeID, false)
}

func asientosOcupados(ctx context.Context, q intdb.DBTX, viajeID int64, lock bool) (map[int]int64, error) {
	query := `SELECT asiento, id FROM boletos WHERE viaje_id = ? AND estado <> ?`
	if lock {
		query += " FOR UPDATE"
	}
	rows, err := q.QueryContext(ctx, query, viajeID, domain.EstadoBoletoCancelado)
	if err != nil {
		return nil, translate("boleto", err)
	}
	defer rows.Close()

	out := map[int]int64{}
	for rows.Next() {
		var asiento int
		var id int64
		if err := rows.Scan(&asiento, &id); err != nil {
			return nil, translate("boleto", err)
		}
		out[asiento] = id
	}
	return out, rows.Err()
}

// Reservar inserts a boleto inside a transaction after locking the viaje row and its boletos,
// so two concurrent reservations cannot take the same seat.
func (r BoletoRepository) Reservar(ctx context.Context, b models.Boleto) (int64, error) {
	var id int64
	err := intdb.WithTx(ctx, pool(r.DB), func(tx *sql.Tx) error {
		var capacidad int
		var estadoViaje string
		err := tx.QueryRowContext(ctx, `
			SELECT u.capacidad, v.estado
			FROM viajes v JOIN unidades u ON u.id = v.unidad_id
			WHERE v.id = ? FOR UPDATE`, b.ViajeID).Scan(&capacidad, &estadoViaje)
		if err != nil {
			return translate("viaje", err)
		}
		if estadoViaje == domain.EstadoViajeCancelado || estadoViaje == domain.EstadoViajeFinalizado {
			return domain.ConflictError{Resource: "viaje", Msg: "no admite reservas en estado " + estadoViaje}
		}
		if b.Asiento < 1 || b.Asiento > capacidad {
			return domain.Invalid("asiento", "fuera del rango de la unidad")
		}

		ocupados, err := asientosOcupados(ctx, tx, b.ViajeID, true)
		if err != nil {
			return err
		}
		if _, taken := ocupados[b.Asiento]; taken {
			return domain.ConflictError{Resource: "asiento", Msg: "ya esta ocupado"}
		}

		id, err = insert(ctx, tx, "boleto", `
			INSERT INTO boletos (codigo, viaje_id, cliente_id, asiento, precio, estado)
			VALUES (?, ?, ?, ?, ?, ?)`,
			b.Codigo, b.ViajeID, b.ClienteID, b.Asiento, b.Precio, b.Estado)
		return err
	})
	return id, err
}

func (r BoletoRepository) UpdateEstado(ctx context.Context, id int64, estado string) error {
	return execOne(ctx, pool(r.DB), "boleto", `UPDATE boletos SET estado = ? WHERE id = ?`, estado, id)
}

func (r BoletoRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "boleto", `DELETE FROM boletos WHERE id = ?`, id)
}
