package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const pagoSelect = `
	SELECT g.id, g.cliente_id, CONCAT(p.nombre, ' ', p.apellido), g.concepto, COALESCE(g.referencia_id,0),
	       g.monto, g.metodo, DATE_FORMAT(g.fecha, '%Y-%m-%d'), g.estado
	FROM pagos g
	JOIN clientes c ON c.id = g.cliente_id
	JOIN personas p ON p.id = c.persona_id`

type PagoRepository struct {
	DB *sql.DB
}

type PagoFilter struct {
	domain.ListParams
	ClienteID int64
	Concepto  string
}

func scanPago(row interface{ Scan(...any) error }) (models.Pago, error) {
	var g models.Pago
	err := row.Scan(&g.ID, &g.ClienteID, &g.Cliente, &g.Concepto, &g.ReferenciaID, &g.Monto, &g.Metodo, &g.Fecha, &g.Estado)
	return g, err
}

func (r PagoRepository) List(ctx context.Context, f PagoFilter) ([]models.Pago, error) {
	var conds []string
	var args []any
	if c, a := searchClause(f.Q, "p.nombre", "p.apellido", "p.documento"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if f.ClienteID > 0 {
		conds = append(conds, "g.cliente_id = ?")
		args = append(args, f.ClienteID)
	}
	if f.Concepto != "" {
		conds = append(conds, "g.concepto = ?")
		args = append(args, f.Concepto)
	}
	limit, largs := pageClause(f.ListParams)
	rows, err := pool(r.DB).QueryContext(ctx, pagoSelect+whereSQL(conds)+" ORDER BY g.fecha DESC, g.id DESC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("pago", err)
	}
	defer rows.Close()

	out := []models.Pago{}
	for rows.Next() {
		g, err := scanPago(rows)
		if err != nil {
			return nil, translate("pago", err)
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r PagoRepository) GetByID(ctx context.Context, id int64) (models.Pago, error) {
	g, err := scanPago(pool(r.DB).QueryRowContext(ctx, pagoSelect+" WHERE g.id = ?", id))
	if err != nil {
		return models.Pago{}, translate("pago", err)
	}
	return g, nil
}

func (r PagoRepository) Create(ctx context.Context, g models.Pago) (int64, error) {
	return insert(ctx, pool(r.DB), "pago", `
		INSERT INTO pagos (cliente_id, concepto, referencia_id, monto, metodo, fecha, estado)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		g.ClienteID, g.Concepto, intdb.NullIfZero(g.ReferenciaID), g.Monto, g.Metodo, g.Fecha, g.Estado)
}

func (r PagoRepository) Update(ctx context.Context, g models.Pago) error {
	return execOne(ctx, pool(r.DB), "pago", `
		UPDATE pagos SET cliente_id = ?, concepto = ?, referencia_id = ?, monto = ?, metodo = ?, fecha = ?, estado = ?
		WHERE id = ?`,
		g.ClienteID, g.Concepto, intdb.NullIfZero(g.ReferenciaID), g.Monto, g.Metodo, g.Fecha, g.Estado, g.ID)
}

func (r PagoRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "pago", `DELETE FROM pagos WHERE id = ?`, id)
}
