package repositories

import (
	"context"
	"database/sql"
	"fmt"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const ventaSelect = `
	SELECT v.id, v.cliente_id, CONCAT(p.nombre, ' ', p.apellido), DATE_FORMAT(v.fecha, '%Y-%m-%d'),
	       v.subtotal, v.descuento, v.total, v.estado
	FROM ventas v
	JOIN clientes c ON c.id = v.cliente_id
	JOIN personas p ON p.id = c.persona_id`

type VentaRepository struct {
	DB *sql.DB
}

type VentaFilter struct {
	domain.ListParams
	ClienteID int64
	Desde     string
	Hasta     string
}

func scanVenta(row interface{ Scan(...any) error }) (models.Venta, error) {
	var v models.Venta
	err := row.Scan(&v.ID, &v.ClienteID, &v.Cliente, &v.Fecha, &v.Subtotal, &v.Descuento, &v.Total, &v.Estado)
	return v, err
}

// List returns ventas without their items; use GetByID for the detail.
func (r VentaRepository) List(ctx context.Context, f VentaFilter) ([]models.Venta, error) {
	var conds []string
	var args []any
	if c, a := searchClause(f.Q, "p.nombre", "p.apellido", "p.documento"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if f.ClienteID > 0 {
		conds = append(conds, "v.cliente_id = ?")
		args = append(args, f.ClienteID)
	}
	if f.Desde != "" {
		conds = append(conds, "v.fecha >= ?")
		args = append(args, f.Desde)
	}
	if f.Hasta != "" {
		conds = append(conds, "v.fecha <= ?")
		args = append(args, f.Hasta)
	}
	limit, largs := pageClause(f.ListParams)
	rows, err := pool(r.DB).QueryContext(ctx, ventaSelect+whereSQL(conds)+" ORDER BY v.fecha DESC, v.id DESC"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("venta", err)
	}
	defer rows.Close()

	out := []models.Venta{}
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, translate("venta", err)
		}
		v.Items = []models.VentaDetalle{}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r VentaRepository) GetByID(ctx context.Context, id int64) (models.Venta, error) {
	db := pool(r.DB)
	v, err := scanVenta(db.QueryRowContext(ctx, ventaSelect+" WHERE v.id = ?", id))
	if err != nil {
		return models.Venta{}, translate("venta", err)
	}

	rows, err := db.QueryContext(ctx, `
		SELECT d.id, d.producto_id, pr.nombre, d.cantidad, d.precio_unitario, d.importe
		FROM venta_detalles d
		JOIN productos pr ON pr.id = d.producto_id
		WHERE d.venta_id = ?
		ORDER BY d.id`, id)
	if err != nil {
		return models.Venta{}, translate("venta", err)
	}
	defer rows.Close()

	v.Items = []models.VentaDetalle{}
	for rows.Next() {
		var d models.VentaDetalle
		if err := rows.Scan(&d.ID, &d.ProductoID, &d.Producto, &d.Cantidad, &d.PrecioUnitario, &d.Importe); err != nil {
			return models.Venta{}, translate("venta", err)
		}
		v.Items = append(v.Items, d)
	}
	return v, rows.Err()
}

// Registrar locks every product, fills default prices, computes totals and decrements
// stock in a single transaction. The stored venta (with totals) is returned.
func (r VentaRepository) Registrar(ctx context.Context, v models.Venta) (models.Venta, error) {
	err := intdb.WithTx(ctx, pool(r.DB), func(tx *sql.Tx) error {
		items := make([]models.VentaDetalle, len(v.Items))
		pedidos := map[int64]int{}
		for i, it := range v.Items {
			var nombre string
			var precio float64
			var stock int
			var activo bool
			err := tx.QueryRowContext(ctx,
				`SELECT nombre, precio, stock, activo FROM productos WHERE id = ? FOR UPDATE`, it.ProductoID).
				Scan(&nombre, &precio, &stock, &activo)
			if err != nil {
				return translate(fmt.Sprintf("producto %d", it.ProductoID), err)
			}
			if !activo {
				return domain.ConflictError{Resource: "producto " + nombre, Msg: "esta inactivo"}
			}
			pedidos[it.ProductoID] += it.Cantidad
			if pedidos[it.ProductoID] > stock {
				return domain.ConflictError{Resource: "producto " + nombre, Msg: fmt.Sprintf("stock insuficiente (disponible %d)", stock)}
			}
			if it.PrecioUnitario <= 0 {
				it.PrecioUnitario = precio
			}
			it.Producto = nombre
			items[i] = it
		}

		calc, subtotal, total, err := domain.TotalesVenta(items, v.Descuento)
		if err != nil {
			return err
		}
		v.Items, v.Subtotal, v.Total = calc, subtotal, total

		v.ID, err = insert(ctx, tx, "venta", `
			INSERT INTO ventas (cliente_id, fecha, subtotal, descuento, total, estado)
			VALUES (?, ?, ?, ?, ?, ?)`,
			v.ClienteID, v.Fecha, v.Subtotal, v.Descuento, v.Total, v.Estado)
		if err != nil {
			return err
		}

		for i := range v.Items {
			d := &v.Items[i]
			d.ID, err = insert(ctx, tx, "venta", `
				INSERT INTO venta_detalles (venta_id, producto_id, cantidad, precio_unitario, importe)
				VALUES (?, ?, ?, ?, ?)`,
				v.ID, d.ProductoID, d.Cantidad, d.PrecioUnitario, d.Importe)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `UPDATE productos SET stock = stock - ? WHERE id = ?`, d.Cantidad, d.ProductoID); err != nil {
				return translate("producto", err)
			}
		}
		return nil
	})
	if err != nil {
		return models.Venta{}, err
	}
	return v, nil
}

// Anular marks the venta as anulada and puts the stock back.
func (r VentaRepository) Anular(ctx context.Context, id int64) error {
	return intdb.WithTx(ctx, pool(r.DB), func(tx *sql.Tx) error {
		var estado string
		if err := tx.QueryRowContext(ctx, `SELECT estado FROM ventas WHERE id = ? FOR UPDATE`, id).Scan(&estado); err != nil {
			return translate("venta", err)
		}
		if estado == domain.EstadoVentaAnulada {
			return domain.ConflictError{Resource: "venta", Msg: "ya esta anulada"}
		}
		if _, err := tx.ExecContext(ctx, `
			UPDATE productos pr
			JOIN (SELECT producto_id, SUM(cantidad) AS cantidad FROM venta_detalles WHERE venta_id = ? GROUP BY producto_id) d
			  ON d.producto_id = pr.id
			SET pr.stock = pr.stock + d.cantidad`, id); err != nil {
			return translate("producto", err)
		}
		return execOne(ctx, tx, "venta", `UPDATE ventas SET estado = ? WHERE id = ?`, domain.EstadoVentaAnulada, id)
	})
}
