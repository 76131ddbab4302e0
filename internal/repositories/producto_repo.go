package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

const productoSelect = `SELECT id, nombre, COALESCE(descripcion,''), precio, stock, activo FROM productos`

type ProductoRepository struct {
	DB *sql.DB
}

func scanProducto(row interface{ Scan(...any) error }) (models.Producto, error) {
	var p models.Producto
	err := row.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.Stock, &p.Activo)
	return p, err
}

func (r ProductoRepository) List(ctx context.Context, p domain.ListParams, soloActivos bool) ([]models.Producto, error) {
	var conds []string
	var args []any
	if c, a := searchClause(p.Q, "nombre", "descripcion"); c != "" {
		conds = append(conds, c)
		args = append(args, a...)
	}
	if soloActivos {
		conds = append(conds, "activo = 1")
	}
	limit, largs := pageClause(p)
	rows, err := pool(r.DB).QueryContext(ctx, productoSelect+whereSQL(conds)+" ORDER BY nombre"+limit, append(args, largs...)...)
	if err != nil {
		return nil, translate("producto", err)
	}
	defer rows.Close()

	out := []models.Producto{}
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, translate("producto", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r ProductoRepository) GetByID(ctx context.Context, id int64) (models.Producto, error) {
	p, err := scanProducto(pool(r.DB).QueryRowContext(ctx, productoSelect+" WHERE id = ?", id))
	if err != nil {
		return models.Producto{}, translate("producto", err)
	}
	return p, nil
}

func (r ProductoRepository) Create(ctx context.Context, p models.Producto) (int64, error) {
	return insert(ctx, pool(r.DB), "producto",
		`INSERT INTO productos (nombre, descripcion, precio, stock, activo) VALUES (?, ?, ?, ?, ?)`,
		p.Nombre, intdb.NullIfEmpty(p.Descripcion), p.Precio, p.Stock, p.Activo)
}

func (r ProductoRepository) Update(ctx context.Context, p models.Producto) error {
	return execOne(ctx, pool(r.DB), "producto",
		`UPDATE productos SET nombre = ?, descripcion = ?, precio = ?, stock = ?, activo = ? WHERE id = ?`,
		p.Nombre, intdb.NullIfEmpty(p.Descripcion), p.Precio, p.Stock, p.Activo, p.ID)
}

func (r ProductoRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "producto", `DELETE FROM productos WHERE id = ?`, id)
}
