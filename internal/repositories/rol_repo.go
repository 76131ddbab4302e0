package repositories

import (
	"context"
	"database/sql"
	"strings"

	intdb "transportes/internal/db"
	"transportes/internal/domain"
	"transportes/internal/domain/models"
)

type RolRepository struct {
	DB *sql.DB
}

func (r RolRepository) ListPermisos(ctx context.Context) ([]models.Permiso, error) {
	rows, err := pool(r.DB).QueryContext(ctx, `SELECT id, codigo, COALESCE(descripcion,'') FROM permisos ORDER BY codigo`)
	if err != nil {
		return nil, translate("permiso", err)
	}
	defer rows.Close()

	out := []models.Permiso{}
	for rows.Next() {
		var p models.Permiso
		if err := rows.Scan(&p.ID, &p.Codigo, &p.Descripcion); err != nil {
			return nil, translate("permiso", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r RolRepository) CreatePermiso(ctx context.Context, p models.Permiso) (int64, error) {
	return insert(ctx, pool(r.DB), "permiso",
		`INSERT INTO permisos (codigo, descripcion) VALUES (?, ?)`, p.Codigo, intdb.NullIfEmpty(p.Descripcion))
}

func (r RolRepository) DeletePermiso(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "permiso", `DELETE FROM permisos WHERE id = ?`, id)
}

// List returns roles with their permission codes aggregated.
func (r RolRepository) List(ctx context.Context) ([]models.Rol, error) {
	rows, err := pool(r.DB).QueryContext(ctx, `
		SELECT r.id, r.nombre, COALESCE(r.descripcion,''), COALESCE(GROUP_CONCAT(p.codigo ORDER BY p.codigo SEPARATOR ','),'')
		FROM roles r
		LEFT JOIN roles_permisos rp ON rp.rol_id = r.id
		LEFT JOIN permisos p ON p.id = rp.permiso_id
		GROUP BY r.id, r.nombre, r.descripcion
		ORDER BY r.nombre`)
	if err != nil {
		return nil, translate("rol", err)
	}
	defer rows.Close()

	out := []models.Rol{}
	for rows.Next() {
		var rol models.Rol
		var codes string
		if err := rows.Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &codes); err != nil {
			return nil, translate("rol", err)
		}
		rol.Permisos = splitCodes(codes)
		out = append(out, rol)
	}
	return out, rows.Err()
}

func (r RolRepository) GetByID(ctx context.Context, id int64) (models.Rol, error) {
	var rol models.Rol
	var codes string
	err := pool(r.DB).QueryRowContext(ctx, `
		SELECT r.id, r.nombre, COALESCE(r.descripcion,''), COALESCE(GROUP_CONCAT(p.codigo ORDER BY p.codigo SEPARATOR ','),'')
		FROM roles r
		LEFT JOIN roles_permisos rp ON rp.rol_id = r.id
		LEFT JOIN permisos p ON p.id = rp.permiso_id
		WHERE r.id = ?
		GROUP BY r.id, r.nombre, r.descripcion`, id).Scan(&rol.ID, &rol.Nombre, &rol.Descripcion, &codes)
	if err != nil {
		return models.Rol{}, translate("rol", err)
	}
	rol.Permisos = splitCodes(codes)
	return rol, nil
}

// Save inserts (ID == 0) or updates a rol and replaces its permission set.
func (r RolRepository) Save(ctx context.Context, rol models.Rol) (int64, error) {
	id := rol.ID
	err := intdb.WithTx(ctx, pool(r.DB), func(tx *sql.Tx) error {
		var err error
		if id == 0 {
			id, err = insert(ctx, tx, "rol", `INSERT INTO roles (nombre, descripcion) VALUES (?, ?)`,
				rol.Nombre, intdb.NullIfEmpty(rol.Descripcion))
		} else {
			err = execOne(ctx, tx, "rol", `UPDATE roles SET nombre = ?, descripcion = ? WHERE id = ?`,
				rol.Nombre, intdb.NullIfEmpty(rol.Descripcion), id)
		}
		if err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM roles_permisos WHERE rol_id = ?`, id); err != nil {
			return translate("rol", err)
		}
		for _, code := range rol.Permisos {
			res, err := tx.ExecContext(ctx, `
				INSERT INTO roles_permisos (rol_id, permiso_id)
				SELECT ?, id FROM permisos WHERE codigo = ?`, id, code)
			if err != nil {
				return translate("rol", err)
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return domain.Invalid("permisos", "permiso desconocido: "+code)
			}
		}
		return nil
	})
	return id, err
}

func (r RolRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "rol", `DELETE FROM roles WHERE id = ?`, id)
}

func splitCodes(s string) []string {
	out := []string{}
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
