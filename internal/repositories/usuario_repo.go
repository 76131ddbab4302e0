package repositories

import (
	"context"
	"database/sql"

	intdb "transportes/internal/db"
	"transportes/internal/domain/models"
)

const usuarioSelect = `
	SELECT u.id, u.nombre, u.email, u.password_hash, COALESCE(u.rol_id,0), COALESCE(r.nombre,''), u.activo
	FROM usuarios u
	LEFT JOIN roles r ON r.id = u.rol_id`

type UsuarioRepository struct {
	DB *sql.DB
}

func scanUsuario(row interface{ Scan(...any) error }) (models.Usuario, error) {
	var u models.Usuario
	err := row.Scan(&u.ID, &u.Nombre, &u.Email, &u.PasswordHash, &u.RolID, &u.Rol, &u.Activo)
	return u, err
}

func (r UsuarioRepository) List(ctx context.Context) ([]models.Usuario, error) {
	rows, err := pool(r.DB).QueryContext(ctx, usuarioSelect+" ORDER BY u.nombre")
	if err != nil {
		return nil, translate("usuario", err)
	}
	defer rows.Close()

	out := []models.Usuario{}
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, translate("usuario", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r UsuarioRepository) GetByID(ctx context.Context, id int64) (models.Usuario, error) {
	u, err := scanUsuario(pool(r.DB).QueryRowContext(ctx, usuarioSelect+" WHERE u.id = ?", id))
	if err != nil {
		return models.Usuario{}, translate("usuario", err)
	}
	return u, nil
}

func (r UsuarioRepository) GetByEmail(ctx context.Context, email string) (models.Usuario, error) {
	u, err := scanUsuario(pool(r.DB).QueryRowContext(ctx, usuarioSelect+" WHERE u.email = ?", email))
	if err != nil {
		return models.Usuario{}, translate("usuario", err)
	}
	return u, nil
}

// PermisosDeRol returns the permission codes granted to a rol.
func (r UsuarioRepository) PermisosDeRol(ctx context.Context, rolID int64) ([]string, error) {
	out := []string{}
	if rolID <= 0 {
		return out, nil
	}
	rows, err := pool(r.DB).QueryContext(ctx, `
		SELECT p.codigo FROM roles_permisos rp JOIN permisos p ON p.id = rp.permiso_id
		WHERE rp.rol_id = ? ORDER BY p.codigo`, rolID)
	if err != nil {
		return nil, translate("permiso", err)
	}
	defer rows.Close()
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, translate("permiso", err)
		}
		out = append(out, code)
	}
	return out, rows.Err()
}

func (r UsuarioRepository) Create(ctx context.Context, u models.Usuario) (int64, error) {
	return insert(ctx, pool(r.DB), "usuario",
		`INSERT INTO usuarios (nombre, email, password_hash, rol_id, activo) VALUES (?, ?, ?, ?, ?)`,
		u.Nombre, u.Email, u.PasswordHash, intdb.NullIfZero(u.RolID), u.Activo)
}

// Update leaves the password untouched when PasswordHash is empty.
func (r UsuarioRepository) Update(ctx context.Context, u models.Usuario) error {
	if u.PasswordHash == "" {
		return execOne(ctx, pool(r.DB), "usuario",
			`UPDATE usuarios SET nombre = ?, email = ?, rol_id = ?, activo = ? WHERE id = ?`,
			u.Nombre, u.Email, intdb.NullIfZero(u.RolID), u.Activo, u.ID)
	}
	return execOne(ctx, pool(r.DB), "usuario",
		`UPDATE usuarios SET nombre = ?, email = ?, password_hash = ?, rol_id = ?, activo = ? WHERE id = ?`,
		u.Nombre, u.Email, u.PasswordHash, intdb.NullIfZero(u.RolID), u.Activo, u.ID)
}

func (r UsuarioRepository) Delete(ctx context.Context, id int64) error {
	return execOne(ctx, pool(r.DB), "usuario", `DELETE FROM usuarios WHERE id = ?`, id)
}
