package models

type Permiso struct {
	ID          int64  `json:"id"`
	Codigo      string `json:"codigo" binding:"required"`
	Descripcion string `json:"descripcion,omitempty"`
}

type Rol struct {
	ID          int64    `json:"id"`
	Nombre      string   `json:"nombre" binding:"required"`
	Descripcion string   `json:"descripcion,omitempty"`
	Permisos    []string `json:"permisos"`
}

type Usuario struct {
	ID           int64    `json:"id"`
	Nombre       string   `json:"nombre"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"`
	RolID        int64    `json:"rol_id,omitempty"`
	Rol          string   `json:"rol,omitempty"`
	Permisos     []string `json:"permisos,omitempty"`
	Activo       bool     `json:"activo"`
}
