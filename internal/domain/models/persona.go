package models

// Persona is the base identity record shared by clientes.
type Persona struct {
	ID              int64  `json:"id"`
	Nombre          string `json:"nombre" binding:"required"`
	Apellido        string `json:"apellido" binding:"required"`
	Documento       string `json:"documento" binding:"required"`
	Telefono        string `json:"telefono,omitempty"`
	Email           string `json:"email,omitempty" binding:"omitempty,email"`
	Direccion       string `json:"direccion,omitempty"`
	FechaNacimiento string `json:"fecha_nacimiento,omitempty" binding:"omitempty,datetime=2006-01-02"`
}

// Cliente is a customer linked to a persona. Persona is filled on reads.
type Cliente struct {
	ID        int64   `json:"id"`
	PersonaID int64   `json:"persona_id" binding:"gte=0"`
	Tipo      string  `json:"tipo" binding:"omitempty,oneof=regular frecuente corporativo"`
	NIT       string  `json:"nit,omitempty"`
	Activo    bool    `json:"activo"`
	Persona   Persona `json:"persona" binding:"-"`
}
