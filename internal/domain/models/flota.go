package models

type Ruta struct {
	ID          int64   `json:"id"`
	Origen      string  `json:"origen" binding:"required"`
	Destino     string  `json:"destino" binding:"required"`
	HoraSalida  string  `json:"hora_salida" binding:"required,hora"`
	DuracionMin int     `json:"duracion_min" binding:"gte=0"`
	DistanciaKm float64 `json:"distancia_km" binding:"gte=0"`
	Precio      float64 `json:"precio" binding:"gte=0"`
	Activa      bool    `json:"activa"`
}

type Unidad struct {
	ID            int64  `json:"id"`
	Placa         string `json:"placa" binding:"required"`
	NumeroInterno string `json:"numero_interno" binding:"required"`
	Marca         string `json:"marca,omitempty"`
	Modelo        string `json:"modelo,omitempty"`
	Anio          int    `json:"anio,omitempty" binding:"gte=0"`
	Capacidad     int    `json:"capacidad" binding:"gt=0"`
	Kilometraje   int    `json:"kilometraje" binding:"gte=0"`
	Estado        string `json:"estado" binding:"omitempty,oneof=activa mantenimiento inactiva"`
	RutaID        int64  `json:"ruta_id,omitempty" binding:"gte=0"`
}

type Mantenimiento struct {
	ID                   int64   `json:"id"`
	UnidadID             int64   `json:"unidad_id" binding:"required,gt=0"`
	Placa                string  `json:"placa,omitempty"`
	Tipo                 string  `json:"tipo" binding:"required"`
	Descripcion          string  `json:"descripcion,omitempty"`
	FechaProgramada      string  `json:"fecha_programada,omitempty" binding:"omitempty,datetime=2006-01-02"`
	FechaRealizada       string  `json:"fecha_realizada,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Kilometraje          int     `json:"kilometraje" binding:"gte=0"`
	ProximoMantenimiento string  `json:"proximo_mantenimiento,omitempty" binding:"omitempty,datetime=2006-01-02"`
	Costo                float64 `json:"costo" binding:"gte=0"`
	Estado               string  `json:"estado" binding:"omitempty,oneof=pendiente realizado cancelado"`
}

// Viaje is a scheduled departure of a unidad on a ruta.
type Viaje struct {
	ID         int64  `json:"id"`
	RutaID     int64  `json:"ruta_id" binding:"required,gt=0"`
	UnidadID   int64  `json:"unidad_id" binding:"required,gt=0"`
	Fecha      string `json:"fecha" binding:"required,datetime=2006-01-02"`
	HoraSalida string `json:"hora_salida" binding:"omitempty,hora"`
	Conductor  string `json:"conductor,omitempty"`
	Estado     string `json:"estado" binding:"omitempty,oneof=programado en_curso finalizado cancelado"`

	// filled on reads
	Origen    string  `json:"origen,omitempty"`
	Destino   string  `json:"destino,omitempty"`
	Placa     string  `json:"placa,omitempty"`
	Capacidad int     `json:"capacidad,omitempty"`
	Precio    float64 `json:"precio,omitempty"`
}
