package models

type Boleto struct {
	ID        int64   `json:"id"`
	Codigo    string  `json:"codigo"`
	ViajeID   int64   `json:"viaje_id"`
	ClienteID int64   `json:"cliente_id"`
	Asiento   int     `json:"asiento"`
	Precio    float64 `json:"precio"`
	Estado    string  `json:"estado"`

	// filled on reads
	Pasajero   string `json:"pasajero,omitempty"`
	Documento  string `json:"documento,omitempty"`
	Origen     string `json:"origen,omitempty"`
	Destino    string `json:"destino,omitempty"`
	Fecha      string `json:"fecha,omitempty"`
	HoraSalida string `json:"hora_salida,omitempty"`
	Placa      string `json:"placa,omitempty"`
}

// Asiento is one seat of a viaje as shown in the reservation form.
type Asiento struct {
	Numero   int   `json:"numero"`
	Ocupado  bool  `json:"ocupado"`
	BoletoID int64 `json:"boleto_id,omitempty"`
}

type Encomienda struct {
	ID                   int64   `json:"id"`
	Codigo               string  `json:"codigo"`
	ViajeID              int64   `json:"viaje_id,omitempty" binding:"gte=0"`
	RemitenteID          int64   `json:"remitente_id" binding:"required,gt=0"`
	DestinatarioNombre   string  `json:"destinatario_nombre" binding:"required"`
	DestinatarioTelefono string  `json:"destinatario_telefono,omitempty"`
	Descripcion          string  `json:"descripcion,omitempty"`
	PesoKg               float64 `json:"peso_kg" binding:"gt=0"`
	Costo                float64 `json:"costo"`
	Estado               string  `json:"estado" binding:"omitempty,oneof=recibida en_transito entregada"`
	Remitente            string  `json:"remitente,omitempty"`
	Fecha                string  `json:"fecha,omitempty"`
}
