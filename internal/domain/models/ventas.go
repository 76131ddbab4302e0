package models

type Producto struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre" binding:"required"`
	Descripcion string  `json:"descripcion,omitempty"`
	Precio      float64 `json:"precio" binding:"gte=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Activo      bool    `json:"activo"`
}

type VentaDetalle struct {
	ID             int64   `json:"id,omitempty"`
	ProductoID     int64   `json:"producto_id" binding:"required,gt=0"`
	Producto       string  `json:"producto,omitempty"`
	Cantidad       int     `json:"cantidad" binding:"gt=0"`
	PrecioUnitario float64 `json:"precio_unitario" binding:"gte=0"`
	Importe        float64 `json:"importe"`
}

type Venta struct {
	ID        int64          `json:"id"`
	ClienteID int64          `json:"cliente_id" binding:"required,gt=0"`
	Cliente   string         `json:"cliente,omitempty"`
	Fecha     string         `json:"fecha" binding:"omitempty,datetime=2006-01-02"`
	Items     []VentaDetalle `json:"items" binding:"required,min=1,dive"`
	Subtotal  float64        `json:"subtotal"`
	Descuento float64        `json:"descuento" binding:"gte=0"`
	Total     float64        `json:"total"`
	Estado    string         `json:"estado"`
}

type Pago struct {
	ID           int64   `json:"id"`
	ClienteID    int64   `json:"cliente_id" binding:"required,gt=0"`
	Cliente      string  `json:"cliente,omitempty"`
	Concepto     string  `json:"concepto" binding:"omitempty,oneof=boleto encomienda venta otro"`
	ReferenciaID int64   `json:"referencia_id,omitempty" binding:"gte=0"`
	Monto        float64 `json:"monto" binding:"gt=0"`
	Metodo       string  `json:"metodo" binding:"omitempty,oneof=efectivo tarjeta transferencia"`
	Fecha        string  `json:"fecha" binding:"omitempty,datetime=2006-01-02"`
	Estado       string  `json:"estado" binding:"omitempty,oneof=registrado anulado"`
}
