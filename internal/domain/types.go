package domain

import "strings"

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
)

// ListParams carries the q/page/limit query used by every listing.
// Page 0 means "no paging".
type ListParams struct {
	Q     string
	Page  int
	Limit int
}

// Normalize clamps paging: page defaults to 1, limit to DefaultPageSize, capped at MaxPageSize.
func (p ListParams) Normalize() ListParams {
	p.Q = strings.TrimSpace(p.Q)
	if p.Page <= 0 && p.Limit <= 0 {
		p.Page, p.Limit = 0, 0
		return p
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	return p
}

func (p ListParams) Paged() bool { return p.Page > 0 && p.Limit > 0 }

func (p ListParams) Offset() int {
	if !p.Paged() {
		return 0
	}
	return (p.Page - 1) * p.Limit
}

// RequestContext is the authenticated session as seen by handlers.
type RequestContext struct {
	UserID   int64    `json:"user_id"`
	Rol      string   `json:"rol"`
	Permisos []string `json:"permisos"`
}

// Estados used across modules.
const (
	EstadoUnidadActiva        = "activa"
	EstadoUnidadMantenimiento = "mantenimiento"
	EstadoUnidadInactiva      = "inactiva"

	EstadoMantPendiente = "pendiente"
	EstadoMantRealizado = "realizado"
	EstadoMantCancelado = "cancelado"

	EstadoViajeProgramado = "programado"
	EstadoViajeEnCurso    = "en_curso"
	EstadoViajeFinalizado = "finalizado"
	EstadoViajeCancelado  = "cancelado"

	EstadoBoletoReservado = "reservado"
	EstadoBoletoPagado    = "pagado"
	EstadoBoletoCancelado = "cancelado"

	EstadoEncomiendaRecibida   = "recibida"
	EstadoEncomiendaEnTransito = "en_transito"
	EstadoEncomiendaEntregada  = "entregada"

	EstadoVentaRegistrada = "registrada"
	EstadoVentaAnulada    = "anulada"

	EstadoPagoRegistrado = "registrado"
	EstadoPagoAnulado    = "anulado"
)

// OneOf reports whether v (case-insensitive) is among allowed.
func OneOf(v string, allowed ...string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
