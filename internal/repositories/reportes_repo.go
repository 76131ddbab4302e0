package repositories

import (
	"context"
	"database/sql"

	"transportes/internal/domain"
)

// Resumen aggregates activity for a date range (inclusive, YYYY-MM-DD).
type Resumen struct {
	Desde             string  `json:"desde"`
	Hasta             string  `json:"hasta"`
	Boletos           int     `json:"boletos"`
	IngresoBoletos    float64 `json:"ingreso_boletos"`
	Encomiendas       int     `json:"encomiendas"`
	IngresoEncomienda float64 `json:"ingreso_encomiendas"`
	Ventas            int     `json:"ventas"`
	IngresoVentas     float64 `json:"ingreso_ventas"`
	Pagos             float64 `json:"pagos"`
	IngresoTotal      float64 `json:"ingreso_total"`
}

type ReportesRepository struct {
	DB *sql.DB
}

func (r ReportesRepository) Resumen(ctx context.Context, desde, hasta string) (Resumen, error) {
	db := pool(r.DB)
	out := Resumen{Desde: desde, Hasta: hasta}

	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(b.precio),0)
		FROM boletos b JOIN viajes v ON v.id = b.viaje_id
		WHERE b.estado <> ? AND v.fecha BETWEEN ? AND ?`,
		domain.EstadoBoletoCancelado, desde, hasta).Scan(&out.Boletos, &out.IngresoBoletos); err != nil {
		return out, translate("reporte", err)
	}

	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(costo),0)
		FROM encomiendas
		WHERE DATE(created_at) BETWEEN ? AND ?`,
		desde, hasta).Scan(&out.Encomiendas, &out.IngresoEncomienda); err != nil {
		return out, translate("reporte", err)
	}

	if err := db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(total),0)
		FROM ventas
		WHERE estado <> ? AND fecha BETWEEN ? AND ?`,
		domain.EstadoVentaAnulada, desde, hasta).Scan(&out.Ventas, &out.IngresoVentas); err != nil {
		return out, translate("reporte", err)
	}

	if err := db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(monto),0) FROM pagos WHERE estado <> ? AND fecha BETWEEN ? AND ?`,
		domain.EstadoPagoAnulado, desde, hasta).Scan(&out.Pagos); err != nil {
		return out, translate("reporte", err)
	}

	out.IngresoTotal = out.IngresoBoletos + out.IngresoEncomienda + out.IngresoVentas
	return out, nil
}
