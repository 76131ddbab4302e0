package domain

import (
	"fmt"

	"transportes/internal/domain/models"
	"transportes/internal/utils"
)

// CostoEncomienda is peso × tarifa, rounded to cents.
func CostoEncomienda(pesoKg, tarifaKg float64) (float64, error) {
	if pesoKg <= 0 {
		return 0, Invalid("peso_kg", "debe ser mayor a cero")
	}
	if tarifaKg < 0 {
		return 0, InternalError{Msg: "tarifa por kg negativa"}
	}
	return utils.Round2(pesoKg * tarifaKg), nil
}

// TotalesVenta fills importe per line and returns subtotal and total.
// total = subtotal - descuento; a descuento above the subtotal is rejected.
func TotalesVenta(items []models.VentaDetalle, descuento float64) ([]models.VentaDetalle, float64, float64, error) {
	if len(items) == 0 {
		return nil, 0, 0, Invalid("items", "la venta debe tener al menos un producto")
	}
	if descuento < 0 {
		return nil, 0, 0, Invalid("descuento", "no puede ser negativo")
	}

	out := make([]models.VentaDetalle, len(items))
	subtotal := 0.0
	for i, it := range items {
		if it.Cantidad <= 0 {
			return nil, 0, 0, Invalid(fmt.Sprintf("items[%d].cantidad", i), "debe ser mayor a cero")
		}
		if it.PrecioUnitario < 0 {
			return nil, 0, 0, Invalid(fmt.Sprintf("items[%d].precio_unitario", i), "no puede ser negativo")
		}
		it.Importe = utils.Round2(float64(it.Cantidad) * it.PrecioUnitario)
		subtotal += it.Importe
		out[i] = it
	}
	subtotal = utils.Round2(subtotal)
	if descuento > subtotal {
		return nil, 0, 0, Invalid("descuento", "no puede superar el subtotal")
	}
	return out, subtotal, utils.Round2(subtotal - descuento), nil
}
