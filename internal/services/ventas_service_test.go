package services

import (
	"context"
	"testing"

	"transportes/internal/domain"
	"transportes/internal/domain/models"

	"github.com/stretchr/testify/assert"
)

// Validation failures return before the repository is touched, so no DB is needed.
func TestVentaRegistrarValidation(t *testing.T) {
	svc := VentaService{}
	ctx := context.Background()
	item := models.VentaDetalle{ProductoID: 1, Cantidad: 1}

	cases := []struct {
		name  string
		venta models.Venta
		field string
	}{
		{"sin cliente", models.Venta{Items: []models.VentaDetalle{item}}, "cliente_id"},
		{"sin items", models.Venta{ClienteID: 1}, "items"},
		{"cantidad cero", models.Venta{ClienteID: 1, Items: []models.VentaDetalle{{ProductoID: 1}}}, "items[0].cantidad"},
		{"sin producto", models.Venta{ClienteID: 1, Items: []models.VentaDetalle{item, {Cantidad: 2}}}, "items[1].producto_id"},
		{"descuento negativo", models.Venta{ClienteID: 1, Descuento: -1, Items: []models.VentaDetalle{item}}, "descuento"},
		{"fecha invalida", models.Venta{ClienteID: 1, Fecha: "10/03/2025", Items: []models.VentaDetalle{item}}, "fecha"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Registrar(ctx, tc.venta)
			assert.True(t, domain.IsValidation(err), "got %v", err)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestPagoNormalize(t *testing.T) {
	svc := PagoService{}

	g, err := svc.normalize(models.Pago{ClienteID: 1, Monto: 10, Fecha: "2025-03-01"})
	assert.NoError(t, err)
	assert.Equal(t, "otro", g.Concepto)
	assert.Equal(t, "efectivo", g.Metodo)

	_, err = svc.normalize(models.Pago{ClienteID: 1, Monto: 10, Metodo: "cheque"})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.normalize(models.Pago{ClienteID: 1, Monto: -5})
	assert.True(t, domain.IsValidation(err))
}
