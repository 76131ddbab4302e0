package services

import (
	"errors"
	"testing"

	"transportes/internal/domain"
	"transportes/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStructFieldPaths(t *testing.T) {
	cases := []struct {
		name  string
		in    any
		field string
		msg   string
	}{
		{"nested item", models.Venta{ClienteID: 1, Items: []models.VentaDetalle{
			{ProductoID: 1, Cantidad: 1}, {ProductoID: 0, Cantidad: 1}}}, "items[1].producto_id", "es obligatorio"},
		{"item cantidad", models.Venta{ClienteID: 1, Items: []models.VentaDetalle{
			{ProductoID: 1, Cantidad: 0}}}, "items[0].cantidad", "debe ser mayor a cero"},
		{"empty items", models.Venta{ClienteID: 1, Items: []models.VentaDetalle{}}, "items", "requiere al menos 1 elemento(s)"},
		{"oneof", models.Pago{ClienteID: 1, Monto: 5, Metodo: "cheque"}, "metodo", "valor no permitido: cheque"},
		{"datetime", models.Pago{ClienteID: 1, Monto: 5, Fecha: "2025/01/01"}, "fecha", "formato esperado YYYY-MM-DD"},
		{"hora", models.Viaje{RutaID: 1, UnidadID: 1, Fecha: "2025-01-01", HoraSalida: "8h"}, "hora_salida", "formato esperado HH:MM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var verr domain.ValidationError
			require.ErrorAs(t, validateStruct(tc.in), &verr)
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.msg, verr.Msg)
		})
	}
}

func TestBindingErrorIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, BindingError(errors.New("unexpected EOF")))
	assert.Nil(t, BindingError(nil))
}
