package services

import (
	"testing"

	"transportes/internal/domain"
	"transportes/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizePersona(t *testing.T) {
	base := models.Persona{Nombre: " ana ", Apellido: "Rojas", Documento: " ci-123 ", Email: " Ana@Example.COM "}
	cases := []struct {
		name  string
		edit  func(*models.Persona)
		field string
	}{
		{"ok", func(*models.Persona) {}, ""},
		{"missing documento", func(p *models.Persona) { p.Documento = " " }, "documento"},
		{"missing apellido", func(p *models.Persona) { p.Apellido = "" }, "apellido"},
		{"bad email", func(p *models.Persona) { p.Email = "ana-at-example" }, "email"},
		{"bad fecha", func(p *models.Persona) { p.FechaNacimiento = "01/02/1990" }, "fecha_nacimiento"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.edit(&in)
			got, err := normalizePersona(in)
			if tc.field == "" {
				require.NoError(t, err)
				assert.Equal(t, "CI-123", got.Documento)
				assert.Equal(t, "ana@example.com", got.Email)
				return
			}
			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}
