package services

import (
	"context"
	"testing"

	"transportes/internal/domain"
	"transportes/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClienteInputToCliente(t *testing.T) {
	inactivo := false
	c, err := ClienteInput{PersonaID: 4, NIT: " 1234-a ", Activo: &inactivo}.toCliente()
	require.NoError(t, err)
	assert.Equal(t, "regular", c.Tipo)
	assert.Equal(t, "1234-A", c.NIT)
	assert.False(t, c.Activo)

	c, err = ClienteInput{PersonaID: 4, Tipo: " Frecuente "}.toCliente()
	require.NoError(t, err)
	assert.Equal(t, "frecuente", c.Tipo)
	assert.True(t, c.Activo)

	_, err = ClienteInput{PersonaID: 4, Tipo: "vip"}.toCliente()
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "tipo", verr.Field)

	_, err = ClienteInput{PersonaID: -1}.toCliente()
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "persona_id", verr.Field)
}

func TestClienteCreateNeedsPersona(t *testing.T) {
	svc := ClienteService{}

	_, err := svc.Create(context.Background(), ClienteInput{})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "persona_id", verr.Field)
	assert.Equal(t, "es obligatorio", verr.Msg)

	_, err = svc.Create(context.Background(), ClienteInput{Persona: &models.Persona{Nombre: "Ana"}})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "apellido", verr.Field)
}
