package services

import (
	"context"
	"strings"
	"testing"

	"transportes/internal/domain"
	"transportes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapaAsientos(t *testing.T) {
	seats := MapaAsientos(4, map[int]int64{2: 11, 4: 12})
	require.Len(t, seats, 4)
	assert.False(t, seats[0].Ocupado)
	assert.True(t, seats[1].Ocupado)
	assert.Equal(t, int64(11), seats[1].BoletoID)
	assert.Equal(t, 4, seats[3].Numero)
	assert.True(t, seats[3].Ocupado)

	assert.Empty(t, MapaAsientos(0, nil))
}

func TestNuevoCodigo(t *testing.T) {
	a, b := nuevoCodigo("BOL"), nuevoCodigo("BOL")
	assert.True(t, strings.HasPrefix(a, "BOL-"))
	assert.Len(t, a, len("BOL-")+10)
	assert.NotEqual(t, a, b)
	assert.Equal(t, strings.ToUpper(a), a)
}

func TestReservarValidation(t *testing.T) {
	svc := ReservaService{}
	neg := -1.0

	_, err := svc.Reservar(context.Background(), ReservaInput{ClienteID: 1, Asiento: 1})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Reservar(context.Background(), ReservaInput{ViajeID: 1, ClienteID: 1, Asiento: 0})
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Reservar(context.Background(), ReservaInput{ViajeID: 1, ClienteID: 1, Asiento: 1, Precio: &neg})
	assert.True(t, domain.IsValidation(err))
}

var boletoCols = []string{"id", "codigo", "viaje_id", "cliente_id", "asiento", "precio", "estado",
	"pasajero", "documento", "origen", "destino", "fecha", "hora", "placa"}

func TestCambiarEstadoCancelledIsFinal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM boletos b").WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(boletoCols).
			AddRow(5, "BOL-1", 1, 1, 3, 20.0, "cancelado", "Ana Rojas", "123", "Lima", "Cusco", "2025-01-01", "08:00", "ABC-123"))

	svc := ReservaService{BoletoRepo: repositories.BoletoRepository{DB: db}}
	err = svc.CambiarEstado(context.Background(), 5, "pagado")
	assert.True(t, domain.IsConflict(err))

	err = svc.CambiarEstado(context.Background(), 5, "perdido")
	assert.True(t, domain.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCambiarEstadoPaidDoesNotReturnToReservado(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	paid := func() {
		mock.ExpectQuery("FROM boletos b").WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(boletoCols).
				AddRow(5, "BOL-1", 1, 1, 3, 20.0, "pagado", "Ana Rojas", "123", "Lima", "Cusco", "2025-01-01", "08:00", "ABC-123"))
	}
	svc := ReservaService{BoletoRepo: repositories.BoletoRepository{DB: db}}

	paid()
	err = svc.CambiarEstado(context.Background(), 5, "reservado")
	assert.True(t, domain.IsConflict(err))

	paid()
	mock.ExpectExec("UPDATE boletos SET estado").WithArgs("cancelado", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, svc.CambiarEstado(context.Background(), 5, "Cancelado"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
