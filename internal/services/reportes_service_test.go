package services

import (
	"context"
	"testing"
	"time"

	"transportes/internal/domain"
	"transportes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResumenDefaultsToCurrentMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2025, 6, 18, 10, 0, 0, 0, time.Local))

	mock.ExpectQuery("FROM boletos b").WithArgs(domain.EstadoBoletoCancelado, "2025-06-01", "2025-06-18").
		WillReturnRows(sqlmock.NewRows([]string{"n", "s"}).AddRow(4, 120.0))
	mock.ExpectQuery("FROM encomiendas").WithArgs("2025-06-01", "2025-06-18").
		WillReturnRows(sqlmock.NewRows([]string{"n", "s"}).AddRow(2, 17.5))
	mock.ExpectQuery("FROM ventas").WithArgs(domain.EstadoVentaAnulada, "2025-06-01", "2025-06-18").
		WillReturnRows(sqlmock.NewRows([]string{"n", "s"}).AddRow(3, 30.0))
	mock.ExpectQuery("FROM pagos").WithArgs(domain.EstadoPagoAnulado, "2025-06-01", "2025-06-18").
		WillReturnRows(sqlmock.NewRows([]string{"s"}).AddRow(90.0))
	mock.ExpectQuery("FROM mantenimientos m").WithArgs(domain.EstadoMantRealizado, domain.EstadoMantCancelado).
		WillReturnRows(sqlmock.NewRows(mantenimientoCols).
			AddRow(1, 1, "ABC-123", "aceite", "", "2025-06-19", "", 1000, "", 0, "pendiente"))

	svc := ReportesService{
		Repo:    repositories.ReportesRepository{DB: db},
		Alertas: AlertasService{Repo: repositories.MantenimientoRepository{DB: db}, Clock: clock},
		Clock:   clock,
	}
	res, err := svc.Resumen(context.Background(), "", "")
	require.NoError(t, err)

	assert.Equal(t, "2025-06-01", res.Desde)
	assert.Equal(t, "2025-06-18", res.Hasta)
	assert.Equal(t, 4, res.Boletos)
	assert.Equal(t, 167.5, res.IngresoTotal)
	assert.Equal(t, 90.0, res.Pagos)
	assert.Equal(t, 1, res.Alertas[domain.PrioridadAlta])
	assert.Equal(t, 0, res.Alertas[domain.PrioridadBaja])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResumenRejectsBadRange(t *testing.T) {
	svc := ReportesService{}

	_, err := svc.Resumen(context.Background(), "2025-07-01", "2025-06-01")
	assert.True(t, domain.IsValidation(err))

	_, err = svc.Resumen(context.Background(), "01/06/2025", "")
	assert.True(t, domain.IsValidation(err))
}
