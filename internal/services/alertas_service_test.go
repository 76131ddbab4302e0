package services

import (
	"context"
	"testing"
	"time"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mantenimientoCols = []string{"id", "unidad_id", "placa", "tipo", "descripcion", "fecha_programada",
	"fecha_realizada", "kilometraje", "proximo_mantenimiento", "costo", "estado"}

func TestAlertasClasificarFilter(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2025, 5, 1, 9, 0, 0, 0, time.Local))
	svc := AlertasService{Clock: clock}
	items := []models.Mantenimiento{
		{ID: 1, FechaProgramada: "2025-05-02", Estado: "pendiente"},
		{ID: 2, FechaProgramada: "2025-05-06", Estado: "pendiente"},
		{ID: 3, FechaProgramada: "2025-06-01", Estado: "pendiente"},
	}

	all, err := svc.clasificar(items, "")
	require.NoError(t, err)
	assert.Equal(t, "2025-05-01", all.Fecha)
	assert.Len(t, all.Alertas, 3)

	media, err := svc.clasificar(items, " MEDIA ")
	require.NoError(t, err)
	require.Len(t, media.Alertas, 1)
	assert.Equal(t, int64(2), media.Alertas[0].MantenimientoID)
	// counts always cover every tier
	assert.Equal(t, 1, media.Conteo[domain.PrioridadAlta])
	assert.Equal(t, 1, media.Conteo[domain.PrioridadBaja])

	_, err = svc.clasificar(items, "urgente")
	assert.True(t, domain.IsValidation(err))

	// advancing the clock moves the record into the high tier
	clock.Advance(4 * 24 * time.Hour)
	later, err := svc.clasificar(items, "alta")
	require.NoError(t, err)
	assert.Len(t, later.Alertas, 2)
}

func TestAlertasSchedulerSweep(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM mantenimientos m").WithArgs(domain.EstadoMantRealizado, domain.EstadoMantCancelado).
		WillReturnRows(sqlmock.NewRows(mantenimientoCols).
			AddRow(1, 1, "ABC-123", "aceite", "", "2025-05-01", "", 1000, "", 0, "pendiente").
			AddRow(2, 2, "XYZ-987", "frenos", "", "", "", 2000, "2025-07-01", 0, "pendiente"))

	s := &AlertasScheduler{Service: AlertasService{
		Repo:  repositories.MantenimientoRepository{DB: db},
		Clock: clockwork.NewFakeClockAt(time.Date(2025, 5, 1, 12, 0, 0, 0, time.Local)),
	}}
	s.Sweep(context.Background())

	last := s.Last()
	assert.Equal(t, 1, last.Conteo[domain.PrioridadAlta])
	assert.Equal(t, 1, last.Conteo[domain.PrioridadBaja])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlertasSchedulerStart(t *testing.T) {
	s := &AlertasScheduler{}
	assert.Error(t, s.Start("not a cron spec"))

	require.NoError(t, s.Start("@every 1h"))
	assert.Error(t, s.Start("@every 1h"))
	s.Stop()
	s.Stop()
}
