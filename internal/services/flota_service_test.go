package services

import (
	"context"
	"testing"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRuta(t *testing.T) {
	base := models.Ruta{Origen: " La  Paz ", Destino: "Oruro", HoraSalida: "08:30:00", Precio: 35}
	cases := []struct {
		name  string
		edit  func(*models.Ruta)
		field string
	}{
		{"ok", func(*models.Ruta) {}, ""},
		{"same endpoints", func(r *models.Ruta) { r.Destino = "la paz" }, "destino"},
		{"negative precio", func(r *models.Ruta) { r.Precio = -1 }, "precio"},
		{"missing origen", func(r *models.Ruta) { r.Origen = "  " }, "origen"},
		{"bad hora", func(r *models.Ruta) { r.HoraSalida = "25:00" }, "hora_salida"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.edit(&in)
			got, err := normalizeRuta(in)
			if tc.field == "" {
				require.NoError(t, err)
				assert.Equal(t, "La Paz", got.Origen)
				assert.Equal(t, "08:30", got.HoraSalida)
				return
			}
			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestNormalizeUnidad(t *testing.T) {
	base := models.Unidad{Placa: " abc-123 ", NumeroInterno: "u-1", Capacidad: 40}
	cases := []struct {
		name  string
		edit  func(*models.Unidad)
		field string
	}{
		{"ok", func(*models.Unidad) {}, ""},
		{"zero capacidad", func(u *models.Unidad) { u.Capacidad = 0 }, "capacidad"},
		{"negative capacidad", func(u *models.Unidad) { u.Capacidad = -3 }, "capacidad"},
		{"negative kilometraje", func(u *models.Unidad) { u.Kilometraje = -1 }, "kilometraje"},
		{"unknown estado", func(u *models.Unidad) { u.Estado = "vendida" }, "estado"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := base
			tc.edit(&in)
			got, err := normalizeUnidad(in)
			if tc.field == "" {
				require.NoError(t, err)
				assert.Equal(t, "ABC-123", got.Placa)
				assert.Equal(t, domain.EstadoUnidadActiva, got.Estado)
				return
			}
			var verr domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestViajePrepareRejectsInactiveUnidad(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rutaCols := []string{"id", "origen", "destino", "hora_salida", "duracion_min", "distancia_km", "precio", "activa"}
	unidadCols := []string{"id", "placa", "numero_interno", "marca", "modelo", "anio", "capacidad", "kilometraje", "estado", "ruta_id"}
	expect := func(estado string) {
		mock.ExpectQuery("FROM rutas").WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(rutaCols).AddRow(1, "La Paz", "Oruro", "07:00", 240, 230.0, 35.0, true))
		mock.ExpectQuery("FROM unidades").WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows(unidadCols).AddRow(2, "ABC-123", "U1", "", "", 0, 40, 1000, estado, 0))
	}
	svc := ViajeService{
		RutaRepo:   repositories.RutaRepository{DB: db},
		UnidadRepo: repositories.UnidadRepository{DB: db},
	}

	expect(domain.EstadoUnidadMantenimiento)
	_, err = svc.prepare(context.Background(), models.Viaje{RutaID: 1, UnidadID: 2, Fecha: "2025-04-01"})
	assert.True(t, domain.IsConflict(err))

	expect(domain.EstadoUnidadMantenimiento)
	v, err := svc.prepare(context.Background(), models.Viaje{RutaID: 1, UnidadID: 2, Fecha: "2025-04-01", Estado: "cancelado"})
	require.NoError(t, err)
	assert.Equal(t, "07:00", v.HoraSalida)

	_, err = svc.prepare(context.Background(), models.Viaje{RutaID: 1, Fecha: "2025-04-01"})
	assert.True(t, domain.IsValidation(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}
