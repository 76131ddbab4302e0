package domain

import (
	"testing"
	"time"

	"transportes/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClasificarDias(t *testing.T) {
	cases := map[int]Prioridad{
		-10: PrioridadAlta,
		0:   PrioridadAlta,
		2:   PrioridadAlta,
		3:   PrioridadMedia,
		7:   PrioridadMedia,
		8:   PrioridadBaja,
		90:  PrioridadBaja,
	}
	for dias, want := range cases {
		assert.Equal(t, want, ClasificarDias(dias), "dias=%d", dias)
	}
}

func TestClasificarAlertas(t *testing.T) {
	today := time.Date(2025, 3, 10, 15, 30, 0, 0, time.Local)
	items := []models.Mantenimiento{
		{ID: 1, UnidadID: 1, Tipo: "aceite", ProximoMantenimiento: "2025-03-25", Estado: "pendiente"},
		{ID: 2, UnidadID: 2, Tipo: "frenos", FechaProgramada: "2025-03-12", Estado: "pendiente"},
		{ID: 3, UnidadID: 3, Tipo: "llantas", FechaProgramada: "2025-03-05", Estado: "pendiente"},
		{ID: 4, UnidadID: 4, Tipo: "motor", FechaProgramada: "2025-03-15", Estado: "pendiente"},
		{ID: 5, UnidadID: 5, Tipo: "general", FechaProgramada: "2025-03-11", Estado: "realizado"},
		{ID: 6, UnidadID: 6, Tipo: "general", Estado: "pendiente"},
		{ID: 7, UnidadID: 7, Tipo: "general", FechaProgramada: "2025-03-11", Estado: "Cancelado"},
		// proximo wins over fecha_programada
		{ID: 8, UnidadID: 8, Tipo: "aceite", FechaProgramada: "2025-03-10", ProximoMantenimiento: "2025-06-08T00:00:00Z", Estado: "pendiente"},
	}

	got := ClasificarAlertas(items, today)
	require.Len(t, got, 5)

	ids := make([]int64, len(got))
	for i, a := range got {
		ids[i] = a.MantenimientoID
	}
	assert.Equal(t, []int64{3, 2, 4, 1, 8}, ids)

	assert.Equal(t, -5, got[0].DiasRestantes)
	assert.True(t, got[0].Vencido)
	assert.Equal(t, PrioridadAlta, got[0].Prioridad)

	assert.Equal(t, 2, got[1].DiasRestantes)
	assert.Equal(t, PrioridadAlta, got[1].Prioridad)

	assert.Equal(t, 5, got[2].DiasRestantes)
	assert.Equal(t, PrioridadMedia, got[2].Prioridad)

	assert.Equal(t, 15, got[3].DiasRestantes)
	assert.Equal(t, PrioridadBaja, got[3].Prioridad)
	assert.Equal(t, "proximo_mantenimiento", got[3].Referencia)

	assert.Equal(t, "2025-06-08", got[4].Fecha)
	assert.Equal(t, "proximo_mantenimiento", got[4].Referencia)

	counts := ContarPorPrioridad(got)
	assert.Equal(t, map[Prioridad]int{PrioridadAlta: 2, PrioridadMedia: 1, PrioridadBaja: 2}, counts)
}

func TestContarPorPrioridadEmpty(t *testing.T) {
	counts := ContarPorPrioridad(nil)
	assert.Equal(t, 0, counts[PrioridadAlta])
	assert.Len(t, counts, 3)
}

func TestProximoMantenimiento(t *testing.T) {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, 90, DiasHastaProximo(0))
	assert.Equal(t, 90, DiasHastaProximo(49_999))
	assert.Equal(t, 60, DiasHastaProximo(50_000))
	assert.Equal(t, 60, DiasHastaProximo(149_999))
	assert.Equal(t, 30, DiasHastaProximo(150_000))
	assert.Equal(t, 30, DiasHastaProximo(900_000))

	assert.Equal(t, "2025-04-01", ProximoMantenimiento(base, 10_000).Format("2006-01-02"))
	assert.Equal(t, "2025-03-02", ProximoMantenimiento(base, 80_000).Format("2006-01-02"))
	assert.Equal(t, "2025-01-31", ProximoMantenimiento(base, 200_000).Format("2006-01-02"))
}

func TestClasificarAlertasBreaksTiesByID(t *testing.T) {
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	items := []models.Mantenimiento{
		{ID: 9, UnidadID: 1, Estado: "pendiente", FechaProgramada: "2025-03-12"},
		{ID: 2, UnidadID: 2, Estado: "pendiente", FechaProgramada: "2025-03-12"},
		{ID: 5, UnidadID: 3, Estado: "pendiente", FechaProgramada: "2025-03-11"},
	}
	got := ClasificarAlertas(items, today)
	require.Len(t, got, 3)
	ids := []int64{got[0].MantenimientoID, got[1].MantenimientoID, got[2].MantenimientoID}
	assert.Equal(t, []int64{5, 2, 9}, ids)
}
