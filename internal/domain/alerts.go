package domain

import (
	"sort"
	"strings"
	"time"

	"transportes/internal/domain/models"
	"transportes/internal/utils"
)

type Prioridad string

const (
	PrioridadAlta  Prioridad = "alta"
	PrioridadMedia Prioridad = "media"
	PrioridadBaja  Prioridad = "baja"
)

// Priority tiers, in days remaining.
const (
	umbralAlta  = 2
	umbralMedia = 7
)

// Alerta is the classified view of one pending mantenimiento.
type Alerta struct {
	MantenimientoID int64     `json:"mantenimiento_id"`
	UnidadID        int64     `json:"unidad_id"`
	Placa           string    `json:"placa,omitempty"`
	Tipo            string    `json:"tipo"`
	Fecha           string    `json:"fecha"`
	Referencia      string    `json:"referencia"` // proximo_mantenimiento | fecha_programada
	DiasRestantes   int       `json:"dias_restantes"`
	Vencido         bool      `json:"vencido"`
	Prioridad       Prioridad `json:"prioridad"`
}

// ClasificarDias buckets a day difference: 0-2 or overdue is alta, 3-7 media, beyond 7 baja.
func ClasificarDias(dias int) Prioridad {
	switch {
	case dias <= umbralAlta:
		return PrioridadAlta
	case dias <= umbralMedia:
		return PrioridadMedia
	default:
		return PrioridadBaja
	}
}

// ClasificarAlertas computes one alert per open mantenimiento relative to today.
// proximo_mantenimiento wins over fecha_programada; records without a usable date,
// or already realizado/cancelado, are skipped. Result is ordered by days remaining, then mantenimiento id.
func ClasificarAlertas(items []models.Mantenimiento, today time.Time) []Alerta {
	out := make([]Alerta, 0, len(items))
	for _, m := range items {
		estado := strings.ToLower(strings.TrimSpace(m.Estado))
		if estado == EstadoMantRealizado || estado == EstadoMantCancelado {
			continue
		}

		fecha, ref := utils.DateOnly(m.ProximoMantenimiento), "proximo_mantenimiento"
		if fecha == "" {
			fecha, ref = utils.DateOnly(m.FechaProgramada), "fecha_programada"
		}
		if fecha == "" {
			continue
		}
		t, err := utils.ParseDate(fecha)
		if err != nil {
			continue
		}

		dias := utils.DaysBetween(today, t)
		out = append(out, Alerta{
			MantenimientoID: m.ID,
			UnidadID:        m.UnidadID,
			Placa:           m.Placa,
			Tipo:            m.Tipo,
			Fecha:           fecha,
			Referencia:      ref,
			DiasRestantes:   dias,
			Vencido:         dias < 0,
			Prioridad:       ClasificarDias(dias),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].DiasRestantes != out[j].DiasRestantes {
			return out[i].DiasRestantes < out[j].DiasRestantes
		}
		return out[i].MantenimientoID < out[j].MantenimientoID
	})
	return out
}

// ContarPorPrioridad returns counts for every tier, zero included.
func ContarPorPrioridad(alertas []Alerta) map[Prioridad]int {
	out := map[Prioridad]int{PrioridadAlta: 0, PrioridadMedia: 0, PrioridadBaja: 0}
	for _, a := range alertas {
		out[a.Prioridad]++
	}
	return out
}
