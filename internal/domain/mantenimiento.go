package domain

import "time"

// Odometer thresholds for the next service interval.
var intervalosMantenimiento = []struct {
	hastaKm int // exclusive upper bound; 0 means open-ended
	dias    int
}{
	{hastaKm: 50_000, dias: 90},
	{hastaKm: 150_000, dias: 60},
	{hastaKm: 0, dias: 30},
}

// DiasHastaProximo returns how many days to add for a unit at the given odometer reading.
func DiasHastaProximo(km int) int {
	for _, iv := range intervalosMantenimiento {
		if iv.hastaKm == 0 || km < iv.hastaKm {
			return iv.dias
		}
	}
	return 30
}

// ProximoMantenimiento adds the odometer-based interval to base.
func ProximoMantenimiento(base time.Time, km int) time.Time {
	return base.AddDate(0, 0, DiasHastaProximo(km))
}
