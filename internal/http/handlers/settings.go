package handlers

import (
	"sync"

	intconfig "transportes/internal/config"
	"transportes/internal/services"

	"github.com/jonboulle/clockwork"
)

type settings struct {
	tarifaKg  float64
	jwtSecret []byte
	clock     clockwork.Clock
	scheduler *services.AlertasScheduler
}

var (
	settingsMu sync.RWMutex
	current    = settings{tarifaKg: 5, clock: clockwork.NewRealClock()}
)

// Configure installs the runtime settings shared by every handler.
func Configure(env intconfig.Env, clock clockwork.Clock, scheduler *services.AlertasScheduler) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	settingsMu.Lock()
	defer settingsMu.Unlock()
	current = settings{
		tarifaKg:  env.TarifaKg,
		jwtSecret: []byte(env.JWTSecret),
		clock:     clock,
		scheduler: scheduler,
	}
}

func cfg() settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return current
}
