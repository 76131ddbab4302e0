package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	for _, k := range []string{"APP_ADDR", "DB_HOST", "DB_NAME", "DB_MIGRATE", "ENCOMIENDA_TARIFA_KG", "CORS_ALLOWED_ORIGINS", "AUTH_DISABLED"} {
		t.Setenv(k, "")
	}
	env := LoadEnv()

	assert.Equal(t, ":8080", env.AppAddr)
	assert.Equal(t, "127.0.0.1:3306", env.DBHost)
	assert.True(t, env.DBMigrate)
	assert.False(t, env.AuthDisabled)
	assert.Equal(t, 5.0, env.TarifaKg)
	assert.Equal(t, defaultOrigins, env.CORSOrigins)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("DB_MIGRATE", "false")
	t.Setenv("ENCOMIENDA_TARIFA_KG", "7.5")
	t.Setenv("LOGIN_RATE_PER_MIN", "3")
	t.Setenv("CORS_ALLOWED_ORIGINS", " https://a.example , ,https://b.example")
	env := LoadEnv()

	assert.Equal(t, ":9090", env.AppAddr)
	assert.False(t, env.DBMigrate)
	assert.Equal(t, 7.5, env.TarifaKg)
	assert.Equal(t, 3, env.LoginRatePerMin)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, env.CORSOrigins)
}

func TestLoadEnvRejectsBadValues(t *testing.T) {
	t.Setenv("ENCOMIENDA_TARIFA_KG", "-2")
	t.Setenv("DB_MIGRATE", "quizas")
	t.Setenv("LOGIN_RATE_PER_MIN", "muchos")
	env := LoadEnv()

	assert.Equal(t, 5.0, env.TarifaKg)
	assert.True(t, env.DBMigrate)
	assert.Equal(t, 10, env.LoginRatePerMin)
}

func TestDSN(t *testing.T) {
	dsn := Env{DBUser: "app", DBPassword: "pw", DBHost: "db:3306", DBName: "transportes"}.DSN()
	assert.True(t, strings.HasPrefix(dsn, "app:pw@tcp(db:3306)/transportes?"))
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
}

func TestEnsureDBWithoutPool(t *testing.T) {
	CloseDB()
	assert.Error(t, EnsureDB(t.Context()))
}
