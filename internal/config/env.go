package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser     string
	DBPassword string
	DBHost     string
	DBName     string
	DBMigrate  bool

	JWTSecret    string
	AuthDisabled bool
	CORSOrigins  []string

	// TarifaKg is the fixed per-kg rate applied to encomiendas.
	TarifaKg float64
	// AlertasCron is the robfig/cron spec for the maintenance alert sweep. Empty disables it.
	AlertasCron     string
	LoginRatePerMin int

	LogLevel  string
	LogFormat string
}

var defaultOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadEnv reads .env (when present) and the process environment.
func LoadEnv() Env {
	_ = godotenv.Load()

	env := Env{
		AppAddr:         getenv("APP_ADDR", ":8080"),
		GinMode:         getenv("GIN_MODE", ""),
		DBUser:          getenv("DB_USER", "root"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          getenv("DB_HOST", "127.0.0.1:3306"),
		DBName:          getenv("DB_NAME", "transportes"),
		DBMigrate:       getbool("DB_MIGRATE", true),
		JWTSecret:       getenv("JWT_SECRET", "cambiar-este-secreto"),
		AuthDisabled:    getbool("AUTH_DISABLED", false),
		CORSOrigins:     defaultOrigins,
		TarifaKg:        getfloat("ENCOMIENDA_TARIFA_KG", 5.0),
		AlertasCron:     getenv("ALERTAS_CRON", "@every 1h"),
		LoginRatePerMin: getint("LOGIN_RATE_PER_MIN", 10),
		LogLevel:        getenv("LOG_LEVEL", "info"),
		LogFormat:       getenv("LOG_FORMAT", "text"),
	}

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		env.CORSOrigins = nil
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}
	return env
}

// DSN builds the MySQL data source name. clientFoundRows makes UPDATE report matched rows,
// so an update with unchanged values is not mistaken for a missing record.
func (e Env) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=Local&charset=utf8mb4&clientFoundRows=true&timeout=5s&readTimeout=30s&writeTimeout=30s",
		e.DBUser,
		e.DBPassword,
		e.DBHost,
		e.DBName,
	)
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getbool(key string, def bool) bool {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getint(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getfloat(key string, def float64) float64 {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < 0 {
		return def
	}
	return f
}
