package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	intconfig "transportes/internal/config"
	"transportes/internal/domain/models"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEnv(disabled bool) intconfig.Env {
	return intconfig.Env{
		JWTSecret:       "router-secret",
		AuthDisabled:    disabled,
		CORSOrigins:     []string{"http://localhost:5173"},
		TarifaKg:        5,
		LoginRatePerMin: 5,
	}
}

func get(r *gin.Engine, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouterPublicEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv(false))

	w := get(r, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = get(r, "/api/no-existe", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"code":"not_found"`)

	w = get(r, "/metrics", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transportes_http_requests_total")
}

func TestRouterRequiresToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv(false))

	w := get(r, "/api/encomiendas/cotizar?peso_kg=1", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	tok, err := services.AuthService{Secret: []byte("router-secret")}.IssueToken(models.Usuario{ID: 2, Rol: "operador"})
	require.NoError(t, err)

	w = get(r, "/api/routes", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = get(r, "/api/usuarios", tok)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRouterAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv(true))

	w := get(r, "/api/auth/me", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"user_id":0,"rol":"admin","permisos":["admin"]}`, w.Body.String())

	w = get(r, "/api/routes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/mantenimientos/alertas")
	assert.Contains(t, w.Body.String(), "/api/reservas/viajes/:id/asientos")
}

func TestRouterCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(testEnv(false))

	req := httptest.NewRequest(http.MethodOptions, "/api/health", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
