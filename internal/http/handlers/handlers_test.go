package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	intconfig "transportes/internal/config"
	"transportes/internal/domain"
	"transportes/internal/http/middleware"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine() *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID())
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var out ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestRespondDomainError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"validation", domain.Invalid("placa", "es requerido"), http.StatusBadRequest, "validation_error", ""},
		{"not found", domain.NotFoundError{Resource: "unidad"}, http.StatusNotFound, "not_found", ""},
		{"conflict", domain.ConflictError{Resource: "boleto", Msg: "asiento ocupado"}, http.StatusConflict, "conflict", ""},
		{"internal", domain.InternalError{Msg: "no se pudo guardar", Err: errors.New("disk")}, http.StatusInternalServerError, "internal_error", "no se pudo guardar"},
		{"unknown", errors.New("driver: bad connection"), http.StatusInternalServerError, "internal_error", "ocurrio un error interno"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine()
			r.GET("/x", func(c *gin.Context) { RespondDomainError(c, "test", tc.err) })
			w := do(r, http.MethodGet, "/x", "")

			if w.Code != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, w.Code)
			}
			res := decodeError(t, w)
			assert.Equal(t, tc.code, res.Code)
			assert.NotEmpty(t, res.RequestID)
			if tc.msg != "" {
				assert.Equal(t, tc.msg, res.Message)
			}
		})
	}
}

func TestPathIDAndEmptyBody(t *testing.T) {
	r := newEngine()
	r.GET("/unidades/:id", GetUnidadByID)
	r.POST("/reservas", CreateReserva)

	w := do(r, http.MethodGet, "/unidades/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_id", decodeError(t, w).Code)

	w = do(r, http.MethodGet, "/unidades/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/reservas", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, decodeError(t, w).Message, "cuerpo vacio")

	w = do(r, http.MethodPost, "/reservas", `{"viaje_id":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodPost, "/reservas", `{"viaje_id":1,"cliente_id":1,"asiento":0}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	res := decodeError(t, w)
	assert.Equal(t, "validation_error", res.Code)
	assert.Equal(t, "asiento: debe ser mayor a cero", res.Message)

	w = do(r, http.MethodPost, "/reservas", `{"cliente_id":1,"asiento":2}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "viaje_id: es obligatorio", decodeError(t, w).Message)
}

func TestCompletarMantenimientoReadsChunkedBody(t *testing.T) {
	r := newEngine()
	r.PUT("/mantenimientos/:id/completar", CompletarMantenimiento)

	req := httptest.NewRequest(http.MethodPut, "/mantenimientos/7/completar",
		io.NopCloser(strings.NewReader(`{"kilometraje":-5}`)))
	req.ContentLength = -1
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	res := decodeError(t, w)
	assert.Equal(t, "validation_error", res.Code)
	assert.Equal(t, "kilometraje: no puede ser negativo", res.Message)
}

func TestCotizarEncomienda(t *testing.T) {
	Configure(intconfig.Env{TarifaKg: 4}, nil, nil)
	defer Configure(intconfig.Env{TarifaKg: 5}, nil, nil)

	r := newEngine()
	r.GET("/encomiendas/cotizar", CotizarEncomienda)

	w := do(r, http.MethodGet, "/encomiendas/cotizar?peso_kg=2.5", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"peso_kg":2.5,"tarifa_kg":4,"costo":10}`, w.Body.String())

	w = do(r, http.MethodGet, "/encomiendas/cotizar?peso_kg=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(r, http.MethodGet, "/encomiendas/cotizar?peso_kg=0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAlertas(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	prev := intconfig.DB
	intconfig.DB = db
	defer func() { intconfig.DB = prev }()

	Configure(intconfig.Env{TarifaKg: 5}, clockwork.NewFakeClockAt(time.Date(2025, 5, 1, 8, 0, 0, 0, time.Local)), nil)
	defer Configure(intconfig.Env{TarifaKg: 5}, nil, nil)

	cols := []string{"id", "unidad_id", "placa", "tipo", "descripcion", "fecha_programada",
		"fecha_realizada", "kilometraje", "proximo_mantenimiento", "costo", "estado"}
	mock.ExpectQuery("FROM mantenimientos m").WithArgs(domain.EstadoMantRealizado, domain.EstadoMantCancelado).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(1, 1, "ABC-123", "aceite", "", "2025-05-02", "", 1000, "", 0, "pendiente").
			AddRow(2, 2, "XYZ-987", "frenos", "", "2025-05-20", "", 5000, "", 0, "pendiente"))

	r := newEngine()
	r.GET("/mantenimientos/alertas", GetAlertas)
	w := do(r, http.MethodGet, "/mantenimientos/alertas?prioridad=alta", "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var res struct {
		Fecha   string         `json:"fecha"`
		Conteo  map[string]int `json:"conteo"`
		Alertas []domain.Alerta
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "2025-05-01", res.Fecha)
	require.Len(t, res.Alertas, 1)
	assert.Equal(t, int64(1), res.Alertas[0].MantenimientoID)
	assert.Equal(t, 1, res.Conteo["alta"])
	assert.Equal(t, 1, res.Conteo["baja"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteOwnUsuario(t *testing.T) {
	r := newEngine()
	r.DELETE("/usuarios/:id", func(c *gin.Context) { c.Set(middleware.CtxUserID, int64(3)) }, DeleteUsuario)

	w := do(r, http.MethodDelete, "/usuarios/3", "")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUltimoBarridoDisabled(t *testing.T) {
	Configure(intconfig.Env{TarifaKg: 5}, nil, nil)
	r := newEngine()
	r.GET("/ultima", GetUltimoBarrido)
	w := do(r, http.MethodGet, "/ultima", "")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "scheduler_disabled", decodeError(t, w).Code)
}

func TestRoutes(t *testing.T) {
	r := newEngine()
	r.GET("/api/health", Health)
	r.GET("/api/routes", Routes)
	SetRouter(r)
	defer SetRouter(nil)

	w := do(r, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, "/api/routes", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"path":"/api/health"`)
}
