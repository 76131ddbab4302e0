package handlers

import (
	"net/http"
	"sync"

	intconfig "transportes/internal/config"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for /api/routes.
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "api de transportes en linea"})
}

func DBCheck(c *gin.Context) {
	if err := intconfig.EnsureDB(c.Request.Context()); err != nil {
		respondError(c, http.StatusServiceUnavailable, "db_unavailable", "base de datos no disponible: "+err.Error())
		return
	}
	var count int
	if err := intconfig.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM usuarios").Scan(&count); err != nil {
		respondError(c, http.StatusInternalServerError, "db_query_failed", "fallo la consulta a la base de datos")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "conexion a base de datos OK", "usuarios": count})
}

func Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		respondError(c, http.StatusServiceUnavailable, "router_not_ready", "router no inicializado")
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	c.JSON(http.StatusOK, gin.H{"routes": out})
}
