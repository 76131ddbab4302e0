package api

import (
	stdhttp "net/http"

	intconfig "transportes/internal/config"
	h "transportes/internal/http/handlers"
	"transportes/internal/http/middleware"
	"transportes/internal/metrics"
	"transportes/internal/utils"

	"github.com/gin-gonic/gin"
)

// Permission codes seeded in the permisos table.
const (
	permAdmin         = "admin"
	permClientes      = "clientes"
	permFlota         = "flota"
	permMantenimiento = "mantenimiento"
	permReservas      = "reservas"
	permVentas        = "ventas"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		utils.Log.WithError(err).Warn("no se pudo configurar trusted proxies")
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":      "ruta no encontrada",
			"code":       "not_found",
			"message":    "ruta no encontrada",
			"request_id": middleware.GetRequestID(c),
		})
	})

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth (public)
		limiter := middleware.NewIPRateLimiter(env.LoginRatePerMin)
		auth := api.Group("/auth")
		auth.POST("/login", limiter.Middleware(), h.Login)
		auth.POST("/register", limiter.Middleware(), h.Register)

		private := api.Group("", middleware.Auth([]byte(env.JWTSecret), env.AuthDisabled))
		private.GET("/auth/me", h.Me)
		private.GET("/routes", middleware.RequireRoles(permAdmin), h.Routes)

		mountClientes(private)
		mountFlota(private)
		mountMantenimiento(private)
		mountReservas(private)
		mountVentas(private)
		mountAcceso(private)

		reportes := private.Group("/reportes")
		reportes.GET("/resumen", h.GetResumen)
	}

	h.SetRouter(r)
	return r
}

func mountClientes(g *gin.RouterGroup) {
	w := middleware.RequirePermiso(permClientes)

	personas := g.Group("/personas")
	personas.GET("", h.GetPersonas)
	personas.GET("/:id", h.GetPersonaByID)
	personas.POST("", w, h.CreatePersona)
	personas.PUT("/:id", w, h.UpdatePersona)
	personas.DELETE("/:id", w, h.DeletePersona)

	clientes := g.Group("/clientes")
	clientes.GET("", h.GetClientes)
	clientes.GET("/:id", h.GetClienteByID)
	clientes.POST("", w, h.CreateCliente)
	clientes.PUT("/:id", w, h.UpdateCliente)
	clientes.DELETE("/:id", w, h.DeleteCliente)
}

func mountFlota(g *gin.RouterGroup) {
	w := middleware.RequirePermiso(permFlota)

	rutas := g.Group("/rutas")
	rutas.GET("", h.GetRutas)
	rutas.GET("/:id", h.GetRutaByID)
	rutas.POST("", w, h.CreateRuta)
	rutas.PUT("/:id", w, h.UpdateRuta)
	rutas.DELETE("/:id", w, h.DeleteRuta)

	unidades := g.Group("/unidades")
	unidades.GET("", h.GetUnidades)
	unidades.GET("/:id", h.GetUnidadByID)
	unidades.POST("", w, h.CreateUnidad)
	unidades.PUT("/:id", w, h.UpdateUnidad)
	unidades.DELETE("/:id", w, h.DeleteUnidad)

	viajes := g.Group("/viajes")
	viajes.GET("", h.GetViajes)
	viajes.GET("/:id", h.GetViajeByID)
	viajes.POST("", w, h.CreateViaje)
	viajes.PUT("/:id", w, h.UpdateViaje)
	viajes.DELETE("/:id", w, h.DeleteViaje)
}

func mountMantenimiento(g *gin.RouterGroup) {
	w := middleware.RequirePermiso(permMantenimiento)

	m := g.Group("/mantenimientos")
	m.GET("", h.GetMantenimientos)
	m.GET("/alertas", h.GetAlertas)
	m.GET("/alertas/ultima", h.GetUltimoBarrido)
	m.GET("/:id", h.GetMantenimientoByID)
	m.POST("", w, h.CreateMantenimiento)
	m.PUT("/:id", w, h.UpdateMantenimiento)
	m.PUT("/:id/completar", w, h.CompletarMantenimiento)
	m.DELETE("/:id", w, h.DeleteMantenimiento)
}

func mountReservas(g *gin.RouterGroup) {
	w := middleware.RequirePermiso(permReservas)

	reservas := g.Group("/reservas")
	reservas.GET("/rutas/:id/viajes", h.GetViajesDeRuta)
	reservas.GET("/viajes/:id/asientos", h.GetAsientos)
	reservas.POST("", w, h.CreateReserva)
	reservas.PUT("/:id/cancelar", w, h.CancelarReserva)
	reservas.GET("/:id/boleto.pdf", h.GetBoletoPDF)

	boletos := g.Group("/boletos")
	boletos.GET("", h.GetBoletos)
	boletos.GET("/:id", h.GetBoletoByID)
	boletos.POST("", w, h.CreateReserva)
	boletos.PUT("/:id", w, h.UpdateBoleto)
	boletos.DELETE("/:id", w, h.DeleteBoleto)

	encomiendas := g.Group("/encomiendas")
	encomiendas.GET("", h.GetEncomiendas)
	encomiendas.GET("/cotizar", h.CotizarEncomienda)
	encomiendas.GET("/:id", h.GetEncomiendaByID)
	encomiendas.POST("", w, h.CreateEncomienda)
	encomiendas.PUT("/:id", w, h.UpdateEncomienda)
	encomiendas.DELETE("/:id", w, h.DeleteEncomienda)
}

func mountVentas(g *gin.RouterGroup) {
	w := middleware.RequirePermiso(permVentas)

	productos := g.Group("/productos")
	productos.GET("", h.GetProductos)
	productos.GET("/:id", h.GetProductoByID)
	productos.POST("", w, h.CreateProducto)
	productos.PUT("/:id", w, h.UpdateProducto)
	productos.DELETE("/:id", w, h.DeleteProducto)

	ventas := g.Group("/ventas")
	ventas.GET("", h.GetVentas)
	ventas.GET("/:id", h.GetVentaByID)
	ventas.GET("/:id/factura.pdf", h.GetFacturaPDF)
	ventas.POST("", w, h.CreateVenta)
	ventas.PUT("/:id/anular", w, h.AnularVenta)

	pagos := g.Group("/pagos")
	pagos.GET("", h.GetPagos)
	pagos.GET("/:id", h.GetPagoByID)
	pagos.POST("", w, h.CreatePago)
	pagos.PUT("/:id", w, h.UpdatePago)
	pagos.DELETE("/:id", w, h.DeletePago)
}

func mountAcceso(g *gin.RouterGroup) {
	admin := middleware.RequirePermiso(permAdmin)

	usuarios := g.Group("/usuarios", admin)
	usuarios.GET("", h.GetUsuarios)
	usuarios.GET("/:id", h.GetUsuarioByID)
	usuarios.POST("", h.CreateUsuario)
	usuarios.PUT("/:id", h.UpdateUsuario)
	usuarios.DELETE("/:id", h.DeleteUsuario)

	roles := g.Group("/roles", admin)
	roles.GET("", h.GetRoles)
	roles.GET("/:id", h.GetRolByID)
	roles.POST("", h.CreateRol)
	roles.PUT("/:id", h.UpdateRol)
	roles.DELETE("/:id", h.DeleteRol)

	permisos := g.Group("/permisos", admin)
	permisos.GET("", h.GetPermisos)
	permisos.POST("", h.CreatePermiso)
	permisos.DELETE("/:id", h.DeletePermiso)
}
