package handlers

import (
	"net/http"
	"strings"

	"transportes/internal/domain/models"
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func productoService(c *gin.Context) services.ProductoService {
	return services.ProductoService{Repo: repositories.ProductoRepository{}, RequestID: middleware.GetRequestID(c)}
}

func ventaService(c *gin.Context) services.VentaService {
	return services.VentaService{Repo: repositories.VentaRepository{}, Clock: cfg().clock, RequestID: middleware.GetRequestID(c)}
}

func pagoService(c *gin.Context) services.PagoService {
	return services.PagoService{Repo: repositories.PagoRepository{}, Clock: cfg().clock, RequestID: middleware.GetRequestID(c)}
}

// GET /api/productos?q=&activos=true
func GetProductos(c *gin.Context) {
	list, err := productoService(c).List(c.Request.Context(), listParams(c), queryBool(c, "activos"))
	if err != nil {
		RespondDomainError(c, "productos", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetProductoByID(c *gin.Context) {
	id, valid := pathID(c, "producto")
	if !valid {
		return
	}
	p, err := productoService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "productos", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func CreateProducto(c *gin.Context) {
	var payload models.Producto
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := productoService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "productos", err)
		return
	}
	created(c, id, "producto creado")
}

func UpdateProducto(c *gin.Context) {
	id, valid := pathID(c, "producto")
	if !valid {
		return
	}
	var payload models.Producto
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := productoService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "productos", err)
		return
	}
	respondOK(c, "producto actualizado")
}

func DeleteProducto(c *gin.Context) {
	id, valid := pathID(c, "producto")
	if !valid {
		return
	}
	if err := productoService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "productos", err)
		return
	}
	respondOK(c, "producto eliminado")
}

// GET /api/ventas?cliente_id=&desde=&hasta=
func GetVentas(c *gin.Context) {
	f := repositories.VentaFilter{
		ListParams: listParams(c),
		ClienteID:  queryID(c, "cliente_id"),
		Desde:      strings.TrimSpace(c.Query("desde")),
		Hasta:      strings.TrimSpace(c.Query("hasta")),
	}
	list, err := ventaService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, "ventas", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetVentaByID(c *gin.Context) {
	id, valid := pathID(c, "venta")
	if !valid {
		return
	}
	v, err := ventaService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "ventas", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

// POST /api/ventas computes totals server side and decrements stock.
func CreateVenta(c *gin.Context) {
	var payload models.Venta
	if !BindJSONOrError(c, &payload) {
		return
	}
	v, err := ventaService(c).Registrar(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "ventas", err)
		return
	}
	c.JSON(http.StatusCreated, v)
}

// PUT /api/ventas/:id/anular restores the stock of every line.
func AnularVenta(c *gin.Context) {
	id, valid := pathID(c, "venta")
	if !valid {
		return
	}
	if err := ventaService(c).Anular(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "ventas", err)
		return
	}
	respondOK(c, "venta anulada")
}

// GET /api/pagos?cliente_id=&concepto=
func GetPagos(c *gin.Context) {
	f := repositories.PagoFilter{
		ListParams: listParams(c),
		ClienteID:  queryID(c, "cliente_id"),
		Concepto:   strings.ToLower(strings.TrimSpace(c.Query("concepto"))),
	}
	list, err := pagoService(c).List(c.Request.Context(), f)
	if err != nil {
		RespondDomainError(c, "pagos", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func GetPagoByID(c *gin.Context) {
	id, valid := pathID(c, "pago")
	if !valid {
		return
	}
	p, err := pagoService(c).Get(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "pagos", err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func CreatePago(c *gin.Context) {
	var payload models.Pago
	if !BindJSONOrError(c, &payload) {
		return
	}
	id, err := pagoService(c).Create(c.Request.Context(), payload)
	if err != nil {
		RespondDomainError(c, "pagos", err)
		return
	}
	created(c, id, "pago registrado")
}

func UpdatePago(c *gin.Context) {
	id, valid := pathID(c, "pago")
	if !valid {
		return
	}
	var payload models.Pago
	if !BindJSONOrError(c, &payload) {
		return
	}
	if err := pagoService(c).Update(c.Request.Context(), id, payload); err != nil {
		RespondDomainError(c, "pagos", err)
		return
	}
	respondOK(c, "pago actualizado")
}

func DeletePago(c *gin.Context) {
	id, valid := pathID(c, "pago")
	if !valid {
		return
	}
	if err := pagoService(c).Delete(c.Request.Context(), id); err != nil {
		RespondDomainError(c, "pagos", err)
		return
	}
	respondOK(c, "pago eliminado")
}
