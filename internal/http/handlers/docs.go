package handlers

import (
	"transportes/internal/http/middleware"
	"transportes/internal/repositories"
	"transportes/internal/services"

	"github.com/gin-gonic/gin"
)

func docsService(c *gin.Context) services.DocsService {
	return services.DocsService{
		BoletoRepo: repositories.BoletoRepository{},
		VentaRepo:  repositories.VentaRepository{},
		Clock:      cfg().clock,
		RequestID:  middleware.GetRequestID(c),
	}
}

// GET /api/reservas/:id/boleto.pdf
func GetBoletoPDF(c *gin.Context) {
	id, valid := pathID(c, "boleto")
	if !valid {
		return
	}
	data, filename, err := docsService(c).GenerateBoleto(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "docs", err)
		return
	}
	sendPDF(c, data, filename)
}

// GET /api/ventas/:id/factura.pdf
func GetFacturaPDF(c *gin.Context) {
	id, valid := pathID(c, "venta")
	if !valid {
		return
	}
	data, filename, err := docsService(c).GenerateFactura(c.Request.Context(), id)
	if err != nil {
		RespondDomainError(c, "docs", err)
		return
	}
	sendPDF(c, data, filename)
}
