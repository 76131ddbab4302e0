package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/jonboulle/clockwork"
	"github.com/phpdave11/gofpdf"
)

// DocsService renders the printable boleto and factura.
type DocsService struct {
	BoletoRepo repositories.BoletoRepository
	VentaRepo  repositories.VentaRepository
	Clock      clockwork.Clock
	RequestID  string

	// loaders are swapped in tests
	loadBoleto func(ctx context.Context, id int64) (models.Boleto, error)
	loadVenta  func(ctx context.Context, id int64) (models.Venta, error)
}

func (s DocsService) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now()
	}
	return time.Now()
}

func (s DocsService) boleto(ctx context.Context, id int64) (models.Boleto, error) {
	if s.loadBoleto != nil {
		return s.loadBoleto(ctx, id)
	}
	return s.BoletoRepo.GetByID(ctx, id)
}

func (s DocsService) venta(ctx context.Context, id int64) (models.Venta, error) {
	if s.loadVenta != nil {
		return s.loadVenta(ctx, id)
	}
	return s.VentaRepo.GetByID(ctx, id)
}

// GenerateBoleto returns the e-ticket PDF and its filename. Cancelled boletos are not printable.
func (s DocsService) GenerateBoleto(ctx context.Context, id int64) ([]byte, string, error) {
	b, err := s.boleto(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if b.Estado == domain.EstadoBoletoCancelado {
		return nil, "", domain.ConflictError{Resource: "boleto", Msg: "el boleto esta cancelado"}
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Boleto "+b.Codigo, false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOLETO DE VIAJE")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Codigo     : %s", orDash(b.Codigo)),
		fmt.Sprintf("Pasajero   : %s", orDash(b.Pasajero)),
		fmt.Sprintf("Documento  : %s", orDash(b.Documento)),
		fmt.Sprintf("Ruta       : %s -> %s", orDash(b.Origen), orDash(b.Destino)),
		fmt.Sprintf("Salida     : %s %s", orDash(utils.DateOnly(b.Fecha)), orDash(utils.TimeHM(b.HoraSalida))),
		fmt.Sprintf("Unidad     : %s", orDash(b.Placa)),
		fmt.Sprintf("Asiento    : %d", b.Asiento),
		fmt.Sprintf("Precio     : %s", utils.FormatMonto(b.Precio)),
		fmt.Sprintf("Estado     : %s", b.Estado),
	}
	for _, l := range lines {
		pdf.Cell(0, 7, tr(pdf, l))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, tr(pdf, "Presente este boleto al abordar. Valido para un pasajero y un asiento."), "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar el boleto", Err: err}
	}
	utils.LogEvent(s.RequestID, "docs", "boleto", fmt.Sprintf("boleto_id=%d", b.ID))
	filename := fmt.Sprintf("BOLETO_%s_%s.pdf", utils.SafeFilenamePart(b.Codigo), utils.SafeFilenamePart(b.Pasajero))
	return buf.Bytes(), filename, nil
}

// GenerateFactura returns the invoice PDF of a venta with its line items.
func (s DocsService) GenerateFactura(ctx context.Context, id int64) ([]byte, string, error) {
	v, err := s.venta(ctx, id)
	if err != nil {
		return nil, "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Factura %d", v.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "FACTURA")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, fmt.Sprintf("No Factura : FAC-%06d", v.ID))
	pdf.Ln(7)
	pdf.Cell(0, 7, "Fecha venta: "+orDash(utils.DateOnly(v.Fecha)))
	pdf.Ln(7)
	pdf.Cell(0, 7, tr(pdf, "Cliente    : "+orDash(v.Cliente)))
	pdf.Ln(7)
	if v.Estado == domain.EstadoVentaAnulada {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "ANULADA")
		pdf.Ln(7)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(90, 7, "Producto", "1", 0, "", false, 0, "")
	pdf.CellFormat(25, 7, "Cant.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "P. Unit.", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Importe", "1", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	for _, it := range v.Items {
		name := it.Producto
		if name == "" {
			name = fmt.Sprintf("Producto #%d", it.ProductoID)
		}
		pdf.CellFormat(90, 7, tr(pdf, name), "1", 0, "", false, 0, "")
		pdf.CellFormat(25, 7, fmt.Sprintf("%d", it.Cantidad), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMonto(it.PrecioUnitario), "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, utils.FormatMonto(it.Importe), "1", 1, "R", false, 0, "")
	}

	pdf.Ln(4)
	totals := [][2]string{
		{"Subtotal", utils.FormatMonto(v.Subtotal)},
		{"Descuento", utils.FormatMonto(v.Descuento)},
		{"Total", utils.FormatMonto(v.Total)},
	}
	for i, t := range totals {
		if i == len(totals)-1 {
			pdf.SetFont("Helvetica", "B", 12)
		}
		pdf.CellFormat(150, 7, t[0], "", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, t[1], "", 1, "R", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Emitida: "+utils.FormatDateTime(s.now()))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", domain.InternalError{Msg: "no se pudo generar la factura", Err: err}
	}
	utils.LogEvent(s.RequestID, "docs", "factura", fmt.Sprintf("venta_id=%d", v.ID))
	filename := fmt.Sprintf("FACTURA_%06d_%s.pdf", v.ID, utils.SafeFilenamePart(v.Cliente))
	return buf.Bytes(), filename, nil
}

// tr converts UTF-8 text (accents, ñ) to the core font code page.
func tr(pdf *gofpdf.Fpdf, s string) string {
	return pdf.UnicodeTranslatorFromDescriptor("")(s)
}

func orDash(v string) string {
	v = utils.TrimOrEmpty(v)
	if v == "" {
		return "-"
	}
	return v
}
