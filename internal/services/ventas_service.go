package services

import (
	"context"
	"fmt"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/jonboulle/clockwork"
)

type ProductoService struct {
	Repo      repositories.ProductoRepository
	RequestID string
}

func normalizeProducto(p models.Producto) (models.Producto, error) {
	p.Nombre = utils.NormalizeSpace(p.Nombre)
	p.Descripcion = utils.TrimOrEmpty(p.Descripcion)

	p.Precio = utils.Round2(p.Precio)
	return p, validateStruct(p)
}

func (s ProductoService) List(ctx context.Context, p domain.ListParams, soloActivos bool) ([]models.Producto, error) {
	return s.Repo.List(ctx, p.Normalize(), soloActivos)
}

func (s ProductoService) Get(ctx context.Context, id int64) (models.Producto, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s ProductoService) Create(ctx context.Context, p models.Producto) (int64, error) {
	p, err := normalizeProducto(p)
	if err != nil {
		return 0, err
	}
	return s.Repo.Create(ctx, p)
}

func (s ProductoService) Update(ctx context.Context, id int64, p models.Producto) error {
	p, err := normalizeProducto(p)
	if err != nil {
		return err
	}
	p.ID = id
	return s.Repo.Update(ctx, p)
}

func (s ProductoService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}

type VentaService struct {
	Repo      repositories.VentaRepository
	Clock     clockwork.Clock
	RequestID string
}

// Registrar validates the header and lines; totals and stock are settled in the repository tx.
func (s VentaService) Registrar(ctx context.Context, v models.Venta) (models.Venta, error) {
	v.Fecha = utils.DateOnly(v.Fecha)
	if v.Fecha == "" {
		clock := s.Clock
		if clock == nil {
			clock = clockwork.NewRealClock()
		}
		v.Fecha = utils.FormatDate(clock.Now())
	}
	v.Estado = domain.EstadoVentaRegistrada

	if err := validateStruct(v); err != nil {
		return v, err
	}

	out, err := s.Repo.Registrar(ctx, v)
	if err != nil {
		return v, err
	}
	utils.LogEvent(s.RequestID, "ventas", "create",
		fmt.Sprintf("venta_id=%d items=%d total=%s", out.ID, len(out.Items), utils.FormatMoney(out.Total)))
	return out, nil
}

func (s VentaService) List(ctx context.Context, f repositories.VentaFilter) ([]models.Venta, error) {
	f.ListParams = f.ListParams.Normalize()
	return s.Repo.List(ctx, f)
}

func (s VentaService) Get(ctx context.Context, id int64) (models.Venta, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s VentaService) Anular(ctx context.Context, id int64) error {
	if err := s.Repo.Anular(ctx, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "ventas", "anular", fmt.Sprintf("venta_id=%d", id))
	return nil
}

type PagoService struct {
	Repo      repositories.PagoRepository
	Clock     clockwork.Clock
	RequestID string
}

func (s PagoService) normalize(g models.Pago) (models.Pago, error) {
	g.Concepto = defaultLower(g.Concepto, "otro")
	g.Metodo = defaultLower(g.Metodo, "efectivo")
	g.Estado = defaultLower(g.Estado, domain.EstadoPagoRegistrado)
	g.Fecha = utils.DateOnly(g.Fecha)
	if g.Fecha == "" {
		clock := s.Clock
		if clock == nil {
			clock = clockwork.NewRealClock()
		}
		g.Fecha = utils.FormatDate(clock.Now())
	}
	g.Monto = utils.Round2(g.Monto)

	return g, validateStruct(g)
}

func (s PagoService) List(ctx context.Context, f repositories.PagoFilter) ([]models.Pago, error) {
	f.ListParams = f.ListParams.Normalize()
	return s.Repo.List(ctx, f)
}

func (s PagoService) Get(ctx context.Context, id int64) (models.Pago, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s PagoService) Create(ctx context.Context, g models.Pago) (int64, error) {
	g, err := s.normalize(g)
	if err != nil {
		return 0, err
	}
	id, err := s.Repo.Create(ctx, g)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "pagos", "create",
		fmt.Sprintf("pago_id=%d cliente_id=%d monto=%s", id, g.ClienteID, utils.FormatMoney(g.Monto)))
	return id, nil
}

func (s PagoService) Update(ctx context.Context, id int64, g models.Pago) error {
	g, err := s.normalize(g)
	if err != nil {
		return err
	}
	g.ID = id
	return s.Repo.Update(ctx, g)
}

func (s PagoService) Delete(ctx context.Context, id int64) error {
	return s.Repo.Delete(ctx, id)
}
