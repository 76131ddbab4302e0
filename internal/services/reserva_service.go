package services

import (
	"context"
	"fmt"
	"strings"

	"transportes/internal/domain"
	"transportes/internal/domain/models"
	"transportes/internal/repositories"
	"transportes/internal/utils"

	"github.com/google/uuid"
)

// ReservaService backs the reservation form: ruta → viajes → asientos → boleto.
type ReservaService struct {
	BoletoRepo repositories.BoletoRepository
	ViajeRepo  repositories.ViajeRepository
	RequestID  string
}

type ReservaInput struct {
	ViajeID   int64    `json:"viaje_id" binding:"required,gt=0"`
	ClienteID int64    `json:"cliente_id" binding:"required,gt=0"`
	Asiento   int      `json:"asiento" binding:"gt=0"`
	Precio    *float64 `json:"precio" binding:"omitempty,gte=0"`
	Pagado    bool     `json:"pagado"`
}

// ViajeDisponible is a viaje option with its free seat count.
type ViajeDisponible struct {
	models.Viaje
	Disponibles int `json:"disponibles"`
}

func nuevoCodigo(prefix string) string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + strings.ToUpper(id[:10])
}

// ViajesDeRuta lists the bookable viajes of a ruta on a date, with free seats.
func (s ReservaService) ViajesDeRuta(ctx context.Context, rutaID int64, fecha string) ([]ViajeDisponible, error) {
	fecha = utils.DateOnly(fecha)
	if fecha != "" && !utils.ValidDate(fecha) {
		return nil, domain.Invalid("fecha", "formato esperado YYYY-MM-DD")
	}
	viajes, err := s.ViajeRepo.List(ctx, repositories.ViajeFilter{RutaID: rutaID, Fecha: fecha, Estado: domain.EstadoViajeProgramado})
	if err != nil {
		return nil, err
	}
	out := make([]ViajeDisponible, 0, len(viajes))
	for _, v := range viajes {
		ocupados, err := s.BoletoRepo.AsientosOcupados(ctx, v.ID)
		if err != nil {
			return nil, err
		}
		libres := v.Capacidad - len(ocupados)
		if libres < 0 {
			libres = 0
		}
		out = append(out, ViajeDisponible{Viaje: v, Disponibles: libres})
	}
	return out, nil
}

// Asientos returns seats 1..capacidad flagged as ocupado when a live boleto holds them.
func (s ReservaService) Asientos(ctx context.Context, viajeID int64) ([]models.Asiento, error) {
	v, err := s.ViajeRepo.GetByID(ctx, viajeID)
	if err != nil {
		return nil, err
	}
	ocupados, err := s.BoletoRepo.AsientosOcupados(ctx, viajeID)
	if err != nil {
		return nil, err
	}
	return MapaAsientos(v.Capacidad, ocupados), nil
}

// MapaAsientos builds the seat map for a unit of the given capacity.
func MapaAsientos(capacidad int, ocupados map[int]int64) []models.Asiento {
	out := make([]models.Asiento, 0, capacidad)
	for n := 1; n <= capacidad; n++ {
		a := models.Asiento{Numero: n}
		if id, ok := ocupados[n]; ok {
			a.Ocupado = true
			a.BoletoID = id
		}
		out = append(out, a)
	}
	return out
}

// Reservar issues a boleto. The price defaults to the ruta price; seat checks happen
// inside the repository transaction.
func (s ReservaService) Reservar(ctx context.Context, in ReservaInput) (models.Boleto, error) {
	if err := validateStruct(in); err != nil {
		return models.Boleto{}, err
	}

	v, err := s.ViajeRepo.GetByID(ctx, in.ViajeID)
	if err != nil {
		return models.Boleto{}, err
	}

	b := models.Boleto{
		Codigo:    nuevoCodigo("BOL"),
		ViajeID:   in.ViajeID,
		ClienteID: in.ClienteID,
		Asiento:   in.Asiento,
		Precio:    v.Precio,
		Estado:    domain.EstadoBoletoReservado,
	}
	if in.Precio != nil {
		b.Precio = utils.Round2(*in.Precio)
	}
	if in.Pagado {
		b.Estado = domain.EstadoBoletoPagado
	}

	b.ID, err = s.BoletoRepo.Reservar(ctx, b)
	if err != nil {
		return models.Boleto{}, err
	}
	utils.LogEvent(s.RequestID, "reservas", "create",
		fmt.Sprintf("boleto_id=%d viaje_id=%d asiento=%d", b.ID, b.ViajeID, b.Asiento))
	return s.BoletoRepo.GetByID(ctx, b.ID)
}

func (s ReservaService) List(ctx context.Context, f repositories.BoletoFilter) ([]models.Boleto, error) {
	f.ListParams = f.ListParams.Normalize()
	return s.BoletoRepo.List(ctx, f)
}

func (s ReservaService) Get(ctx context.Context, id int64) (models.Boleto, error) {
	return s.BoletoRepo.GetByID(ctx, id)
}

// CambiarEstado moves a boleto to pagado or cancelado. A cancelled boleto is final
// and a paid one never goes back to reservado.
func (s ReservaService) CambiarEstado(ctx context.Context, id int64, estado string) error {
	estado = defaultLower(estado, "")
	if !domain.OneOf(estado, domain.EstadoBoletoPagado, domain.EstadoBoletoCancelado, domain.EstadoBoletoReservado) {
		return domain.Invalid("estado", "valor no permitido: "+estado)
	}
	b, err := s.BoletoRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b.Estado == domain.EstadoBoletoCancelado {
		return domain.ConflictError{Resource: "boleto", Msg: "ya esta cancelado"}
	}
	if b.Estado == domain.EstadoBoletoPagado && estado == domain.EstadoBoletoReservado {
		return domain.ConflictError{Resource: "boleto", Msg: "ya esta pagado"}
	}
	if err := s.BoletoRepo.UpdateEstado(ctx, id, estado); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "reservas", "estado", fmt.Sprintf("boleto_id=%d estado=%s", id, estado))
	return nil
}

func (s ReservaService) Delete(ctx context.Context, id int64) error {
	return s.BoletoRepo.Delete(ctx, id)
}
