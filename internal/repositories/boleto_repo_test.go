package repositories

import (
	"context"
	"testing"

	"transportes/internal/domain"
	"transportes/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func expectViajeLock(mock sqlmock.Sqlmock, viajeID int64, capacidad int, estado string) {
	mock.ExpectQuery("SELECT u.capacidad, v.estado").WithArgs(viajeID).
		WillReturnRows(sqlmock.NewRows([]string{"capacidad", "estado"}).AddRow(capacidad, estado))
}

func TestReservarInsertsFreeSeat(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	expectViajeLock(mock, 10, 40, domain.EstadoViajeProgramado)
	mock.ExpectQuery("SELECT asiento, id FROM boletos WHERE viaje_id = \\? AND estado <> \\? FOR UPDATE").
		WithArgs(int64(10), domain.EstadoBoletoCancelado).
		WillReturnRows(sqlmock.NewRows([]string{"asiento", "id"}).AddRow(1, 5))
	mock.ExpectExec("INSERT INTO boletos").
		WithArgs("BOL-1", int64(10), int64(3), 2, 25.0, domain.EstadoBoletoReservado).
		WillReturnResult(sqlmock.NewResult(9, 1))
	mock.ExpectCommit()

	repo := BoletoRepository{DB: db}
	id, err := repo.Reservar(context.Background(), models.Boleto{
		Codigo: "BOL-1", ViajeID: 10, ClienteID: 3, Asiento: 2, Precio: 25, Estado: domain.EstadoBoletoReservado,
	})
	if err != nil {
		t.Fatalf("Reservar returned error: %v", err)
	}
	if id != 9 {
		t.Fatalf("expected id 9, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservarSeatTaken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	expectViajeLock(mock, 10, 40, domain.EstadoViajeProgramado)
	mock.ExpectQuery("SELECT asiento, id FROM boletos").
		WillReturnRows(sqlmock.NewRows([]string{"asiento", "id"}).AddRow(7, 5))
	mock.ExpectRollback()

	_, err = BoletoRepository{DB: db}.Reservar(context.Background(), models.Boleto{ViajeID: 10, ClienteID: 3, Asiento: 7})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestReservarRejectsSeatOutOfRangeAndClosedViaje(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	expectViajeLock(mock, 10, 12, domain.EstadoViajeProgramado)
	mock.ExpectRollback()

	_, err = BoletoRepository{DB: db}.Reservar(context.Background(), models.Boleto{ViajeID: 10, Asiento: 13})
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	mock.ExpectBegin()
	expectViajeLock(mock, 11, 12, domain.EstadoViajeCancelado)
	mock.ExpectRollback()

	_, err = BoletoRepository{DB: db}.Reservar(context.Background(), models.Boleto{ViajeID: 11, Asiento: 1})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for cancelled viaje, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateEstadoMissingBoleto(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE boletos SET estado").WithArgs("pagado", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = BoletoRepository{DB: db}.UpdateEstado(context.Background(), 99, "pagado")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
