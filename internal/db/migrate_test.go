package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatementsCoverSchema(t *testing.T) {
	stmts := Statements()
	if len(stmts) == 0 {
		t.Fatalf("no statements parsed from schema")
	}
	want := []string{"personas", "clientes", "rutas", "unidades", "mantenimientos", "viajes",
		"boletos", "encomiendas", "productos", "ventas", "venta_detalles", "pagos",
		"permisos", "roles", "roles_permisos", "usuarios"}
	joined := strings.Join(stmts, "\n")
	for _, table := range want {
		if !strings.Contains(joined, "CREATE TABLE IF NOT EXISTS "+table+" ") {
			t.Errorf("schema missing table %s", table)
		}
	}
	for _, s := range stmts {
		if strings.TrimSpace(s) == "" {
			t.Fatalf("empty statement in schema")
		}
	}
}

func TestApplyRunsEveryStatement(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	for _, stmt := range Statements() {
		mock.ExpectExec(stmt).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := Apply(context.Background(), db); err != nil {
		t.Fatalf("Apply returned error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestApplyStopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	first := Statements()[0]
	mock.ExpectExec(first).WillReturnError(errors.New("boom"))

	err = Apply(context.Background(), db)
	if err == nil || !strings.Contains(err.Error(), "schema statement 1") {
		t.Fatalf("expected statement 1 error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	want := errors.New("fallo")
	got := WithTx(context.Background(), db, func(tx *sql.Tx) error { return want })
	if !errors.Is(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestWithTxRollsBackOnPanic(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectRollback()

	func() {
		defer func() {
			if p := recover(); p != "kaboom" {
				t.Fatalf("expected panic to propagate, got %v", p)
			}
		}()
		_ = WithTx(context.Background(), db, func(tx *sql.Tx) error { panic("kaboom") })
	}()
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
