package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	intconfig "transportes/internal/config"
	"transportes/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// MySQL error numbers translated into domain errors.
const (
	errDuplicate      = 1062
	errRowReferenced  = 1451
	errNoReferenced   = 1452
	errRowReferenced2 = 1217
	errNoReferenced2  = 1216
)

func pool(db *sql.DB) *sql.DB {
	if db != nil {
		return db
	}
	return intconfig.DB
}

// translate maps driver errors onto domain errors so handlers can pick a status code.
func translate(resource string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NotFoundError{Resource: resource, Err: err}
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errDuplicate:
			return domain.ConflictError{Resource: resource, Msg: "ya existe un registro con esos datos", Err: err}
		case errRowReferenced, errRowReferenced2:
			return domain.ConflictError{Resource: resource, Msg: "tiene registros asociados", Err: err}
		case errNoReferenced, errNoReferenced2:
			return domain.ConflictError{Resource: resource, Msg: "referencia inexistente", Err: err}
		}
	}
	return domain.InternalError{Msg: "error de base de datos", Err: err}
}

// execOne runs a write that must touch exactly one row.
func execOne(ctx context.Context, q interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, resource, query string, args ...any) error {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return translate(resource, err)
	}
	affected, _ := res.RowsAffected()
	if affected == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

// insert runs an INSERT and returns the new id.
func insert(ctx context.Context, q interface {
	ExecContext(context.Context, string, ...any) (sql.Result, error)
}, resource, query string, args ...any) (int64, error) {
	res, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, translate(resource, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, translate(resource, err)
	}
	return id, nil
}

// searchClause builds "(a LIKE ? OR b LIKE ?)" for the q filter.
func searchClause(q string, cols ...string) (string, []any) {
	q = strings.TrimSpace(q)
	if q == "" || len(cols) == 0 {
		return "", nil
	}
	like := "%" + q + "%"
	parts := make([]string, len(cols))
	args := make([]any, len(cols))
	for i, c := range cols {
		parts[i] = c + " LIKE ?"
		args[i] = like
	}
	return "(" + strings.Join(parts, " OR ") + ")", args
}

// pageClause appends LIMIT/OFFSET when paging was requested.
func pageClause(p domain.ListParams) (string, []any) {
	if !p.Paged() {
		return "", nil
	}
	return " LIMIT ? OFFSET ?", []any{p.Limit, p.Offset()}
}

func whereSQL(conds []string) string {
	if len(conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(conds, " AND ")
}
