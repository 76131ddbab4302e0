package repositories

import (
	"database/sql"
	"errors"
	"testing"

	"transportes/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate("x", nil))
	assert.True(t, domain.IsNotFound(translate("ruta", sql.ErrNoRows)))
	assert.True(t, domain.IsConflict(translate("ruta", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})))
	assert.True(t, domain.IsConflict(translate("ruta", &mysql.MySQLError{Number: 1451})))
	assert.True(t, domain.IsConflict(translate("ruta", &mysql.MySQLError{Number: 1452})))

	err := translate("ruta", errors.New("connection refused"))
	assert.True(t, domain.IsInternal(err))
	assert.NotContains(t, err.Error(), "connection refused")
}

func TestQueryHelpers(t *testing.T) {
	clause, args := searchClause(" lima ", "origen", "destino")
	assert.Equal(t, "(origen LIKE ? OR destino LIKE ?)", clause)
	assert.Equal(t, []any{"%lima%", "%lima%"}, args)

	clause, args = searchClause("", "origen")
	assert.Empty(t, clause)
	assert.Nil(t, args)

	limit, largs := pageClause(domain.ListParams{Page: 2, Limit: 20}.Normalize())
	assert.Equal(t, " LIMIT ? OFFSET ?", limit)
	assert.Equal(t, []any{20, 20}, largs)

	limit, _ = pageClause(domain.ListParams{}.Normalize())
	assert.Empty(t, limit)

	assert.Equal(t, "", whereSQL(nil))
	assert.Equal(t, " WHERE a = ? AND b = ?", whereSQL([]string{"a = ?", "b = ?"}))
}
