package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	a := time.Date(2025, 3, 10, 23, 59, 0, 0, time.Local)
	b := time.Date(2025, 3, 11, 0, 1, 0, 0, time.Local)
	assert.Equal(t, 1, DaysBetween(a, b))
	assert.Equal(t, -1, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a.Add(-time.Hour)))

	// across a month boundary
	c := time.Date(2025, 2, 27, 8, 0, 0, 0, time.Local)
	d := time.Date(2025, 3, 2, 8, 0, 0, 0, time.Local)
	assert.Equal(t, 3, DaysBetween(c, d))
}

func TestDateAndHourHelpers(t *testing.T) {
	assert.True(t, ValidDate("2025-12-31"))
	assert.False(t, ValidDate("2025-13-01"))
	assert.False(t, ValidDate("31/12/2025"))

	assert.True(t, ValidHour("08:30"))
	assert.True(t, ValidHour("08:30:00"))
	assert.False(t, ValidHour("25:00"))

	assert.Equal(t, "2025-01-02", DateOnly("2025-01-02T10:00:00Z"))
	assert.Equal(t, "08:30", TimeHM("08:30:00"))

	tm, err := ParseDate("2025-01-02")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-02", FormatDate(tm))
	assert.Equal(t, "2025-01-02 00:00:00", FormatDateTime(StartOfDay(tm.Add(5*time.Hour))))
}

func TestMoney(t *testing.T) {
	assert.Equal(t, 10.01, Round2(10.006))
	assert.Equal(t, "12.50", FormatMoney(12.5))
	assert.Equal(t, "$ 1.234,50", FormatMonto(1234.5))
	assert.Equal(t, "$ 0,99", FormatMonto(0.99))
	assert.Equal(t, "-$ 1.000.000,00", FormatMonto(-1_000_000))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Juan Perez", NormalizeSpace("  Juan   Perez "))

	id, ok := ParseID(" 42 ")
	assert.True(t, ok)
	assert.Equal(t, int64(42), id)
	_, ok = ParseID("-1")
	assert.False(t, ok)
	_, ok = ParseID("abc")
	assert.False(t, ok)

	assert.Equal(t, "NA", SafeFilenamePart(" "))
	assert.Equal(t, "Juan_Perez_A_B", SafeFilenamePart("Juan Perez A/B"))
}
