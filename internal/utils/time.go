package utils

import (
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
	layoutHM       = "15:04"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// ValidDate reports whether s is a YYYY-MM-DD date.
func ValidDate(s string) bool {
	_, err := ParseDate(s)
	return err == nil
}

// ValidHour reports whether s is an HH:MM time of day. HH:MM:SS is accepted too.
func ValidHour(s string) bool {
	s = strings.TrimSpace(s)
	if len(s) == 8 {
		s = s[:5]
	}
	_, err := time.Parse(layoutHM, s)
	return err == nil
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	t = t.In(time.Local)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

// DaysBetween counts calendar days from a to b (negative when b is before a).
func DaysBetween(a, b time.Time) int {
	da := StartOfDay(a)
	db := StartOfDay(b)
	// noon-to-noon avoids DST shifts rounding a day away
	da = da.Add(12 * time.Hour)
	db = db.Add(12 * time.Hour)
	return int(db.Sub(da).Round(24*time.Hour) / (24 * time.Hour))
}

// DateOnly cuts "2025-01-02T..." or "2025-01-02 10:00" down to the date part.
func DateOnly(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 10 {
		return v[:10]
	}
	return v
}

// TimeHM cuts "08:30:00" down to "08:30".
func TimeHM(v string) string {
	v = strings.TrimSpace(v)
	if len(v) >= 5 {
		return v[:5]
	}
	return v
}
