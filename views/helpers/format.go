package helpers

import (
	"database/sql"
	"time"
)

// FormatDate formats a time.Time as "Jan 2, 2006"
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// FormatNullTime formats a sql.NullTime, returning default value if null
func FormatNullTime(t sql.NullTime, layout string, defaultVal string) string {
	if t.Valid {
		return t.Time.Format(layout)
	}
	return defaultVal
}

// FormatDateTime formats a time.Time as "Jan 2, 2006 3:04 PM"
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006 3:04 PM")
}

// Truncate shortens s to at most n runes, adding an ellipsis when cut
func Truncate(s string, n int) string {
	runes := []rune(s)
	if n <= 0 || len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
