package handlejson

import (
	"regexp"
	"time"
)

// isoDatePattern recognizes ISO-8601-shaped string leaves: date, "T",
// time, optional fractional seconds up to 3 digits, optional zone offset
// or "Z".
var isoDatePattern = regexp.MustCompile(
	`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d{1,3})?(?:Z|[+-]\d{2}:\d{2})?$`)

// looksLikeISODate reports whether s has the ISO-8601 date-time shape.
func looksLikeISODate(s string) bool { return isoDatePattern.MatchString(s) }

// parseISODate converts an ISO-8601-shaped string to a time.Time. Zoned
// inputs parse as RFC3339; zoneless inputs resolve in local time. The time
// package accepts a fractional-second field on parse even when the layout
// omits it.
func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02T15:04:05", s, time.Local)
}

// formatISOMillis renders t as UTC RFC3339 with exactly three fractional
// digits, the canonical interchange form for DateISO output.
func formatISOMillis(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z07:00")
}
