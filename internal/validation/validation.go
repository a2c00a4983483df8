// Package validation holds the imperative input checks applied before a
// write reaches storage. Checks accumulate into FieldErrors so a response
// can name every bad field at once.
package validation

import (
	"sort"
	"strings"
	"time"

	"github.com/elevita-health/elevita-backend/internal/apperr"
)

// DayFormat is the wire format for date-only query params.
const DayFormat = "2006-01-02"

// FieldErrors maps a field name to what is wrong with it. It unwraps to
// apperr.ErrInvalidArgument so handlers can map it to a 400 with errors.Is.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("invalid input:")
	for _, k := range keys {
		b.WriteString(" ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(fe[k])
		b.WriteString(";")
	}
	return strings.TrimSuffix(b.String(), ";")
}

func (fe FieldErrors) Unwrap() error { return apperr.ErrInvalidArgument }

func (fe FieldErrors) require(field, value string) {
	if strings.TrimSpace(value) == "" {
		fe[field] = "is required"
	}
}

func (fe FieldErrors) requireTime(field string, t time.Time) {
	if t.IsZero() {
		fe[field] = "is required"
	}
}

func (fe FieldErrors) oneOf(field, value string, allowed ...string) {
	if value == "" {
		return
	}
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	fe[field] = "must be one of " + strings.Join(allowed, ", ")
}

// err returns nil when no check failed, so callers can end with
// `return fe.err()`.
func (fe FieldErrors) err() error {
	if len(fe) == 0 {
		return nil
	}
	return fe
}

// ParseDay parses a date-only param and returns the half-open day window
// [start, end) in UTC.
func ParseDay(value string) (time.Time, time.Time, error) {
	day, err := time.Parse(DayFormat, value)
	if err != nil {
		return time.Time{}, time.Time{}, FieldErrors{"date": "must be formatted " + DayFormat}
	}
	start := day.UTC()
	return start, start.Add(24 * time.Hour), nil
}
