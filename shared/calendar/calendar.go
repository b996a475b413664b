// Package calendar converts between calendar dates shown in forms ("YYYY-MM-DD")
// and the start-of-day timestamps stored for bookings.
//
// All conversions run in UTC, so FormatDate(ParseDate(d)) == d for every valid d.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar-date layout used by form fields.
const DateLayout = time.DateOnly

var ErrInvalidDate = errors.New("invalid date")

// FormatDate renders t as a calendar date. Nil or zero yields "".
func FormatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.UTC().Format(DateLayout)
}

// FormatTimestamp renders an RFC3339 timestamp or a plain date as a calendar date.
// Offsets are converted to UTC first, so "2024-03-10T00:00:00+07:00" yields "2024-03-09".
// Invalid or empty input yields "".
func FormatTimestamp(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	for _, layout := range []string{time.RFC3339Nano, DateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return FormatDate(&t)
		}
	}

	return ""
}

// ParseDate turns a calendar date into the timestamp at its start of day in UTC.
func ParseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w %q: %w", ErrInvalidDate, value, err)
	}

	return t.UTC(), nil
}

// StartOfDay truncates t to midnight UTC of its UTC calendar day.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.UTC().Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
