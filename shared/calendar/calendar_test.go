package calendar_test

import (
	"testing"
	"time"

	"hotel/shared/calendar"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatDate(t *testing.T) {
	checkIn := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	jakarta := time.FixedZone("WIB", 7*60*60)
	lateEvening := time.Date(2024, 3, 10, 23, 30, 0, 0, time.UTC)
	zero := time.Time{}

	tests := []struct {
		name     string
		input    *time.Time
		expected string
	}{
		{name: "start of day", input: &checkIn, expected: "2024-03-10"},
		{name: "late evening stays on the same utc day", input: &lateEvening, expected: "2024-03-10"},
		{name: "offset time is rendered in utc", input: ptr(time.Date(2024, 3, 11, 6, 0, 0, 0, jakarta)), expected: "2024-03-10"},
		{name: "nil", input: nil, expected: ""},
		{name: "zero", input: &zero, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendar.FormatDate(tt.input))
		})
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "2024-03-10T00:00:00Z", expected: "2024-03-10"},
		{input: "2024-03-10T00:00:00.000Z", expected: "2024-03-10"},
		{input: "2024-03-10T00:00:00+07:00", expected: "2024-03-09"},
		{input: "2024-03-10T20:00:00-05:00", expected: "2024-03-11"},
		{input: "2024-03-10", expected: "2024-03-10"},
		{input: "  2024-03-10  ", expected: "2024-03-10"},
		{input: "", expected: ""},
		{input: "not a date", expected: ""},
		{input: "2024-13-40", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, calendar.FormatTimestamp(tt.input))
		})
	}
}

func TestParseDate(t *testing.T) {
	parsed, err := calendar.ParseDate("2024-03-10")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), parsed)
	assert.Equal(t, time.UTC, parsed.Location())

	_, err = calendar.ParseDate("")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)

	_, err = calendar.ParseDate("10/03/2024")
	assert.ErrorIs(t, err, calendar.ErrInvalidDate)
}

func TestRoundTrip(t *testing.T) {
	for _, date := range []string{"2024-01-01", "2024-02-29", "2024-03-10", "2024-12-31", "1999-06-15"} {
		parsed, err := calendar.ParseDate(date)
		require.NoError(t, err)

		assert.Equal(t, date, calendar.FormatDate(&parsed))
		assert.Equal(t, date, calendar.FormatTimestamp(parsed.Format(time.RFC3339)))
	}
}

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, 3, 10, 17, 45, 12, 99, time.UTC)

	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), calendar.StartOfDay(in))
}

func ptr[T any](v T) *T {
	return &v
}
