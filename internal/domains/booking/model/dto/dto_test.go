package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/shared/constant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingPayloadGroupField(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "group", body: `{"group": 3}`, want: 3},
		{name: "room fallback", body: `{"room": 5}`, want: 5},
		{name: "group wins over room", body: `{"group": 3, "room": 5}`, want: 3},
		{name: "neither", body: `{}`, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p dto.BookingPayload

			require.NoError(t, json.Unmarshal([]byte(tt.body), &p))
			assert.Equal(t, tt.want, p.Group)
		})
	}
}

func TestBookingPayloadDecodesAllFields(t *testing.T) {
	var p dto.BookingPayload

	body := `{"id": 42, "guestName": "Jane Doe", "room": 3, "checkIn": "2024-03-10T00:00:00Z", "checkOut": "2024-03-12T00:00:00Z"}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, "Jane Doe", p.GuestName)
	assert.Equal(t, int64(3), p.Group)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), p.CheckIn)
}

func TestBookingPayloadRejectsMalformedJSON(t *testing.T) {
	var p dto.BookingPayload

	assert.Error(t, json.Unmarshal([]byte(`{"group": "three"}`), &p))
}

func TestNormalize(t *testing.T) {
	p := dto.BookingPayload{
		GuestName: "  Jane Doe ",
		CheckIn:   time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 3, 12, 9, 0, 0, 0, time.FixedZone("WIB", 7*60*60)),
	}

	p.Normalize()

	assert.Equal(t, "Jane Doe", p.GuestName)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), p.CheckIn)
	assert.Equal(t, time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC), p.CheckOut)
}

func TestToFields(t *testing.T) {
	at := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	p := dto.BookingPayload{GuestName: "Jane Doe", Group: 3}

	fields := p.ToFields("admin", at)

	assert.Len(t, fields, 6)
	assert.Equal(t, int64(3), fields[model.FieldGroupID])
	assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
	assert.Equal(t, at, fields[constant.FieldModifiedAt])
}
