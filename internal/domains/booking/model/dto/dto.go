package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"hotel/internal/domains/booking/model"
	"hotel/shared"
	"hotel/shared/calendar"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

const (
	EventCreated = "booking.created"
	EventUpdated = "booking.updated"
	EventDeleted = "booking.deleted"
)

// BookingPayload is the body of create and full-replace requests.
type BookingPayload struct {
	ID        int64     `json:"id"`
	GuestName string    `json:"guestName" validate:"required,notblank,max=100"`
	Group     int64     `json:"group"     validate:"required,min=1"`
	CheckIn   time.Time `json:"checkIn"   validate:"required"`
	CheckOut  time.Time `json:"checkOut"  validate:"required"`
}

// UnmarshalJSON accepts "room" as the group field when "group" is absent.
func (p *BookingPayload) UnmarshalJSON(data []byte) error {
	type alias BookingPayload

	var raw struct {
		alias
		Group *int64 `json:"group"`
		Room  *int64 `json:"room"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to decode booking payload: %w", err)
	}

	*p = BookingPayload(raw.alias)

	switch {
	case raw.Group != nil:
		p.Group = *raw.Group
	case raw.Room != nil:
		p.Group = *raw.Room
	}

	return nil
}

// Normalize trims the guest name and truncates both dates to midnight UTC.
func (p *BookingPayload) Normalize() {
	p.GuestName = strings.TrimSpace(p.GuestName)
	p.CheckIn = calendar.StartOfDay(p.CheckIn)
	p.CheckOut = calendar.StartOfDay(p.CheckOut)
}

func (p *BookingPayload) ToModel(id int64, user string, at time.Time) model.Booking {
	return model.Booking{
		ID:        id,
		GuestName: p.GuestName,
		GroupID:   p.Group,
		CheckIn:   p.CheckIn,
		CheckOut:  p.CheckOut,
		Metadata:  gModel.NewMetadata(user, at),
	}
}

// ToFields returns every mutable column; an edit replaces the whole booking.
func (p *BookingPayload) ToFields(user string, at time.Time) map[string]any {
	return map[string]any{
		model.FieldGuestName:     p.GuestName,
		model.FieldGroupID:       p.Group,
		model.FieldCheckIn:       p.CheckIn,
		model.FieldCheckOut:      p.CheckOut,
		constant.FieldModifiedAt: at,
		constant.FieldModifiedBy: user,
	}
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	GuestName string `json:"guestName"`
	Group     int64  `json:"group"`
	CheckIn   string `json:"checkIn"`
	CheckOut  string `json:"checkOut"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.GuestName = model.GuestName
	r.Group = model.GroupID
	r.CheckIn = model.CheckIn.UTC().Format(time.RFC3339)
	r.CheckOut = model.CheckOut.UTC().Format(time.RFC3339)
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// Event is published to Kafka after every booking write.
type Event struct {
	Type       string          `json:"type"`
	Booking    BookingResponse `json:"booking"`
	OccurredAt string          `json:"occurred_at"`
}
