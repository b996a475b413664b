package dashboard

import (
	"hotel/internal/dashboard/modal"
	"hotel/internal/domains/booking/form"
	roomDto "hotel/internal/domains/room/model/dto"
)

const (
	modeCreate = "create"
	modeEdit   = "edit"
)

// BookingFormRequest replays a user's edits against the booking modal.
// A zero ID opens the modal in create mode.
type BookingFormRequest struct {
	ID     int64             `json:"id"     validate:"min=0"`
	Fields map[string]string `json:"fields" validate:"required"`
}

type BookingFormResponse struct {
	Mode    string           `json:"mode"`
	State   string           `json:"state"`
	Layer   modal.Layer      `json:"layer"`
	Draft   form.Draft       `json:"draft"`
	Options []roomDto.Option `json:"options"`
}
