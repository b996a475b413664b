package model

import (
	"time"

	"hotel/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID        = "id"
	FieldGuestName = "guest_name"
	FieldGroupID   = "group_id"
	FieldCheckIn   = "check_in"
	FieldCheckOut  = "check_out"
)

// Booking reserves a room (group) for a guest between two start-of-day timestamps.
type Booking struct {
	ID        int64     `db:"id"`
	GuestName string    `db:"guest_name"`
	GroupID   int64     `db:"group_id"`
	CheckIn   time.Time `db:"check_in"`
	CheckOut  time.Time `db:"check_out"`
	model.Metadata
}
