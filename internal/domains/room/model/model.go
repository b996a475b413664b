package model

import "hotel/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldPrice       = "price"
	FieldImage       = "image"
	FieldActive      = "active"
)

// Room is the bookable unit the dashboard calls a group.
type Room struct {
	ID          int64   `db:"id"`
	Title       string  `db:"title"`
	Description string  `db:"description"`
	Capacity    int     `db:"capacity"`
	Price       float64 `db:"price"`
	Image       string  `db:"image"`
	Active      bool    `db:"active"`
	model.Metadata
}
