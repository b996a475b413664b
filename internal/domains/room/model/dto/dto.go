package dto

import (
	"mime/multipart"
	"time"

	"hotel/internal/domains/room/model"
	"hotel/shared"
	gDto "hotel/shared/dto"
	gModel "hotel/shared/model"
)

type CreateRoomRequest struct {
	Title       string                `json:"title"       validate:"required,notblank,max=100"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	Price       float64               `json:"price"       validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"`
}

func (c *CreateRoomRequest) ToModel(id int64, user, imageURL string, at time.Time) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          id,
		Title:       c.Title,
		Description: c.Description,
		Capacity:    c.Capacity,
		Price:       c.Price,
		Image:       imageURL,
		Active:      active,
		Metadata:    gModel.NewMetadata(user, at),
	}
}

type UpdateRoomRequest struct {
	Title       string                `db:"title"       json:"title"       validate:"omitempty,notblank,max=100"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=1000"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	Price       *float64              `db:"price"       json:"price"       validate:"omitempty,min=0"`
	Image       *multipart.FileHeader `db:"-"           json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg image/webp,maxfilesize=2"`
	ImageFile   multipart.File        `db:"-"           json:"-"`
	Active      *bool                 `db:"active"      json:"active"`
}

// Empty reports whether the request changes nothing.
func (u *UpdateRoomRequest) Empty() bool {
	return u.Title == "" && u.Description == "" && u.Capacity == nil && u.Price == nil && u.Image == nil && u.Active == nil
}

type RoomResponse struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Capacity    int     `json:"capacity"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Active      bool    `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Title = model.Title
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.Price = model.Price
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}

// Option is a selectable room in the booking form.
type Option struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

func OptionsFromModels(models []model.Room) []Option {
	options := make([]Option, len(models))
	for i, mod := range models {
		options[i] = Option{ID: mod.ID, Title: mod.Title}
	}

	return options
}
