// Package form holds the editable state behind the booking create/edit dialog
// and turns it into a BookingPayload.
package form

import (
	"errors"
	"fmt"
	"strings"

	"hotel/internal/domains/booking/model/dto"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared"
	"hotel/shared/calendar"
	"hotel/shared/failure"
	"hotel/shared/sequence"
	"hotel/shared/validator"
)

const (
	FieldGuestName = "guestName"
	FieldGroup     = "group"
	FieldCheckIn   = "checkIn"
	FieldCheckOut  = "checkOut"
)

var ErrUnknownField = errors.New("unknown form field")

// Draft is the form as the user sees it: every field is text.
type Draft struct {
	GuestName string `json:"guestName" validate:"notblank"`
	Group     string `json:"group"     validate:"required,numeric"`
	CheckIn   string `json:"checkIn"   validate:"required,datetime=2006-01-02"`
	CheckOut  string `json:"checkOut"  validate:"required,datetime=2006-01-02"`
}

type Form struct {
	draft   Draft
	id      int64
	options []roomDto.Option
	ids     sequence.Sequence
}

// New returns an empty create form offering the given rooms.
func New(options []roomDto.Option, ids sequence.Sequence) *Form {
	return &Form{
		options: options,
		ids:     ids,
	}
}

// Load prefills the draft from an existing booking, or clears it when existing is nil.
func (f *Form) Load(existing *dto.BookingResponse) {
	if existing == nil {
		f.draft = Draft{}
		f.id = 0

		return
	}

	f.id = existing.ID
	f.draft = Draft{
		GuestName: existing.GuestName,
		CheckIn:   calendar.FormatTimestamp(existing.CheckIn),
		CheckOut:  calendar.FormatTimestamp(existing.CheckOut),
	}

	if existing.Group != 0 {
		f.draft.Group = fmt.Sprint(existing.Group)
	}
}

func (f *Form) Draft() Draft {
	return f.draft
}

func (f *Form) Options() []roomDto.Option {
	return f.options
}

// Editing reports whether the form was loaded from an existing booking.
func (f *Form) Editing() bool {
	return f.id != 0
}

func (f *Form) Set(field, value string) error {
	switch field {
	case FieldGuestName:
		f.draft.GuestName = value
	case FieldGroup:
		f.draft.Group = value
	case FieldCheckIn:
		f.draft.CheckIn = value
	case FieldCheckOut:
		f.draft.CheckOut = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, field)
	}

	return nil
}

// Validate gates submission on required fields only. Date ordering is left to the booking service.
func (f *Form) Validate() error {
	if err := validator.ValidateStruct(&f.draft); err != nil {
		return err //nolint:wrapcheck
	}

	group, err := shared.ConvertStringToInt64(f.draft.Group)
	if err != nil {
		return failure.BadRequest(err) //nolint:wrapcheck
	}

	for _, option := range f.options {
		if option.ID == group {
			return nil
		}
	}

	return failure.BadRequestFromString("Group must be one of the offered rooms") //nolint:wrapcheck
}

// Payload validates the draft and builds the outbound booking. An edit keeps its id,
// a create gets a new one from the sequence.
func (f *Form) Payload() (dto.BookingPayload, error) {
	if err := f.Validate(); err != nil {
		return dto.BookingPayload{}, err
	}

	group, err := shared.ConvertStringToInt64(f.draft.Group)
	if err != nil {
		return dto.BookingPayload{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkIn, err := calendar.ParseDate(f.draft.CheckIn)
	if err != nil {
		return dto.BookingPayload{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	checkOut, err := calendar.ParseDate(f.draft.CheckOut)
	if err != nil {
		return dto.BookingPayload{}, failure.BadRequest(err) //nolint:wrapcheck
	}

	id := f.id
	if id == 0 {
		id = f.ids.Next()
	}

	return dto.BookingPayload{
		ID:        id,
		GuestName: strings.TrimSpace(f.draft.GuestName),
		Group:     group,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
	}, nil
}
