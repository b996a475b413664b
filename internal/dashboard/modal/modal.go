// Package modal drives the booking dialog without a renderer: it owns the
// open/closed state, the form behind it and its layer on the modal stack.
package modal

import (
	"errors"

	"hotel/internal/domains/booking/form"
	"hotel/internal/domains/booking/model/dto"
	roomDto "hotel/internal/domains/room/model/dto"
	"hotel/shared/sequence"
)

type State int

const (
	Closed State = iota
	Open
)

func (s State) String() string {
	if s == Open {
		return "open"
	}

	return "closed"
}

var ErrClosed = errors.New("booking modal is closed")

type Props struct {
	Open    bool
	OnClose func()
	OnSave  func(dto.BookingPayload)
	Booking *dto.BookingResponse
	Groups  []roomDto.Option
}

type Modal struct {
	stack *Stack
	ids   sequence.Sequence
	props Props
	state State
	form  *form.Form
	layer Layer
}

func New(stack *Stack, ids sequence.Sequence) *Modal {
	return &Modal{
		stack: stack,
		ids:   ids,
	}
}

// Update applies new props. Opening loads the form from props.Booking and pushes a layer.
// Binding a different booking while open reloads the draft in place.
// Closing from the outside pops the layer without calling OnClose.
func (m *Modal) Update(props Props) {
	previous := m.props.Booking
	m.props = props

	switch {
	case props.Open && m.state == Closed:
		m.form = form.New(props.Groups, m.ids)
		m.form.Load(props.Booking)
		m.layer = m.stack.Push()
		m.state = Open
	case props.Open && !sameBooking(previous, props.Booking):
		m.form.Load(props.Booking)
	case !props.Open && m.state == Open:
		m.teardown()
	}
}

func sameBooking(a, b *dto.BookingResponse) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.ID == b.ID
}

func (m *Modal) State() State {
	return m.state
}

// Form returns the form while the modal is open.
func (m *Modal) Form() (*form.Form, bool) {
	if m.state == Closed {
		return nil, false
	}

	return m.form, true
}

func (m *Modal) Layer() (Layer, bool) {
	if m.state == Closed {
		return Layer{}, false
	}

	return m.layer, true
}

func (m *Modal) SetField(field, value string) error {
	if m.state == Closed {
		return ErrClosed
	}

	return m.form.Set(field, value) //nolint:wrapcheck
}

// Submit hands a valid payload to OnSave and closes. An invalid draft keeps the modal open.
func (m *Modal) Submit() error {
	if m.state == Closed {
		return ErrClosed
	}

	payload, err := m.form.Payload()
	if err != nil {
		return err //nolint:wrapcheck
	}

	if m.props.OnSave != nil {
		m.props.OnSave(payload)
	}

	m.close()

	return nil
}

func (m *Modal) Cancel() {
	if m.state == Closed {
		return
	}

	m.close()
}

func (m *Modal) close() {
	m.teardown()

	if m.props.OnClose != nil {
		m.props.OnClose()
	}
}

func (m *Modal) teardown() {
	m.stack.Remove(m.layer.ID)
	m.layer = Layer{}
	m.form = nil
	m.state = Closed
}
