package dashboard

import (
	"context"
	"net/http"

	"hotel/infras/otel"
	"hotel/internal/dashboard/modal"
	"hotel/internal/dashboard/shell"
	bookingDto "hotel/internal/domains/booking/model/dto"
	bookingService "hotel/internal/domains/booking/service"
	roomService "hotel/internal/domains/room/service"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/sequence"
	"hotel/shared/validator"
	"hotel/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	bookings bookingService.Booking
	rooms    roomService.Room
	otel     otel.Otel
	ids      sequence.Sequence
}

func New(bookings bookingService.Booking, rooms roomService.Room, otel otel.Otel, ids sequence.Sequence) Handler {
	return Handler{
		bookings: bookings,
		rooms:    rooms,
		otel:     otel,
		ids:      ids,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/dashboard", func(routerGroup chi.Router) {
		routerGroup.Get("/navigation", handler.GetNavigation)
		routerGroup.Get("/booking-form", handler.GetBookingForm)
		routerGroup.Post("/booking-form", handler.SubmitBookingForm)
	})
}

// GetNavigation returns the sidebar.
// @Summary Get dashboard navigation
// @Description Retrieve the sidebar sections with the item matching the given path marked active.
// @Tags Dashboard
// @Produce json
// @Param path query string false "Current dashboard path"
// @Success 200 {object} response.Data[[]shell.Section] "Sidebar"
// @Router /v1/dashboard/navigation [get]
// @Security BearerAuth
func (handler *Handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNavigation")
	defer scope.End()

	response.WithJSON(w, http.StatusOK, shell.Navigation(r.URL.Query().Get(constant.RequestParamPath)))
}

// GetBookingForm opens the booking modal and returns its initial state.
// @Summary Open the booking form
// @Description Open the booking modal, prefilled from the booking when an id is given.
// @Tags Dashboard
// @Produce json
// @Param id query integer false "Booking ID to edit"
// @Success 200 {object} response.Data[BookingFormResponse] "Booking form"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/booking-form [get]
// @Security BearerAuth
func (handler *Handler) GetBookingForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingForm")
	defer scope.End()

	var id int64

	if value := r.URL.Query().Get(constant.RequestParamID); value != "" {
		parsed, err := shared.ParseID(value)
		if err != nil {
			scope.TraceError(err)
			response.WithError(w, err)

			return
		}

		id = parsed
	}

	dialog, props, err := handler.open(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open booking form")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, describe(dialog, props))
}

// SubmitBookingForm replays field edits against the booking modal and submits it.
// @Summary Submit the booking form
// @Description Open the booking modal, apply the given field values and submit. Creates or replaces the booking.
// @Tags Dashboard
// @Accept json
// @Produce json
// @Param request body BookingFormRequest true "Form fields"
// @Success 200 {object} response.Message "Booking updated successfully"
// @Success 201 {object} response.Data[gDto.CreatedResponse] "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/dashboard/booking-form [post]
// @Security BearerAuth
func (handler *Handler) SubmitBookingForm(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SubmitBookingForm")
	defer scope.End()

	req := BookingFormRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	dialog, props, err := handler.open(ctx, req.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open booking form")

		response.WithError(w, err)

		return
	}

	for field, value := range req.Fields {
		if err := dialog.SetField(field, value); err != nil {
			scope.TraceError(err)
			response.WithError(w, failure.BadRequest(err))

			return
		}
	}

	var payload *bookingDto.BookingPayload

	props.OnSave = func(p bookingDto.BookingPayload) { payload = &p }
	dialog.Update(props)

	if err := dialog.Submit(); err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if props.Booking != nil {
		if err := handler.bookings.Update(ctx, *payload, props.Booking.ID); err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Msg("failed to update booking")

			response.WithError(w, err)

			return
		}

		response.WithMessage(w, http.StatusOK, "Booking updated successfully")

		return
	}

	id, err := handler.bookings.Create(ctx, *payload)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusCreated, gDto.CreatedResponse{ID: id})
}

// open builds an open modal on a fresh stack, loaded with the booking when id is non-zero.
func (handler *Handler) open(ctx context.Context, id int64) (*modal.Modal, modal.Props, error) {
	options, err := handler.rooms.Options(ctx)
	if err != nil {
		return nil, modal.Props{}, err //nolint:wrapcheck
	}

	props := modal.Props{Open: true, Groups: options}

	if id != 0 {
		booking, err := handler.bookings.Get(ctx, id)
		if err != nil {
			return nil, modal.Props{}, err //nolint:wrapcheck
		}

		props.Booking = &booking
	}

	dialog := modal.New(modal.NewStack(), handler.ids)
	dialog.Update(props)

	return dialog, props, nil
}

func describe(dialog *modal.Modal, props modal.Props) BookingFormResponse {
	res := BookingFormResponse{
		Mode:    modeCreate,
		State:   dialog.State().String(),
		Options: props.Groups,
	}

	if props.Booking != nil {
		res.Mode = modeEdit
	}

	if layer, ok := dialog.Layer(); ok {
		res.Layer = layer
	}

	if f, ok := dialog.Form(); ok {
		res.Draft = f.Draft()
	}

	return res
}
