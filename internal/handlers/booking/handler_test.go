package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service/mocks"
	"hotel/internal/handlers/booking"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *mocks.MockBooking) {
	t.Helper()

	svc := mocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, otelMocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func send(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestCreateBookingAcceptsRoomAlias(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req dto.BookingPayload) (int64, error) {
			assert.Equal(t, int64(5), req.Group)
			assert.Equal(t, "Jane Doe", req.GuestName)
			assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), req.CheckIn.UTC())

			return 1718000000000, nil
		})

	rec := send(router, http.MethodPost, "/bookings",
		`{"guestName":"Jane Doe","room":5,"checkIn":"2024-03-10T00:00:00Z","checkOut":"2024-03-12T00:00:00Z"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"data":{"id":1718000000000}}`, rec.Body.String())
}

func TestCreateBookingMissingGuest(t *testing.T) {
	router, _ := newRouter(t)

	rec := send(router, http.MethodPost, "/bookings",
		`{"group":5,"checkIn":"2024-03-10T00:00:00Z","checkOut":"2024-03-12T00:00:00Z"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingMalformedBody(t *testing.T) {
	router, _ := newRouter(t)

	rec := send(router, http.MethodPost, "/bookings", `{"guestName":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingConflict(t *testing.T) {
	svc := mocks.NewMockBooking(gomock.NewController(t))
	recorder := otelMocks.NewRecorder()
	handler := booking.New(svc, recorder)

	router := chi.NewRouter()
	handler.Router(router)

	conflict := failure.Conflict("room is already booked for these dates")
	svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(int64(0), conflict)

	rec := send(router, http.MethodPost, "/bookings",
		`{"guestName":"Jane","group":5,"checkIn":"2024-03-10T00:00:00Z","checkOut":"2024-03-12T00:00:00Z"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, []string{"handler.CreateBooking"}, recorder.Scopes())
	assert.Equal(t, []error{conflict}, recorder.Errors())
}

func TestGetBookingsFilters(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)
			assert.Equal(t, "check_in", params.SortBy)

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(5), args["group_id"])

			return dto.GetBookingsResponse{}, nil
		})

	rec := send(router, http.MethodGet, "/bookings?page=2&sort_by=check_in&group=5&guest_name=jane", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetBookingsInvalidGroup(t *testing.T) {
	router, _ := newRouter(t)

	rec := send(router, http.MethodGet, "/bookings?group=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetBookingByIDNotFound(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Get(gomock.Any(), int64(9)).Return(dto.BookingResponse{}, failure.NotFound("booking not found"))

	rec := send(router, http.MethodGet, "/bookings/9", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUpdateBookingInvalidID(t *testing.T) {
	router, _ := newRouter(t)

	rec := send(router, http.MethodPut, "/bookings/0", `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateBooking(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), int64(42)).Return(nil)

	rec := send(router, http.MethodPut, "/bookings/42",
		`{"guestName":"Jane","group":5,"checkIn":"2024-03-10T00:00:00Z","checkOut":"2024-03-12T00:00:00Z"}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"Booking updated successfully"}`, rec.Body.String())
}

func TestDeleteBooking(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Delete(gomock.Any(), int64(42)).Return(nil)

	rec := send(router, http.MethodDelete, "/bookings/42", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
