package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	kafkaMocks "hotel/infras/kafka/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/booking/mocks"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/service"
	roomMocks "hotel/internal/domains/room/mocks"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bookingTopic       = "hotel.bookings"
	assignedID   int64 = 101
)

type fixture struct {
	svc       service.Booking
	repo      *mocks.MockBooking
	rooms     *roomMocks.MockRoom
	cache     *cacheMocks.MockRedisCache
	kafka     *kafkaMocks.MockClient
	published chan kafka.Message
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:      mocks.NewMockBooking(ctrl),
		rooms:     roomMocks.NewMockRoom(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
		kafka:     kafkaMocks.NewMockClient(ctrl),
		published: make(chan kafka.Message, 1),
	}

	cfg := &config.Config{}
	cfg.Kafka.BookingTopic = bookingTopic

	f.svc = service.New(f.repo, f.rooms, cfg, f.cache, otelMocks.NewOtel(), f.kafka)

	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.kafka.EXPECT().SendMessages(gomock.Any(), bookingTopic, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
			for _, message := range messages {
				f.published <- message
			}

			return nil
		}).AnyTimes()

	return f
}

func (f fixture) event(t *testing.T) dto.Event {
	t.Helper()

	select {
	case message := <-f.published:
		event, ok := message.Value.(dto.Event)
		require.True(t, ok)

		return event
	case <-time.After(time.Second):
		require.FailNow(t, "booking event was not published")
	}

	return dto.Event{}
}

func payload() dto.BookingPayload {
	return dto.BookingPayload{
		GuestName: "  Jane Doe  ",
		Group:     3,
		CheckIn:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func withUser() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, "admin")
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	req := payload()
	req.ID = 42

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, booking model.Booking) (int64, error) {
		assert.Zero(t, booking.ID)
		assert.Equal(t, "Jane Doe", booking.GuestName)
		assert.Equal(t, int64(3), booking.GroupID)
		assert.Equal(t, "admin", booking.CreatedBy)

		return assignedID, nil
	})

	id, err := f.svc.Create(withUser(), req)
	require.NoError(t, err)
	assert.Equal(t, assignedID, id)

	event := f.event(t)
	assert.Equal(t, dto.EventCreated, event.Type)
	assert.Equal(t, assignedID, event.Booking.ID)
	assert.Equal(t, "2024-03-10T00:00:00Z", event.Booking.CheckIn)
}

func TestCreateRejectsReversedDates(t *testing.T) {
	f := newFixture(t)

	req := payload()
	req.CheckOut = req.CheckIn

	_, err := f.svc.Create(withUser(), req)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestCreateUnknownRoom(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

	_, err := f.svc.Create(withUser(), payload())
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	assert.ErrorContains(t, err, "room does not exist")
}

func TestCreateOverlap(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			where, args := filter.GetWhereClause()
			assert.Equal(t, "(bookings.group_id = :group_id AND bookings.check_in < :new_check_out AND bookings.check_out > :new_check_in)", where)
			assert.Equal(t, int64(3), args["group_id"])

			return true, nil
		})

	_, err := f.svc.Create(withUser(), payload())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCreateConcurrentOverlap(t *testing.T) {
	f := newFixture(t)

	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
	f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), failure.Conflict("booking overlaps an existing booking"))

	_, err := f.svc.Create(withUser(), payload())
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))

	select {
	case message := <-f.published:
		t.Fatalf("unexpected event published: %s", message.Key)
	default:
	}
}

func TestGet(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{
		ID:        42,
		GuestName: "Jane Doe",
		GroupID:   3,
		CheckIn:   time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC),
	}, nil)

	res, err := f.svc.Get(context.Background(), 42)
	require.NoError(t, err)

	assert.Equal(t, int64(42), res.ID)
	assert.Equal(t, int64(3), res.Group)
	assert.Equal(t, "2024-03-12T00:00:00Z", res.CheckOut)
}

func TestGetNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	_, err := f.svc.Get(context.Background(), 7)
	assert.True(t, failure.IsNotFound(err))
}

func TestGetAll(t *testing.T) {
	f := newFixture(t)
	params := gDto.QueryParams{Page: 1, Limit: 10}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Booking{{ID: 42}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Len(t, res.Bookings, 1)
	assert.Equal(t, 1, res.TotalPage)
}

func TestUpdateReplacesEveryField(t *testing.T) {
	f := newFixture(t)

	req := payload()
	req.ID = 99

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 42, GroupID: 1}, nil)
	f.rooms.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	f.repo.EXPECT().Exist(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (bool, error) {
			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(42), args["exclude_id"])

			return false, nil
		})
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
			assert.Equal(t, "Jane Doe", fields[model.FieldGuestName])
			assert.Equal(t, int64(3), fields[model.FieldGroupID])
			assert.Contains(t, fields, model.FieldCheckIn)
			assert.Contains(t, fields, model.FieldCheckOut)

			_, args := filter.GetWhereClause()
			assert.Equal(t, int64(42), args[model.FieldID])

			return nil
		})

	require.NoError(t, f.svc.Update(withUser(), req, 42))

	event := f.event(t)
	assert.Equal(t, dto.EventUpdated, event.Type)
	assert.Equal(t, int64(42), event.Booking.ID)
}

func TestUpdateNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{}, nil)

	err := f.svc.Update(withUser(), payload(), 42)
	assert.True(t, failure.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 42, GuestName: "Jane Doe"}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.svc.Delete(context.Background(), 42))

	event := f.event(t)
	assert.Equal(t, dto.EventDeleted, event.Type)
	assert.Equal(t, "Jane Doe", event.Booking.GuestName)
}

func TestDeleteStorageFailure(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Booking{ID: 42}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	err := f.svc.Delete(context.Background(), 42)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
}
