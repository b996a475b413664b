package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel"
	"hotel/internal/domains/booking/model"
	"hotel/internal/domains/booking/model/dto"
	"hotel/internal/domains/booking/repository"
	roomModel "hotel/internal/domains/room/model"
	roomRepo "hotel/internal/domains/room/repository"
	"hotel/shared"
	"hotel/shared/cache"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"
	cacheCountBooking  = "booking:count"
)

type Booking interface {
	Create(ctx context.Context, req dto.BookingPayload) (int64, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id int64) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.BookingPayload, id int64) error
	Delete(ctx context.Context, id int64) error
}

type serviceImpl struct {
	repo     repository.Booking
	roomRepo roomRepo.Room
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
}

func New(
	repo repository.Booking,
	roomRepo roomRepo.Room,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
	return &serviceImpl{
		repo:     repo,
		roomRepo: roomRepo,
		cfg:      cfg,
		cache:    cache,
		otel:     otel,
		kafka:    kafka,
	}
}

// Create stores a new booking. The database assigns the id; any id in the payload is ignored.
func (s *serviceImpl) Create(ctx context.Context, req dto.BookingPayload) (id int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	req.Normalize()

	if err = s.checkAvailability(ctx, req, 0); err != nil {
		return 0, err
	}

	booking := req.ToModel(0, user, timezone.Now())

	if booking.ID, err = s.repo.InsertReturningID(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return 0, fmt.Errorf("failed to create booking: %w", err)
	}

	s.invalidate(ctx, booking.ID)
	s.publish(ctx, dto.EventCreated, booking)

	return booking.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, total, req.Limit)
	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBooking, req, filter)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	s.save(ctx, cacheKey, res)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id int64) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &res); err == nil {
		log.Debug().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return res, nil
	}

	booking, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)
	s.save(ctx, cacheKey, res)

	return res, nil
}

// Update replaces every field of the booking. The stored id always wins over the payload's.
func (s *serviceImpl) Update(ctx context.Context, req dto.BookingPayload, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, _ := ctx.Value(constant.ContextKeyUsername).(string)

	req.Normalize()

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.checkAvailability(ctx, req, id); err != nil {
		return err
	}

	at := timezone.Now()

	if err = s.repo.Update(ctx, req.ToFields(user, at), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return fmt.Errorf("failed to update booking: %w", err)
	}

	updated := req.ToModel(id, user, at)
	updated.CreatedAt = current.CreatedAt
	updated.CreatedBy = current.CreatedBy

	s.invalidate(ctx, id)
	s.publish(ctx, dto.EventUpdated, updated)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id int64) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	current, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete booking")

		return fmt.Errorf("failed to delete booking: %w", err)
	}

	s.invalidate(ctx, id)
	s.publish(ctx, dto.EventDeleted, current)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id int64) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == 0 {
		return booking, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	return booking, nil
}

// checkAvailability enforces the stay ordering, the room reference and the no-overlap rule.
func (s *serviceImpl) checkAvailability(ctx context.Context, req dto.BookingPayload, excludeID int64) error {
	if !req.CheckOut.After(req.CheckIn) {
		return failure.BadRequestFromString("check-out must be after check-in") // nolint:wrapcheck
	}

	roomExists, err := s.roomRepo.Exist(ctx, shared.FilterByID(req.Group, roomModel.FieldID, roomModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if room exists")

		return fmt.Errorf("failed to check if room exists: %w", err)
	}

	if !roomExists {
		return failure.BadRequestFromString("room does not exist") // nolint:wrapcheck
	}

	overlap, err := s.repo.Exist(ctx, repository.Overlapping(req.Group, req.CheckIn, req.CheckOut, excludeID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check booking overlap")

		return fmt.Errorf("failed to check booking overlap: %w", err)
	}

	if overlap {
		return failure.Conflict("room is already booked for the selected dates") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) publish(ctx context.Context, eventType string, booking model.Booking) {
	event := dto.Event{Type: eventType, OccurredAt: timezone.Now().Format(time.RFC3339)}
	event.Booking.FromModel(booking)

	go func() {
		c := context.WithoutCancel(ctx)

		err := s.kafka.SendMessages(c, s.cfg.Kafka.BookingTopic, kafka.Message{
			Key:   strconv.FormatInt(booking.ID, 10),
			Value: event,
		})
		if err != nil {
			log.Error().Err(err).Str("event", eventType).Int64("id", booking.ID).Msg("failed to publish booking event")
		}
	}()
}

func (s *serviceImpl) save(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to save booking cache")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id int64) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
		shared.InvalidateCaches(c, s.cache, cacheCountBooking)
	}()
}
