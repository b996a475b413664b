package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"

	"hotel/infras/otel"
	"hotel/infras/postgres"
	"hotel/internal/domains/booking/model"
	gDto "hotel/shared/dto"
	gRepo "hotel/shared/repository"
)

type Booking interface {
	InsertReturningID(ctx context.Context, model model.Booking) (int64, error)
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Update(ctx context.Context, req map[string]any, filter gDto.FilterGroup) error
	Delete(ctx context.Context, filter gDto.FilterGroup) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
	}
}

// Overlapping matches bookings of the same room whose stay intersects [checkIn, checkOut).
// A non-zero excludeID leaves that booking out, so an edit does not collide with itself.
func Overlapping(groupID int64, checkIn, checkOut any, excludeID int64) gDto.FilterGroup {
	filter := gDto.And(
		gDto.Filter{Field: model.FieldGroupID, Operator: gDto.FilterOperatorEq, Value: groupID, Table: model.TableName},
		gDto.Filter{Field: model.FieldCheckIn, Operator: gDto.FilterOperatorLess, Value: checkOut, ArgName: "new_check_out", Table: model.TableName},
		gDto.Filter{Field: model.FieldCheckOut, Operator: gDto.FilterOperatorGreater, Value: checkIn, ArgName: "new_check_in", Table: model.TableName},
	)

	if excludeID != 0 {
		filter = filter.Append(gDto.Filter{Field: model.FieldID, Operator: gDto.FilterOperatorNotEq, Value: excludeID, ArgName: "exclude_id", Table: model.TableName})
	}

	return filter
}
