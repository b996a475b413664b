package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	s3Mocks "hotel/infras/s3/mocks"
	"hotel/internal/domains/room/mocks"
	"hotel/internal/domains/room/model"
	"hotel/internal/domains/room/model/dto"
	"hotel/internal/domains/room/service"
	cacheMocks "hotel/shared/cache/mocks"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const roomID int64 = 7

type fixture struct {
	svc   service.Room
	repo  *mocks.MockRoom
	cache *cacheMocks.MockRedisCache
	s3    *s3Mocks.MockS3
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:  mocks.NewMockRoom(ctrl),
		cache: cacheMocks.NewMockRedisCache(ctrl),
		s3:    s3Mocks.NewMockS3(ctrl),
	}

	f.svc = service.New(f.repo, &config.Config{}, f.cache, otelMocks.NewOtel(), f.s3)

	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f fixture) cacheMiss() {
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis: nil")).AnyTimes()
}

func withUser(username string) context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUsername, username)
}

func TestCreate(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) (int64, error) {
		assert.Zero(t, room.ID)
		assert.Equal(t, "Deluxe", room.Title)
		assert.True(t, room.Active)
		assert.Equal(t, "admin", room.CreatedBy)
		assert.Empty(t, room.Image)

		return roomID, nil
	})

	id, err := f.svc.Create(withUser("admin"), dto.CreateRoomRequest{Title: "Deluxe", Capacity: 2})
	require.NoError(t, err)
	assert.Equal(t, roomID, id)
}

func TestCreateUploadsImage(t *testing.T) {
	f := newFixture(t)
	header := &multipart.FileHeader{Filename: "deluxe.png"}

	f.s3.EXPECT().
		UploadFile(gomock.Any(), model.EntityName, nil, header, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, _ multipart.File, _ *multipart.FileHeader, name string) (string, error) {
			assert.Regexp(t, `^[0-9a-f-]{36}\.png$`, name)

			return "https://cdn.hotel.test/room/" + name, nil
		})
	f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, room model.Room) (int64, error) {
		assert.Contains(t, room.Image, "https://cdn.hotel.test/room/")

		return roomID, nil
	})

	_, err := f.svc.Create(withUser("admin"), dto.CreateRoomRequest{Title: "Deluxe", Image: header})
	assert.NoError(t, err)
}

func TestCreateRemovesImageWhenInsertFails(t *testing.T) {
	f := newFixture(t)
	header := &multipart.FileHeader{Filename: "deluxe.jpg"}

	f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("https://cdn.hotel.test/room/a.jpg", nil)
	f.repo.EXPECT().InsertReturningID(gomock.Any(), gomock.Any()).Return(int64(0), failure.Conflict("room already exists"))
	f.s3.EXPECT().GetObjectKeyFromURL("https://cdn.hotel.test/room/a.jpg").Return("room/a.jpg")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "room/a.jpg").Return(nil)

	_, err := f.svc.Create(withUser("admin"), dto.CreateRoomRequest{Title: "Deluxe", Image: header})
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestCreateUploadFailure(t *testing.T) {
	f := newFixture(t)

	f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("bucket unavailable"))

	_, err := f.svc.Create(withUser("admin"), dto.CreateRoomRequest{Title: "Deluxe", Image: &multipart.FileHeader{Filename: "a.png"}})
	assert.ErrorContains(t, err, "bucket unavailable")
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID, Title: "Deluxe", Active: true}, nil)

	res, err := f.svc.Get(context.Background(), roomID)
	require.NoError(t, err)

	assert.Equal(t, roomID, res.ID)
	assert.Equal(t, "Deluxe", res.Title)
}

func TestGetFromCache(t *testing.T) {
	f := newFixture(t)

	f.cache.EXPECT().Get(gomock.Any(), "room:get:7", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, value any) error {
			res, ok := value.(*dto.RoomResponse)
			require.True(t, ok)
			res.ID = roomID
			res.Title = "Cached"

			return nil
		})

	res, err := f.svc.Get(context.Background(), roomID)
	require.NoError(t, err)
	assert.Equal(t, "Cached", res.Title)
}

func TestGetNotFound(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	_, err := f.svc.Get(context.Background(), 99)
	assert.True(t, failure.IsNotFound(err))
}

func TestGetAll(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	params := gDto.QueryParams{Page: 1, Limit: 2}

	f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(3, nil)
	f.repo.EXPECT().GetAll(gomock.Any(), params, gomock.Any()).Return([]model.Room{{ID: 1}, {ID: 2}}, nil)

	res, err := f.svc.GetAll(context.Background(), params, gDto.FilterGroup{})
	require.NoError(t, err)

	assert.Len(t, res.Rooms, 2)
	assert.Equal(t, 3, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestOptions(t *testing.T) {
	f := newFixture(t)
	f.cacheMiss()

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any(), model.FieldID, model.FieldTitle).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Room, error) {
			assert.Equal(t, model.FieldTitle, params.SortBy)

			where, args := filter.GetWhereClause()
			assert.Equal(t, "(rooms.active = :active)", where)
			assert.Equal(t, true, args["active"])

			return []model.Room{{ID: 3, Title: "Deluxe"}, {ID: 4, Title: "Suite"}}, nil
		})

	options, err := f.svc.Options(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []dto.Option{{ID: 3, Title: "Deluxe"}, {ID: 4, Title: "Suite"}}, options)
}

func TestUpdateRejectsEmptyRequest(t *testing.T) {
	f := newFixture(t)

	err := f.svc.Update(withUser("admin"), dto.UpdateRoomRequest{}, roomID)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}

func TestUpdate(t *testing.T) {
	f := newFixture(t)
	capacity := 4

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID, Title: "Deluxe"}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "Grand Deluxe", fields[model.FieldTitle])
			assert.Equal(t, &capacity, fields[model.FieldCapacity])
			assert.Equal(t, "admin", fields[constant.FieldModifiedBy])
			assert.NotContains(t, fields, model.FieldImage)

			return nil
		})

	err := f.svc.Update(withUser("admin"), dto.UpdateRoomRequest{Title: "Grand Deluxe", Capacity: &capacity}, roomID)
	assert.NoError(t, err)
}

func TestUpdateReplacesImage(t *testing.T) {
	f := newFixture(t)
	header := &multipart.FileHeader{Filename: "new.webp"}

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID, Image: "https://cdn.hotel.test/room/old.png"}, nil)
	f.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), header, gomock.Any()).Return("https://cdn.hotel.test/room/new.webp", nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.Equal(t, "https://cdn.hotel.test/room/new.webp", fields[model.FieldImage])

			return nil
		})
	f.s3.EXPECT().GetObjectKeyFromURL("https://cdn.hotel.test/room/old.png").Return("room/old.png")
	f.s3.EXPECT().DeleteFile(gomock.Any(), "room/old.png").Return(nil)

	assert.NoError(t, f.svc.Update(withUser("admin"), dto.UpdateRoomRequest{Image: header}, roomID))
}

func TestUpdateNotFound(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{}, nil)

	err := f.svc.Update(withUser("admin"), dto.UpdateRoomRequest{Title: "Suite"}, 5)
	assert.True(t, failure.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil)

	assert.NoError(t, f.svc.Delete(context.Background(), roomID))
}

func TestDeleteLinkedRoom(t *testing.T) {
	f := newFixture(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: roomID}, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any()).
		Return(failure.BadRequestFromString("room is linked to a missing or dependent record"))

	err := f.svc.Delete(context.Background(), roomID)
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
