package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"hotel/config"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/user/mocks"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/service"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUsers(t *testing.T) (func() service.User, *mocks.MockUser) {
	t.Helper()

	repo := mocks.NewMockUser(gomock.NewController(t))
	svc := service.New(repo, &config.Config{}, otelMocks.NewOtel())

	return func() service.User { return svc }, repo
}

func execute(t *testing.T, users func() service.User, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	cmd := newCommand(users, &out)
	cmd.SetArgs(args)
	cmd.SetContext(context.Background())

	err := cmd.Execute()

	return out.String(), err
}

func TestDefaultPassword(t *testing.T) {
	users, repo := newUsers(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
			hash, ok := fields[model.FieldPassword].(string)
			require.True(t, ok)
			assert.NoError(t, password.Verify(defaultPassword, hash))

			_, args := filter.GetWhereClause()
			assert.Contains(t, args, model.FieldUsername)
			assert.Equal(t, adminUsername, args[model.FieldUsername])

			return nil
		})

	out, err := execute(t, users)
	require.NoError(t, err)
	assert.Contains(t, out, "has been reset")
}

func TestCustomPassword(t *testing.T) {
	users, repo := newUsers(t)

	repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
			assert.NoError(t, password.Verify("s3cret!", fields[model.FieldPassword].(string)))

			return nil
		})

	_, err := execute(t, users, "s3cret!")
	assert.NoError(t, err)
}

func TestShortPasswordNeverTouchesStorage(t *testing.T) {
	called := false
	users := func() service.User {
		called = true

		return nil
	}

	out, err := execute(t, users, "abc")
	require.Error(t, err)
	assert.False(t, called)
	assert.Contains(t, out, "Invalid password")
}

func TestTooManyArguments(t *testing.T) {
	users, _ := newUsers(t)

	_, err := execute(t, users, "one-password", "two-password")
	assert.Error(t, err)
}

func TestAdminNotFound(t *testing.T) {
	users, repo := newUsers(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(failure.NotFound("user not found"))

	out, err := execute(t, users)
	require.ErrorIs(t, err, errAdminNotFound)
	assert.Contains(t, out, "was not found")
}

func TestStorageFailure(t *testing.T) {
	users, repo := newUsers(t)

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))

	out, err := execute(t, users)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errAdminNotFound)
	assert.Contains(t, out, "Failed to reset password")
}
