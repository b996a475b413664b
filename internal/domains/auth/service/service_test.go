package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"hotel/config"
	"hotel/infras/jwt"
	jwtMocks "hotel/infras/jwt/mocks"
	otelMocks "hotel/infras/otel/mocks"
	"hotel/internal/domains/auth/model/dto"
	"hotel/internal/domains/auth/service"
	userMocks "hotel/internal/domains/user/mocks"
	userModel "hotel/internal/domains/user/model"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	svc  service.Auth
	repo *userMocks.MockUser
	jwt  *jwtMocks.MockJWT
}

func setup(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := userMocks.NewMockUser(ctrl)
	tokens := jwtMocks.NewMockJWT(ctrl)

	return fixture{
		svc:  service.New(repo, &config.Config{}, otelMocks.NewOtel(), tokens),
		repo: repo,
		jwt:  tokens,
	}
}

func adminUser(t *testing.T, active bool) userModel.User {
	t.Helper()

	hash, err := password.Hash("admin123")
	require.NoError(t, err)

	return userModel.User{
		ID:       "user-1",
		Username: "admin",
		Password: hash,
		Role:     constant.RoleAdmin,
		Active:   active,
	}
}

func TestLogin(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
	f.jwt.EXPECT().GenerateTokenPair("user-1", "admin", constant.RoleAdmin).Return(&jwt.TokenPair{
		AccessToken:  "access",
		RefreshToken: "refresh",
		TokenType:    "Bearer",
		ExpiresIn:    900,
	}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)

	assert.Equal(t, dto.TokenResponse{AccessToken: "access", RefreshToken: "refresh", TokenType: "Bearer", ExpiresIn: 900}, res)
}

func TestLoginLastLoginFailureIsNotFatal(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
	f.jwt.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), gomock.Any()).Return(&jwt.TokenPair{AccessToken: "access"}, nil)
	f.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

	res, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "access", res.AccessToken)
}

func TestLoginRejections(t *testing.T) {
	tests := []struct {
		name     string
		user     func(t *testing.T) userModel.User
		password string
		code     int
	}{
		{
			name:     "unknown user",
			user:     func(*testing.T) userModel.User { return userModel.User{} },
			password: "admin123",
			code:     http.StatusUnauthorized,
		},
		{
			name:     "wrong password",
			user:     func(t *testing.T) userModel.User { return adminUser(t, true) },
			password: "admin124",
			code:     http.StatusUnauthorized,
		},
		{
			name:     "inactive user",
			user:     func(t *testing.T) userModel.User { return adminUser(t, false) },
			password: "admin123",
			code:     http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := setup(t)

			f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.user(t), nil)

			_, err := f.svc.Login(context.Background(), dto.LoginRequest{Username: "admin", Password: tt.password})
			assert.Equal(t, tt.code, failure.GetCode(err))
		})
	}
}

func TestRefreshToken(t *testing.T) {
	f := setup(t)

	f.jwt.EXPECT().RefreshTokens("good").Return(&jwt.TokenPair{AccessToken: "next"}, nil)
	f.jwt.EXPECT().RefreshTokens("bad").Return(nil, jwt.ErrInvalidToken)

	res, err := f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "good"})
	require.NoError(t, err)
	assert.Equal(t, "next", res.AccessToken)

	_, err = f.svc.RefreshToken(context.Background(), dto.RefreshTokenRequest{RefreshToken: "bad"})
	assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))
}

func TestChangePassword(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)
	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.NoError(t, password.Verify("s3cret!", fields[userModel.FieldPassword].(string)))
			assert.Equal(t, "admin", fields[constant.FieldModifiedBy])

			return nil
		})

	err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "admin123", NewPassword: "s3cret!"}, "user-1")
	assert.NoError(t, err)
}

func TestChangePasswordWrongCurrent(t *testing.T) {
	f := setup(t)

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(adminUser(t, true), nil)

	err := f.svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{CurrentPassword: "nope", NewPassword: "s3cret!"}, "user-1")
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
