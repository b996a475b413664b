package service

import (
	"context"
	"fmt"

	"hotel/config"
	"hotel/infras/otel"
	"hotel/internal/domains/user/model"
	"hotel/internal/domains/user/model/dto"
	"hotel/internal/domains/user/repository"
	"hotel/shared"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/failure"
	"hotel/shared/password"

	"github.com/rs/zerolog/log"
)

type User interface {
	Get(ctx context.Context, id string) (dto.UserResponse, error)
	ResetPassword(ctx context.Context, username, newPassword string) error
}

type serviceImpl struct {
	repo repository.User
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.User, cfg *config.Config, otel otel.Otel) User {
	return &serviceImpl{
		repo: repo,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.UserResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		return res, failure.NotFound("user not found") // nolint:wrapcheck
	}

	res.FromModel(user)

	return res, nil
}

// ResetPassword replaces the password of the user with the given username in a single update.
// A missing user surfaces as a not found failure.
func (s *serviceImpl) ResetPassword(ctx context.Context, username, newPassword string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".user.ResetPassword")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(model.FieldUsername, username)

	if err = password.Check(newPassword); err != nil {
		return failure.BadRequest(err) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(newPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldUsername,
				Operator: gDto.FilterOperatorEq,
				Value:    username,
				Table:    model.TableName,
			},
		},
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashedPassword}, constant.ContextSystem)

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Str("username", username).Msg("failed to reset password")

		return fmt.Errorf("failed to reset password: %w", err)
	}

	log.Info().Str("username", username).Msg("password reset")

	return nil
}
