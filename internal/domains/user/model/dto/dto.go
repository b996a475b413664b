package dto

import (
	"time"

	"hotel/internal/domains/user/model"
	"hotel/shared/constant"
	gDto "hotel/shared/dto"
	"hotel/shared/timezone"
)

type UserResponse struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	Role      string  `json:"role"`
	Active    bool    `json:"active"`
	LastLogin *string `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *UserResponse) FromModel(user model.User) {
	r.ID = user.ID
	r.Username = user.Username
	r.Email = user.Email
	r.Role = user.Role
	r.Active = user.Active

	if user.LastLogin != nil {
		lastLogin := timezone.Format(*user.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(user.Metadata)
}

type UpdatePasswordRequest struct {
	Password string `db:"password"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login"`
}
