package in

import (
	"context"

	"eduterm/internal/modules/account/dto"
)

// Usecase is the application boundary for authentication and the profile.
type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.UserOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.UserOutput, error)
	Logout(ctx context.Context) error

	CurrentUser(ctx context.Context) (dto.UserOutput, bool)
	LoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
	Token(ctx context.Context) string

	UpdateProfile(ctx context.Context, name string) (dto.UserOutput, error)
	ChangePassword(ctx context.Context, input dto.PasswordChangeInput) error
}
