package out

import (
	"context"

	"eduterm/internal/modules/account/domain"
)

// AuthClient talks to the backend auth endpoints.
type AuthClient interface {
	Login(ctx context.Context, creds domain.Credentials) (domain.Token, error)
	Register(ctx context.Context, reg domain.Registration) (domain.Token, error)
	Me(ctx context.Context, token string) (domain.User, error)
	UpdateProfile(ctx context.Context, token, name string) (domain.User, error)
	ChangePassword(ctx context.Context, token, current, next string) error
}
