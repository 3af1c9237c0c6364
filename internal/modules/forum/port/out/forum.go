package out

import (
	"context"

	"eduterm/internal/modules/forum/domain"
)

// Client talks to the backend forum endpoints.
type Client interface {
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, postID string) (domain.Post, []domain.Reply, error)
	CreatePost(ctx context.Context, post domain.NewPost) (domain.Post, error)
	CreateReply(ctx context.Context, reply domain.NewReply) (domain.Reply, error)
}

// Session answers whether a user is logged in right now.
type Session interface {
	LoggedIn(ctx context.Context) bool
}

// TokenSource yields the current bearer token, empty when logged out.
type TokenSource interface {
	Token(ctx context.Context) string
}
