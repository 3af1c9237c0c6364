package out

import (
	"context"

	"eduterm/internal/modules/bookmarks/domain"
)

// Client talks to the backend bookmark endpoints.
type Client interface {
	Check(ctx context.Context, key domain.Key) (bool, error)
	Create(ctx context.Context, key domain.Key) error
	Remove(ctx context.Context, key domain.Key) error
	List(ctx context.Context) ([]domain.Bookmark, error)
}

// TokenSource yields the current bearer token, empty when logged out.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Session answers whether a user is logged in right now.
type Session interface {
	LoggedIn(ctx context.Context) bool
}

// ActivitySink receives bookmark events for progress tracking.
type ActivitySink interface {
	BookmarkAdded(ctx context.Context, resourceID string)
}
