package out

import (
	"context"

	"eduterm/internal/modules/catalog/domain"
)

// Client talks to the portal's REST resource endpoints.
type Client interface {
	List(ctx context.Context, resourceType domain.ResourceType) ([]domain.Resource, error)
	Upload(ctx context.Context, upload domain.Upload) (domain.Resource, error)
	Delete(ctx context.Context, resourceType domain.ResourceType, id string) error
	// Download fetches the PDF into destDir and returns the saved path.
	Download(ctx context.Context, resourceType domain.ResourceType, id, destDir string) (string, error)
	ViewURL(resourceType domain.ResourceType, id string) string
}

// Previewer renders a page of a downloaded PDF as text.
type Previewer interface {
	ReadPage(ctx context.Context, path string, page int) (domain.PreviewPage, error)
}

// TokenSource supplies the bearer token attached to every request. An empty
// token means the request goes out unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) string
}

// Session answers whether someone is logged in. Downloads and uploads are
// short-circuited locally when nobody is.
type Session interface {
	LoggedIn(ctx context.Context) bool
	IsAdmin(ctx context.Context) bool
}

// ActivitySink receives progress-relevant events (a completed download).
type ActivitySink interface {
	ResourceDownloaded(ctx context.Context, resourceID string)
}
