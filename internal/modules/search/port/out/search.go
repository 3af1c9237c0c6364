package out

import (
	"context"

	"eduterm/internal/modules/search/domain"
)

// Gateway supplies the full item list for one searchable collection.
type Gateway interface {
	Items(ctx context.Context) ([]domain.Item, error)
}

type RecentStore interface {
	Load(ctx context.Context) ([]string, error)
	Save(ctx context.Context, terms []string) error
	Clear(ctx context.Context) error
}
