package in

import (
	"context"

	"eduterm/internal/modules/search/dto"
)

type Usecase interface {
	Search(ctx context.Context, input dto.SearchInput) ([]dto.ItemOutput, error)
	RecordSearch(ctx context.Context, term string) error
	RecentSearches(ctx context.Context) ([]string, error)
	ClearRecentSearches(ctx context.Context) error
}
