package in

import (
	"context"

	"eduterm/internal/modules/bookmarks/domain"
	"eduterm/internal/modules/bookmarks/dto"
)

// Usecase covers bookmark state for lists and the bookmark toggle.
type Usecase interface {
	// CheckAll resolves bookmark state for every key concurrently. A key
	// whose check fails reports not-bookmarked; CheckAll itself never
	// fails.
	CheckAll(ctx context.Context, keys []dto.KeyInput) (domain.Set, error)
	Toggle(ctx context.Context, key dto.KeyInput, bookmarked bool) (dto.ToggleOutput, error)
	List(ctx context.Context) ([]dto.BookmarkOutput, error)
}
