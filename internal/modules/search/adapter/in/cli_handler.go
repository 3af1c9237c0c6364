package in

import (
	"context"

	"eduterm/internal/modules/search/dto"
	searchin "eduterm/internal/modules/search/port/in"
)

type CLIHandler struct {
	usecase searchin.Usecase
}

func NewCLIHandler(usecase searchin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Search(ctx context.Context, query, kind, branch string, limit int) ([]dto.ItemOutput, error) {
	results, err := h.usecase.Search(ctx, dto.SearchInput{Query: query, Kind: kind, Branch: branch, Limit: limit})
	if err != nil {
		return nil, err
	}
	if query != "" {
		_ = h.usecase.RecordSearch(ctx, query)
	}
	return results, nil
}

func (h CLIHandler) Recent(ctx context.Context) ([]string, error) {
	return h.usecase.RecentSearches(ctx)
}

func (h CLIHandler) ClearRecent(ctx context.Context) error {
	return h.usecase.ClearRecentSearches(ctx)
}
