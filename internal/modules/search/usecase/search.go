package usecase

import (
	"context"

	"eduterm/internal/modules/search/dto"
	searchin "eduterm/internal/modules/search/port/in"
	"eduterm/internal/modules/search/service"
)

type Interactor struct {
	svc *service.SearchService
}

func NewInteractor(svc *service.SearchService) searchin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Search(ctx context.Context, input dto.SearchInput) ([]dto.ItemOutput, error) {
	items, err := i.svc.Search(ctx, input.Query, input.Kind, input.Branch, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemOutput, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ItemOutput{
			ID:          item.ID,
			Kind:        string(item.Kind),
			Title:       item.Title,
			Description: item.Description,
			Branch:      item.Branch,
			Tags:        item.Tags,
			Year:        item.Year,
		})
	}
	return out, nil
}

func (i *Interactor) RecordSearch(ctx context.Context, term string) error {
	return i.svc.RecordSearch(ctx, term)
}

func (i *Interactor) RecentSearches(ctx context.Context) ([]string, error) {
	return i.svc.RecentSearches(ctx)
}

func (i *Interactor) ClearRecentSearches(ctx context.Context) error {
	return i.svc.ClearRecentSearches(ctx)
}
