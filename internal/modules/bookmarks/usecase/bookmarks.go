package usecase

import (
	"context"

	"eduterm/internal/modules/bookmarks/domain"
	"eduterm/internal/modules/bookmarks/dto"
	"eduterm/internal/modules/bookmarks/service"
)

type Interactor struct {
	bookmarks *service.BookmarkService
}

func NewInteractor(bookmarks *service.BookmarkService) *Interactor {
	return &Interactor{bookmarks: bookmarks}
}

func (i *Interactor) CheckAll(ctx context.Context, keys []dto.KeyInput) (domain.Set, error) {
	domainKeys := make([]domain.Key, 0, len(keys))
	for _, k := range keys {
		domainKeys = append(domainKeys, domain.Key{Type: k.Type, ID: k.ID})
	}
	return i.bookmarks.CheckAll(ctx, domainKeys), nil
}

func (i *Interactor) Toggle(ctx context.Context, key dto.KeyInput, bookmarked bool) (dto.ToggleOutput, error) {
	now, err := i.bookmarks.Toggle(ctx, domain.Key{Type: key.Type, ID: key.ID}, bookmarked)
	if err != nil {
		return dto.ToggleOutput{Bookmarked: bookmarked}, err
	}
	return dto.ToggleOutput{Bookmarked: now}, nil
}

func (i *Interactor) List(ctx context.Context) ([]dto.BookmarkOutput, error) {
	marks, err := i.bookmarks.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.BookmarkOutput, 0, len(marks))
	for _, m := range marks {
		out = append(out, dto.BookmarkOutput{
			Type:    m.Key.Type,
			ID:      m.Key.ID,
			Title:   m.Title,
			AddedAt: m.AddedAt,
		})
	}
	return out, nil
}
