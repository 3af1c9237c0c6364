package out

import (
	"context"

	bookmarksout "eduterm/internal/modules/bookmarks/port/out"
	statedomain "eduterm/internal/modules/userstate/domain"
	statein "eduterm/internal/modules/userstate/port/in"
)

type UserstateActivityAdapter struct {
	state statein.Usecase
}

func NewUserstateActivityAdapter(state statein.Usecase) bookmarksout.ActivitySink {
	return &UserstateActivityAdapter{state: state}
}

func (a *UserstateActivityAdapter) BookmarkAdded(ctx context.Context, resourceID string) {
	_ = a.state.Track(ctx, statedomain.Event{Kind: statedomain.EventBookmarkAdded, ResourceID: resourceID})
}
