package out

import (
	"context"

	catalogout "eduterm/internal/modules/catalog/port/out"
	statedomain "eduterm/internal/modules/userstate/domain"
	statein "eduterm/internal/modules/userstate/port/in"
)

// UserstateActivityAdapter forwards completed downloads to progress
// tracking. Tracking failures never fail the download.
type UserstateActivityAdapter struct {
	state statein.Usecase
}

func NewUserstateActivityAdapter(state statein.Usecase) catalogout.ActivitySink {
	return &UserstateActivityAdapter{state: state}
}

func (a *UserstateActivityAdapter) ResourceDownloaded(ctx context.Context, resourceID string) {
	_ = a.state.Track(ctx, statedomain.Event{Kind: statedomain.EventResourceDownloaded, ResourceID: resourceID})
}
