package usecase

import (
	"context"

	"eduterm/internal/modules/shortcuts/domain"
	"eduterm/internal/modules/shortcuts/service"
)

type Interactor struct {
	shortcuts *service.ShortcutService
}

func NewInteractor(shortcuts *service.ShortcutService) *Interactor {
	return &Interactor{shortcuts: shortcuts}
}

func (i *Interactor) Press(_ context.Context, key domain.Key) domain.Action {
	return i.shortcuts.Press(key)
}

func (i *Interactor) Bindings(_ context.Context) []domain.Binding {
	return i.shortcuts.Bindings()
}

func (i *Interactor) HasSeenHelp(ctx context.Context) bool {
	return i.shortcuts.HasSeenHelp(ctx)
}

func (i *Interactor) MarkHelpSeen(ctx context.Context) error {
	return i.shortcuts.MarkHelpSeen(ctx)
}
