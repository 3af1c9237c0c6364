package in

import (
	"context"

	"eduterm/internal/modules/shortcuts/domain"
)

// Usecase resolves key presses to actions and tracks whether the help
// overlay has ever been shown.
type Usecase interface {
	Press(ctx context.Context, key domain.Key) domain.Action
	Bindings(ctx context.Context) []domain.Binding
	HasSeenHelp(ctx context.Context) bool
	MarkHelpSeen(ctx context.Context) error
}
