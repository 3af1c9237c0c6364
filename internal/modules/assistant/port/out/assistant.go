package out

import (
	"context"

	"eduterm/internal/modules/assistant/domain"
)

// Client sends one chat turn with the preceding transcript and returns the
// assistant's reply text.
type Client interface {
	Chat(ctx context.Context, message string, history []domain.Message) (string, error)
}

// TokenSource yields the current bearer token, empty when logged out.
type TokenSource interface {
	Token(ctx context.Context) string
}
