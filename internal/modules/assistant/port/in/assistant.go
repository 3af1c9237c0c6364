package in

import (
	"context"

	"eduterm/internal/modules/assistant/domain"
)

type Usecase interface {
	Send(ctx context.Context, message string) (domain.Message, error)
	Transcript(ctx context.Context) []domain.Message
	Clear(ctx context.Context)
}
