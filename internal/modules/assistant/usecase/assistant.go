package usecase

import (
	"context"

	"eduterm/internal/modules/assistant/domain"
	"eduterm/internal/modules/assistant/service"
)

type Interactor struct {
	assistant *service.AssistantService
}

func NewInteractor(assistant *service.AssistantService) *Interactor {
	return &Interactor{assistant: assistant}
}

func (i *Interactor) Send(ctx context.Context, message string) (domain.Message, error) {
	return i.assistant.Send(ctx, message)
}

func (i *Interactor) Transcript(_ context.Context) []domain.Message {
	return i.assistant.Transcript()
}

func (i *Interactor) Clear(_ context.Context) {
	i.assistant.Clear()
}
