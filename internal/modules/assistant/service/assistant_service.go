package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"eduterm/internal/modules/assistant/domain"
	"eduterm/internal/modules/assistant/port/out"
	"eduterm/internal/platform/clock"
	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/id"
)

// AssistantService keeps the chat transcript for the current session. A
// failed turn keeps the user's message in the transcript so it can be
// retried by resending.
type AssistantService struct {
	client out.Client
	clock  clock.Clock
	ids    id.Generator

	mu         sync.Mutex
	transcript []domain.Message
}

func NewAssistantService(client out.Client, clk clock.Clock, ids id.Generator) *AssistantService {
	return &AssistantService{client: client, clock: clk, ids: ids}
}

func (s *AssistantService) Send(ctx context.Context, message string) (domain.Message, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return domain.Message{}, fmt.Errorf("%w: empty message", apperrors.ErrInvalidInput)
	}

	s.mu.Lock()
	history := append([]domain.Message{}, s.transcript...)
	s.transcript = append(s.transcript, domain.Message{ID: s.ids.New(), Role: domain.RoleUser, Content: message, At: s.clock.Now()})
	s.mu.Unlock()

	replyText, err := s.client.Chat(ctx, message, history)
	if err != nil {
		return domain.Message{}, fmt.Errorf("chat: %w", err)
	}

	reply := domain.Message{ID: s.ids.New(), Role: domain.RoleAssistant, Content: replyText, At: s.clock.Now()}
	s.mu.Lock()
	s.transcript = append(s.transcript, reply)
	s.mu.Unlock()
	return reply, nil
}

func (s *AssistantService) Transcript() []domain.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Message{}, s.transcript...)
}

func (s *AssistantService) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcript = nil
}
