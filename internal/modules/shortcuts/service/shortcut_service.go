package service

import (
	"context"
	"sync"

	"eduterm/internal/modules/shortcuts/domain"
	"eduterm/internal/platform/clock"
	"eduterm/internal/platform/kvstore"
)

const seenHelpKey = "hasSeenShortcuts"

// ShortcutService serializes access to the sequence machine and persists
// the first-run help flag.
type ShortcutService struct {
	mu      sync.Mutex
	clock   clock.Clock
	durable kvstore.Store
	machine domain.Machine
}

func NewShortcutService(clk clock.Clock, durable kvstore.Store) *ShortcutService {
	return &ShortcutService{clock: clk, durable: durable}
}

func (s *ShortcutService) Press(key domain.Key) domain.Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Press(key, s.clock.Now())
}

func (s *ShortcutService) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.machine.Pending()
}

func (s *ShortcutService) Bindings() []domain.Binding {
	return domain.Bindings()
}

func (s *ShortcutService) HasSeenHelp(ctx context.Context) bool {
	value, err := s.durable.Get(ctx, seenHelpKey)
	return err == nil && value == "true"
}

func (s *ShortcutService) MarkHelpSeen(ctx context.Context) error {
	return s.durable.Set(ctx, seenHelpKey, "true")
}
