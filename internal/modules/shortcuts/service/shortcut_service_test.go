package service

import (
	"context"
	"testing"
	"time"

	"eduterm/internal/modules/shortcuts/domain"
	"eduterm/internal/platform/clock"
	"eduterm/internal/platform/kvstore"
)

func TestPressResolvesSequences(t *testing.T) {
	t.Parallel()

	svc := NewShortcutService(clock.Fixed{At: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)}, kvstore.NewMemory())

	if got := svc.Press(domain.Key{Name: "g"}); got != domain.ActionNone {
		t.Fatalf("prefix emitted %v", got)
	}
	if !svc.Pending() {
		t.Fatal("prefix not pending")
	}
	if got := svc.Press(domain.Key{Name: "f"}); got != domain.ActionNavigateForum {
		t.Fatalf("g f = %v", got)
	}
}

func TestHelpSeenFlagPersists(t *testing.T) {
	t.Parallel()

	durable := kvstore.NewMemory()
	ctx := context.Background()

	svc := NewShortcutService(clock.SystemClock{}, durable)
	if svc.HasSeenHelp(ctx) {
		t.Fatal("fresh store reports help seen")
	}
	if err := svc.MarkHelpSeen(ctx); err != nil {
		t.Fatal(err)
	}

	again := NewShortcutService(clock.SystemClock{}, durable)
	if !again.HasSeenHelp(ctx) {
		t.Error("help flag did not survive a new service instance")
	}
}
