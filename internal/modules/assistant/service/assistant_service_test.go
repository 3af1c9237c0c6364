package service

import (
	"context"
	"errors"
	"testing"

	"eduterm/internal/modules/assistant/domain"
	"eduterm/internal/platform/clock"
	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/id"
)

type fakeChat struct {
	reply   string
	err     error
	history []domain.Message
}

func (f *fakeChat) Chat(_ context.Context, message string, history []domain.Message) (string, error) {
	f.history = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestSendAppendsBothTurns(t *testing.T) {
	t.Parallel()

	client := &fakeChat{reply: "42"}
	svc := NewAssistantService(client, clock.SystemClock{}, id.UUID{})

	reply, err := svc.Send(context.Background(), "what is the answer")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Role != domain.RoleAssistant || reply.Content != "42" {
		t.Errorf("reply = %+v", reply)
	}

	transcript := svc.Transcript()
	if len(transcript) != 2 {
		t.Fatalf("transcript holds %d messages, want 2", len(transcript))
	}
	if transcript[0].Role != domain.RoleUser {
		t.Error("user turn missing")
	}
}

func TestSendPassesPriorHistory(t *testing.T) {
	t.Parallel()

	client := &fakeChat{reply: "ok"}
	svc := NewAssistantService(client, clock.SystemClock{}, id.UUID{})
	ctx := context.Background()

	if _, err := svc.Send(ctx, "first"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Send(ctx, "second"); err != nil {
		t.Fatal(err)
	}
	if len(client.history) != 2 {
		t.Errorf("second turn saw %d history messages, want 2", len(client.history))
	}
}

func TestSendRejectsEmptyMessage(t *testing.T) {
	t.Parallel()

	svc := NewAssistantService(&fakeChat{}, clock.SystemClock{}, id.UUID{})
	if _, err := svc.Send(context.Background(), "   "); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}

func TestFailedTurnKeepsUserMessage(t *testing.T) {
	t.Parallel()

	client := &fakeChat{err: errors.New("http 503")}
	svc := NewAssistantService(client, clock.SystemClock{}, id.UUID{})

	if _, err := svc.Send(context.Background(), "hello"); err == nil {
		t.Fatal("expected error")
	}
	transcript := svc.Transcript()
	if len(transcript) != 1 || transcript[0].Role != domain.RoleUser {
		t.Errorf("transcript = %+v", transcript)
	}
}

func TestClearEmptiesTranscript(t *testing.T) {
	t.Parallel()

	svc := NewAssistantService(&fakeChat{reply: "hi"}, clock.SystemClock{}, id.UUID{})
	if _, err := svc.Send(context.Background(), "hello"); err != nil {
		t.Fatal(err)
	}
	svc.Clear()
	if len(svc.Transcript()) != 0 {
		t.Error("transcript survived clear")
	}
}
