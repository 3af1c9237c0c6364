package kvstore_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/kvstore"
)

func TestSQLiteRoundTripAndOverwrite(t *testing.T) {
	t.Parallel()
	store, err := kvstore.NewSQLite(filepath.Join(t.TempDir(), "state", "eduterm.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	if _, err := store.Get(ctx, "userPreferences"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("missing key should be ErrNotFound, got %v", err)
	}
	if err := store.Set(ctx, "userPreferences", `{"theme":"light"}`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "userPreferences", `{"theme":"dark"}`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	value, err := store.Get(ctx, "userPreferences")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if value != `{"theme":"dark"}` {
		t.Fatalf("expected overwritten value, got %s", value)
	}
	if err := store.Delete(ctx, "userPreferences"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, "userPreferences"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("deleted key should be ErrNotFound, got %v", err)
	}
}

func TestMemoryIsIsolatedPerInstance(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	first := kvstore.NewMemory()
	second := kvstore.NewMemory()
	if err := first.Set(ctx, "sessionState", "{}"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if _, err := second.Get(ctx, "sessionState"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("second store must not see first store's keys, got %v", err)
	}
}
