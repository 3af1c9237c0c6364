package out

import (
	"context"
	"testing"

	"eduterm/internal/platform/kvstore"
)

func TestRecentStoreRoundTrip(t *testing.T) {
	t.Parallel()

	store := NewKVRecentStore(kvstore.NewMemory())
	ctx := context.Background()

	if terms, err := store.Load(ctx); err != nil || len(terms) != 0 {
		t.Fatalf("fresh store = %v, %v", terms, err)
	}

	if err := store.Save(ctx, []string{"dsp", "vlsi"}); err != nil {
		t.Fatal(err)
	}
	terms, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(terms) != 2 || terms[0] != "dsp" {
		t.Errorf("terms = %v", terms)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if terms, _ := store.Load(ctx); len(terms) != 0 {
		t.Errorf("terms after clear = %v", terms)
	}
}

func TestRecentStoreCorruptRecordReadsEmpty(t *testing.T) {
	t.Parallel()

	kv := kvstore.NewMemory()
	ctx := context.Background()
	if err := kv.Set(ctx, "recentSearches", "{broken"); err != nil {
		t.Fatal(err)
	}

	store := NewKVRecentStore(kv)
	terms, err := store.Load(ctx)
	if err != nil || len(terms) != 0 {
		t.Errorf("corrupt record = %v, %v", terms, err)
	}
}
