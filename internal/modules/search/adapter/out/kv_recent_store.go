package out

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	searchout "eduterm/internal/modules/search/port/out"
	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/kvstore"
)

const recentSearchesKey = "recentSearches"

// KVRecentStore persists the recent-search list as a JSON array in the
// durable store. A corrupt record reads as empty.
type KVRecentStore struct {
	store kvstore.Store
}

func NewKVRecentStore(store kvstore.Store) searchout.RecentStore {
	return &KVRecentStore{store: store}
}

func (s *KVRecentStore) Load(ctx context.Context) ([]string, error) {
	raw, err := s.store.Get(ctx, recentSearchesKey)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load recent searches: %w", err)
	}
	var terms []string
	if json.Unmarshal([]byte(raw), &terms) != nil {
		return nil, nil
	}
	return terms, nil
}

func (s *KVRecentStore) Save(ctx context.Context, terms []string) error {
	raw, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("encode recent searches: %w", err)
	}
	if err := s.store.Set(ctx, recentSearchesKey, string(raw)); err != nil {
		return fmt.Errorf("save recent searches: %w", err)
	}
	return nil
}

func (s *KVRecentStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, recentSearchesKey); err != nil {
		return fmt.Errorf("clear recent searches: %w", err)
	}
	return nil
}
