package service

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"

	"eduterm/internal/modules/search/domain"
	searchout "eduterm/internal/modules/search/port/out"
)

// MaxRecentSearches bounds the durable search history.
const MaxRecentSearches = 5

type SearchService struct {
	gateways map[domain.Kind]searchout.Gateway
	recent   searchout.RecentStore
}

func NewSearchService(papers, notes, syllabus, forum searchout.Gateway, recent searchout.RecentStore) *SearchService {
	return &SearchService{
		gateways: map[domain.Kind]searchout.Gateway{
			domain.KindPaper:    papers,
			domain.KindNote:     notes,
			domain.KindSyllabus: syllabus,
			domain.KindForum:    forum,
		},
		recent: recent,
	}
}

// queryOrder keeps combined results deterministic regardless of which fetch
// finishes first.
var queryOrder = []domain.Kind{domain.KindPaper, domain.KindNote, domain.KindSyllabus, domain.KindForum}

// Search fetches the requested collections concurrently, awaits them all,
// then runs the combined list through the query engine.
func (s *SearchService) Search(ctx context.Context, query, kind, branch string, limit int) ([]domain.Item, error) {
	kinds := queryOrder
	if kind != "" && kind != "all" {
		kinds = []domain.Kind{domain.Kind(kind)}
	}

	results := make([][]domain.Item, len(kinds))
	group, groupCtx := errgroup.WithContext(ctx)
	for i, k := range kinds {
		gateway, ok := s.gateways[k]
		if !ok || gateway == nil {
			continue
		}
		group.Go(func() error {
			items, err := gateway.Items(groupCtx)
			if err != nil {
				return err
			}
			results[i] = items
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	var combined []domain.Item
	for _, items := range results {
		combined = append(combined, items...)
	}
	return domain.Filter(combined, query, branch, limit), nil
}

// RecordSearch pushes a submitted term to the front of the history,
// deduplicated and capped.
func (s *SearchService) RecordSearch(ctx context.Context, term string) error {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil
	}
	history, err := s.recent.Load(ctx)
	if err != nil {
		history = nil
	}
	updated := []string{term}
	for _, prev := range history {
		if prev == term {
			continue
		}
		updated = append(updated, prev)
		if len(updated) == MaxRecentSearches {
			break
		}
	}
	return s.recent.Save(ctx, updated)
}

func (s *SearchService) RecentSearches(ctx context.Context) ([]string, error) {
	return s.recent.Load(ctx)
}

func (s *SearchService) ClearRecentSearches(ctx context.Context) error {
	return s.recent.Clear(ctx)
}
