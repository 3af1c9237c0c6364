package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"eduterm/internal/modules/bookmarks/domain"
	"eduterm/internal/modules/bookmarks/port/out"
	apperrors "eduterm/internal/platform/errors"
)

type BookmarkService struct {
	client   out.Client
	session  out.Session
	activity out.ActivitySink
	logger   *zap.Logger
}

func NewBookmarkService(client out.Client, session out.Session, activity out.ActivitySink, logger *zap.Logger) *BookmarkService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookmarkService{client: client, session: session, activity: activity, logger: logger}
}

// CheckAll fans out one check per key and collects the answers. A failed
// check is logged and treated as not bookmarked, so one bad response never
// blanks a whole list view.
func (s *BookmarkService) CheckAll(ctx context.Context, keys []domain.Key) domain.Set {
	set := make(domain.Set, len(keys))
	if !s.session.LoggedIn(ctx) {
		for _, k := range keys {
			set[k] = false
		}
		return set
	}

	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, key := range keys {
		wg.Add(1)
		go func(key domain.Key) {
			defer wg.Done()
			bookmarked, err := s.client.Check(ctx, key)
			if err != nil {
				s.logger.Warn("bookmark check failed",
					zap.String("type", key.Type),
					zap.String("id", key.ID),
					zap.Error(err))
				bookmarked = false
			}
			mu.Lock()
			set[key] = bookmarked
			mu.Unlock()
		}(key)
	}
	wg.Wait()
	return set
}

// Toggle flips the bookmark on the backend and reports the resulting state.
// The displayed state must only change on success; on any error the caller
// keeps what it had.
func (s *BookmarkService) Toggle(ctx context.Context, key domain.Key, bookmarked bool) (bool, error) {
	if err := key.Validate(); err != nil {
		return bookmarked, err
	}
	if !s.session.LoggedIn(ctx) {
		return bookmarked, fmt.Errorf("toggle bookmark: %w", apperrors.ErrAuthRequired)
	}

	if bookmarked {
		if err := s.client.Remove(ctx, key); err != nil {
			return bookmarked, fmt.Errorf("remove bookmark: %w", err)
		}
		return false, nil
	}

	if err := s.client.Create(ctx, key); err != nil {
		return bookmarked, fmt.Errorf("create bookmark: %w", err)
	}
	if s.activity != nil {
		s.activity.BookmarkAdded(ctx, key.ID)
	}
	return true, nil
}

func (s *BookmarkService) List(ctx context.Context) ([]domain.Bookmark, error) {
	if !s.session.LoggedIn(ctx) {
		return nil, fmt.Errorf("list bookmarks: %w", apperrors.ErrAuthRequired)
	}
	marks, err := s.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	return marks, nil
}
