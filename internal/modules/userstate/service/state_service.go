package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"eduterm/internal/modules/userstate/domain"
	"eduterm/internal/modules/userstate/port/out"
	"eduterm/internal/platform/clock"
	apperrors "eduterm/internal/platform/errors"
	"eduterm/internal/platform/kvstore"
)

const (
	prefsKey    = "userPreferences"
	progressKey = "userProgress"
	sessionKey  = "sessionState"
)

// StateService is the single writer for preferences, progress and session
// state. Every mutation happens under one mutex, so concurrent callers see
// whole updates and the last write wins.
type StateService struct {
	mu       sync.Mutex
	clock    clock.Clock
	durable  kvstore.Store
	session  kvstore.Store
	notifier out.Notifier

	prefs    domain.Preferences
	progress domain.Progress
	sess     domain.SessionState
}

// NewStateService loads persisted state up front. Corrupt or missing records
// fall back to defaults per top-level key; loading never fails.
func NewStateService(ctx context.Context, clk clock.Clock, durable, session kvstore.Store, notifier out.Notifier) *StateService {
	if notifier == nil {
		notifier = out.NopNotifier{}
	}
	s := &StateService{
		clock:    clk,
		durable:  durable,
		session:  session,
		notifier: notifier,
		prefs:    domain.DefaultPreferences(),
		progress: domain.DefaultProgress(),
		sess:     domain.DefaultSessionState(),
	}
	s.load(ctx)
	return s
}

// load unmarshals on top of the defaults, so records written by older
// versions keep their known fields and gain defaults for new ones.
func (s *StateService) load(ctx context.Context) {
	if raw, err := s.durable.Get(ctx, prefsKey); err == nil {
		prefs := domain.DefaultPreferences()
		if json.Unmarshal([]byte(raw), &prefs) == nil {
			s.prefs = prefs
		}
	}
	if raw, err := s.durable.Get(ctx, progressKey); err == nil {
		var progress domain.Progress
		if json.Unmarshal([]byte(raw), &progress) == nil {
			s.progress = progress
		}
	}
	if raw, err := s.session.Get(ctx, sessionKey); err == nil {
		sess := domain.DefaultSessionState()
		if json.Unmarshal([]byte(raw), &sess) == nil {
			if sess.ScrollPositions == nil {
				sess.ScrollPositions = map[string]int{}
			}
			if sess.FormData == nil {
				sess.FormData = map[string]map[string]string{}
			}
			s.sess = sess
		}
	}
}

func (s *StateService) Preferences() domain.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.prefs
}

func (s *StateService) Progress() domain.Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// SavePreferences merges the patch and persists the full record. On a write
// failure the stored record is untouched and the caller is notified.
func (s *StateService) SavePreferences(ctx context.Context, patch domain.PreferencesPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.prefs.Merge(patch)
	if err := s.persistDurable(ctx, prefsKey, merged); err != nil {
		s.notifier.Error("Save failed", "preferences could not be written")
		return fmt.Errorf("save preferences: %w", err)
	}
	s.prefs = merged
	s.notifier.Success("Preferences saved", "")
	return nil
}

// UpdateProgress merges the patch, stamps the activity time, evaluates
// achievements on the result and announces each unlock.
func (s *StateService) UpdateProgress(ctx context.Context, patch domain.ProgressPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateProgressLocked(ctx, patch)
}

func (s *StateService) updateProgressLocked(ctx context.Context, patch domain.ProgressPatch) error {
	merged := s.progress.Merge(patch)
	now := s.clock.Now()
	merged.LastActivity = now

	merged, unlocked := domain.Evaluate(merged, now)
	if err := s.persistDurable(ctx, progressKey, merged); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	s.progress = merged
	for _, r := range unlocked {
		s.notifier.Success("Achievement unlocked", fmt.Sprintf("%s %s: %s", r.Icon, r.Name, r.Description))
	}
	return nil
}

// Track folds a single activity event into progress. Unknown event kinds
// are ignored.
func (s *StateService) Track(ctx context.Context, event domain.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch event.Kind {
	case domain.EventResourceDownloaded:
		n := s.progress.ResourcesDownloaded + 1
		return s.updateProgressLocked(ctx, domain.ProgressPatch{ResourcesDownloaded: &n})
	case domain.EventTestCompleted:
		n := s.progress.TestsCompleted + 1
		return s.updateProgressLocked(ctx, domain.ProgressPatch{TestsCompleted: &n})
	case domain.EventBookmarkAdded:
		refs := append([]domain.BookmarkRef{}, s.progress.Bookmarks...)
		refs = append(refs, domain.BookmarkRef{ResourceID: event.ResourceID, AddedAt: s.clock.Now()})
		return s.updateProgressLocked(ctx, domain.ProgressPatch{Bookmarks: &refs})
	case domain.EventPageViewed:
		views := s.progress.WithPageView(event.PageURL, s.clock.Now()).RecentlyViewed
		return s.updateProgressLocked(ctx, domain.ProgressPatch{RecentlyViewed: &views})
	default:
		return nil
	}
}

func (s *StateService) SaveFormData(ctx context.Context, form string, data map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make(map[string]string, len(data))
	for k, v := range data {
		copied[k] = v
	}
	s.sess.FormData[form] = copied
	return s.persistSession(ctx)
}

func (s *StateService) FormData(form string) map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.sess.FormData[form]
	if !ok {
		return map[string]string{}
	}
	copied := make(map[string]string, len(data))
	for k, v := range data {
		copied[k] = v
	}
	return copied
}

// ClearFormData empties the form's record but keeps the key present.
func (s *StateService) ClearFormData(ctx context.Context, form string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.FormData[form] = map[string]string{}
	return s.persistSession(ctx)
}

func (s *StateService) SaveScrollPosition(ctx context.Context, page string, offset int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.ScrollPositions[page] = offset
	return s.persistSession(ctx)
}

func (s *StateService) ScrollPosition(page string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.ScrollPositions[page]
}

func (s *StateService) SetCurrentPage(ctx context.Context, page string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.CurrentPage = page
	return s.persistSession(ctx)
}

func (s *StateService) CurrentPage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.CurrentPage
}

type exportRecord struct {
	Preferences domain.Preferences `json:"preferences"`
	Progress    domain.Progress    `json:"progress"`
	ExportedAt  string             `json:"exportedAt"`
}

// ExportData writes preferences and progress to a dated JSON file in dir
// and returns the file path.
func (s *StateService) ExportData(ctx context.Context, dir string) (string, error) {
	s.mu.Lock()
	record := exportRecord{
		Preferences: s.prefs,
		Progress:    s.progress,
		ExportedAt:  s.clock.Now().Format("2006-01-02T15:04:05Z07:00"),
	}
	s.mu.Unlock()

	raw, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode export: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("eduterm-data-%s.json", s.clock.Now().Format("2006-01-02")))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		s.notifier.Error("Export failed", "data file could not be written")
		return "", fmt.Errorf("write export: %w", err)
	}
	s.notifier.Success("Data exported", path)
	return path, nil
}

// importRecord keeps the top-level sections raw so a missing key is
// distinguishable from a zero-valued one.
type importRecord struct {
	Preferences json.RawMessage `json:"preferences"`
	Progress    json.RawMessage `json:"progress"`
}

// ImportData restores state from a previously exported file. Each section is
// applied only when its key is present: progress replaces the stored record
// wholesale, preferences merge on top of the current ones so fields the file
// omits keep their saved values. A malformed file changes nothing.
func (s *StateService) ImportData(ctx context.Context, raw []byte) error {
	var record importRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		s.notifier.Error("Import failed", "file is not a valid data export")
		return fmt.Errorf("decode import: %w", errors.Join(apperrors.ErrInvalidInput, err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prefs := s.prefs
	if record.Preferences != nil {
		if err := json.Unmarshal(record.Preferences, &prefs); err != nil {
			s.notifier.Error("Import failed", "file is not a valid data export")
			return fmt.Errorf("decode import preferences: %w", errors.Join(apperrors.ErrInvalidInput, err))
		}
	}
	progress := s.progress
	if record.Progress != nil {
		progress = domain.Progress{}
		if err := json.Unmarshal(record.Progress, &progress); err != nil {
			s.notifier.Error("Import failed", "file is not a valid data export")
			return fmt.Errorf("decode import progress: %w", errors.Join(apperrors.ErrInvalidInput, err))
		}
	}

	if record.Preferences != nil {
		if err := s.persistDurable(ctx, prefsKey, prefs); err != nil {
			s.notifier.Error("Import failed", "preferences could not be written")
			return fmt.Errorf("import preferences: %w", err)
		}
		s.prefs = prefs
	}
	if record.Progress != nil {
		if err := s.persistDurable(ctx, progressKey, progress); err != nil {
			s.notifier.Error("Import failed", "progress could not be written")
			return fmt.Errorf("import progress: %w", err)
		}
		s.progress = progress
	}
	s.notifier.Success("Data imported", "")
	return nil
}

func (s *StateService) persistDurable(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.durable.Set(ctx, key, string(raw))
}

func (s *StateService) persistSession(ctx context.Context) error {
	raw, err := json.Marshal(s.sess)
	if err != nil {
		return err
	}
	return s.session.Set(ctx, sessionKey, string(raw))
}
