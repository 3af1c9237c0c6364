package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"eduterm/internal/modules/userstate/domain"
	"eduterm/internal/platform/clock"
	"eduterm/internal/platform/kvstore"
)

type recordingNotifier struct {
	successes []string
	errors    []string
}

func (n *recordingNotifier) Success(title, detail string) {
	n.successes = append(n.successes, title+": "+detail)
}

func (n *recordingNotifier) Error(title, detail string) {
	n.errors = append(n.errors, title+": "+detail)
}

func (n *recordingNotifier) Info(string, string) {}

type failingStore struct {
	kvstore.Store
	fail bool
}

func (f *failingStore) Set(ctx context.Context, key, value string) error {
	if f.fail {
		return errors.New("disk full")
	}
	return f.Store.Set(ctx, key, value)
}

func newService(t *testing.T) (*StateService, *recordingNotifier, kvstore.Store) {
	t.Helper()
	durable := kvstore.NewMemory()
	notifier := &recordingNotifier{}
	svc := NewStateService(context.Background(), clock.SystemClock{}, durable, kvstore.NewMemory(), notifier)
	return svc, notifier, durable
}

func TestFiftiethDownloadUnlocksHeavyDownloader(t *testing.T) {
	t.Parallel()

	svc, notifier, _ := newService(t)
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		if err := svc.Track(ctx, domain.Event{Kind: domain.EventResourceDownloaded}); err != nil {
			t.Fatalf("track download %d: %v", i+1, err)
		}
	}

	progress := svc.Progress()
	if progress.ResourcesDownloaded != 50 {
		t.Fatalf("ResourcesDownloaded = %d, want 50", progress.ResourcesDownloaded)
	}

	ids := make([]string, 0, len(progress.Achievements))
	for _, a := range progress.Achievements {
		ids = append(ids, a.ID)
	}
	if len(ids) != 2 || ids[0] != "first_download" || ids[1] != "heavy_downloader" {
		t.Fatalf("achievements = %v", ids)
	}

	var unlockNotices int
	for _, s := range notifier.successes {
		if strings.HasPrefix(s, "Achievement unlocked") {
			unlockNotices++
		}
	}
	if unlockNotices != 2 {
		t.Errorf("got %d unlock notifications, want 2", unlockNotices)
	}
}

func TestSavePreferencesSurvivesReload(t *testing.T) {
	t.Parallel()

	durable := kvstore.NewMemory()
	ctx := context.Background()

	svc := NewStateService(ctx, clock.SystemClock{}, durable, kvstore.NewMemory(), nil)
	theme := "dark"
	if err := svc.SavePreferences(ctx, domain.PreferencesPatch{Theme: &theme}); err != nil {
		t.Fatal(err)
	}

	reloaded := NewStateService(ctx, clock.SystemClock{}, durable, kvstore.NewMemory(), nil)
	prefs := reloaded.Preferences()
	if prefs.Theme != "dark" {
		t.Errorf("Theme = %s after reload, want dark", prefs.Theme)
	}
	if prefs.Language != "en" || !prefs.Notifications.Email {
		t.Error("unset fields lost their defaults after reload")
	}
}

func TestCorruptRecordFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	durable := kvstore.NewMemory()
	ctx := context.Background()
	if err := durable.Set(ctx, "userProgress", "{not json"); err != nil {
		t.Fatal(err)
	}

	svc := NewStateService(ctx, clock.SystemClock{}, durable, kvstore.NewMemory(), nil)
	if got := svc.Progress(); got.ResourcesDownloaded != 0 || got.HasAchievements() {
		t.Errorf("corrupt record did not fall back to defaults: %+v", got)
	}
}

func TestFailedWriteKeepsPriorState(t *testing.T) {
	t.Parallel()

	durable := &failingStore{Store: kvstore.NewMemory()}
	notifier := &recordingNotifier{}
	ctx := context.Background()

	svc := NewStateService(ctx, clock.SystemClock{}, durable, kvstore.NewMemory(), notifier)
	theme := "dark"
	if err := svc.SavePreferences(ctx, domain.PreferencesPatch{Theme: &theme}); err != nil {
		t.Fatal(err)
	}

	durable.fail = true
	lang := "de"
	if err := svc.SavePreferences(ctx, domain.PreferencesPatch{Language: &lang}); err == nil {
		t.Fatal("expected write error")
	}
	if len(notifier.errors) == 0 {
		t.Error("failed save produced no error notification")
	}

	prefs := svc.Preferences()
	if prefs.Language != "en" || prefs.Theme != "dark" {
		t.Errorf("in-memory state diverged after failed write: %+v", prefs)
	}
}

func TestFormDataLifecycle(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	if err := svc.SaveFormData(ctx, "upload", map[string]string{"title": "Signals"}); err != nil {
		t.Fatal(err)
	}
	if got := svc.FormData("upload"); got["title"] != "Signals" {
		t.Fatalf("FormData = %v", got)
	}

	if err := svc.ClearFormData(ctx, "upload"); err != nil {
		t.Fatal(err)
	}
	got := svc.FormData("upload")
	if got == nil || len(got) != 0 {
		t.Errorf("cleared form = %v, want empty map", got)
	}

	if got := svc.FormData("never-saved"); len(got) != 0 {
		t.Errorf("unknown form = %v, want empty map", got)
	}
}

func TestScrollAndCurrentPage(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	if err := svc.SaveScrollPosition(ctx, "/papers", 420); err != nil {
		t.Fatal(err)
	}
	if got := svc.ScrollPosition("/papers"); got != 420 {
		t.Errorf("ScrollPosition = %d, want 420", got)
	}
	if got := svc.ScrollPosition("/notes"); got != 0 {
		t.Errorf("unsaved page offset = %d, want 0", got)
	}

	if err := svc.SetCurrentPage(ctx, "/forum"); err != nil {
		t.Fatal(err)
	}
	if got := svc.CurrentPage(); got != "/forum" {
		t.Errorf("CurrentPage = %s, want /forum", got)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	theme := "dark"
	if err := svc.SavePreferences(ctx, domain.PreferencesPatch{Theme: &theme}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := svc.Track(ctx, domain.Event{Kind: domain.EventTestCompleted}); err != nil {
			t.Fatal(err)
		}
	}

	dir := t.TempDir()
	path, err := svc.ExportData(ctx, dir)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Dir(path) != dir {
		t.Errorf("export written to %s, want %s", path, dir)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	fresh, _, _ := newService(t)
	if err := fresh.ImportData(ctx, raw); err != nil {
		t.Fatal(err)
	}
	if fresh.Preferences().Theme != "dark" {
		t.Error("imported theme lost")
	}
	if fresh.Progress().TestsCompleted != 3 {
		t.Errorf("imported TestsCompleted = %d, want 3", fresh.Progress().TestsCompleted)
	}
}

func TestImportProgressOnlyKeepsPreferences(t *testing.T) {
	t.Parallel()

	svc, _, durable := newService(t)
	ctx := context.Background()

	theme := "dark"
	if err := svc.SavePreferences(ctx, domain.PreferencesPatch{Theme: &theme}); err != nil {
		t.Fatal(err)
	}

	blob := []byte(`{"progress":{"resourcesDownloaded":3}}`)
	if err := svc.ImportData(ctx, blob); err != nil {
		t.Fatal(err)
	}

	if got := svc.Progress().ResourcesDownloaded; got != 3 {
		t.Errorf("ResourcesDownloaded = %d, want 3", got)
	}
	prefs := svc.Preferences()
	if prefs.Theme != "dark" {
		t.Errorf("Theme = %q after progress-only import, want dark", prefs.Theme)
	}
	if prefs.Language != "en" {
		t.Errorf("Language = %q after progress-only import, want en", prefs.Language)
	}

	reloaded := NewStateService(ctx, clock.SystemClock{}, durable, kvstore.NewMemory(), nil)
	if reloaded.Preferences().Theme != "dark" {
		t.Error("stored preferences record was overwritten by progress-only import")
	}
}

func TestImportPreferencesMergeOnSavedValues(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	lang := "de"
	if err := svc.SavePreferences(ctx, domain.PreferencesPatch{Language: &lang}); err != nil {
		t.Fatal(err)
	}

	if err := svc.ImportData(ctx, []byte(`{"preferences":{"theme":"dark"}}`)); err != nil {
		t.Fatal(err)
	}

	prefs := svc.Preferences()
	if prefs.Theme != "dark" {
		t.Errorf("Theme = %q, want dark", prefs.Theme)
	}
	if prefs.Language != "de" {
		t.Errorf("Language = %q, want de; fields the file omits must keep their saved values", prefs.Language)
	}
}

func TestImportRejectsMalformedFile(t *testing.T) {
	t.Parallel()

	svc, notifier, _ := newService(t)
	ctx := context.Background()

	if err := svc.Track(ctx, domain.Event{Kind: domain.EventResourceDownloaded}); err != nil {
		t.Fatal(err)
	}
	before := svc.Progress()

	if err := svc.ImportData(ctx, []byte("not json at all")); err == nil {
		t.Fatal("expected import error")
	}
	if len(notifier.errors) == 0 {
		t.Error("malformed import produced no error notification")
	}
	if got := svc.Progress(); got.ResourcesDownloaded != before.ResourcesDownloaded {
		t.Error("malformed import changed progress")
	}
}

func TestConcurrentTrackingIsAtomic(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	done := make(chan error, 20)
	for i := 0; i < 20; i++ {
		go func(i int) {
			done <- svc.Track(ctx, domain.Event{Kind: domain.EventPageViewed, PageURL: fmt.Sprintf("/papers/%d", i)})
		}(i)
	}
	for i := 0; i < 20; i++ {
		if err := <-done; err != nil {
			t.Fatal(err)
		}
	}

	if got := len(svc.Progress().RecentlyViewed); got != 20 {
		t.Errorf("RecentlyViewed holds %d entries, want 20", got)
	}
}

func TestPageViewRingCapsAtTwenty(t *testing.T) {
	t.Parallel()

	svc, _, _ := newService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		if err := svc.Track(ctx, domain.Event{Kind: domain.EventPageViewed, PageURL: fmt.Sprintf("/p/%d", i)}); err != nil {
			t.Fatal(err)
		}
	}

	views := svc.Progress().RecentlyViewed
	if len(views) != domain.RecentlyViewedMax {
		t.Fatalf("ring holds %d, want %d", len(views), domain.RecentlyViewedMax)
	}
	if views[0].URL != "/p/24" {
		t.Errorf("newest view = %s, want /p/24", views[0].URL)
	}
}

func TestLastActivityStamped(t *testing.T) {
	t.Parallel()

	fixed := clock.Fixed{At: time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewStateService(context.Background(), fixed, kvstore.NewMemory(), kvstore.NewMemory(), nil)

	if err := svc.Track(context.Background(), domain.Event{Kind: domain.EventTestCompleted}); err != nil {
		t.Fatal(err)
	}
	if got := svc.Progress().LastActivity; !got.Equal(fixed.At) {
		t.Errorf("LastActivity = %v, want %v", got, fixed.At)
	}
}
