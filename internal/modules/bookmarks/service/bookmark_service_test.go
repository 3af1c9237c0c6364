package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"eduterm/internal/modules/bookmarks/domain"
	apperrors "eduterm/internal/platform/errors"
)

type fakeClient struct {
	mu        sync.Mutex
	state     map[domain.Key]bool
	checkErr  map[domain.Key]error
	createErr error
	removeErr error
	created   []domain.Key
	removed   []domain.Key
}

func newFakeClient() *fakeClient {
	return &fakeClient{state: map[domain.Key]bool{}, checkErr: map[domain.Key]error{}}
}

func (f *fakeClient) Check(_ context.Context, key domain.Key) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkErr[key]; err != nil {
		return false, err
	}
	return f.state[key], nil
}

func (f *fakeClient) Create(_ context.Context, key domain.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.state[key] = true
	f.created = append(f.created, key)
	return nil
}

func (f *fakeClient) Remove(_ context.Context, key domain.Key) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.removeErr != nil {
		return f.removeErr
	}
	delete(f.state, key)
	f.removed = append(f.removed, key)
	return nil
}

func (f *fakeClient) List(_ context.Context) ([]domain.Bookmark, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var marks []domain.Bookmark
	for k := range f.state {
		marks = append(marks, domain.Bookmark{Key: k})
	}
	return marks, nil
}

type fakeSession struct{ loggedIn bool }

func (f fakeSession) LoggedIn(context.Context) bool { return f.loggedIn }

type fakeActivity struct {
	mu    sync.Mutex
	added []string
}

func (f *fakeActivity) BookmarkAdded(_ context.Context, resourceID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, resourceID)
}

func key(typ, id string) domain.Key { return domain.Key{Type: typ, ID: id} }

func TestCheckAllSurvivesPartialFailure(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.state[key("paper", "1")] = true
	client.state[key("paper", "3")] = true
	client.checkErr[key("paper", "2")] = errors.New("http 500")

	svc := NewBookmarkService(client, fakeSession{loggedIn: true}, nil, nil)
	keys := []domain.Key{key("paper", "1"), key("paper", "2"), key("paper", "3")}

	set := svc.CheckAll(context.Background(), keys)
	if len(set) != 3 {
		t.Fatalf("set holds %d keys, want 3", len(set))
	}
	if !set[key("paper", "1")] || !set[key("paper", "3")] {
		t.Error("successful checks lost")
	}
	if set[key("paper", "2")] {
		t.Error("failed check did not fall back to not-bookmarked")
	}
}

func TestCheckAllLoggedOutReportsAllFalse(t *testing.T) {
	t.Parallel()

	svc := NewBookmarkService(newFakeClient(), fakeSession{}, nil, nil)
	set := svc.CheckAll(context.Background(), []domain.Key{key("note", "7")})
	if set[key("note", "7")] {
		t.Error("logged-out check reported bookmarked")
	}
}

func TestToggleRequiresLogin(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	svc := NewBookmarkService(client, fakeSession{}, nil, nil)

	got, err := svc.Toggle(context.Background(), key("paper", "1"), false)
	if !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
	if got != false {
		t.Error("state flipped despite auth error")
	}
	if len(client.created) != 0 {
		t.Error("backend called despite auth error")
	}
}

func TestToggleCreatesAndTracksActivity(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	activity := &fakeActivity{}
	svc := NewBookmarkService(client, fakeSession{loggedIn: true}, activity, nil)

	got, err := svc.Toggle(context.Background(), key("paper", "42"), false)
	if err != nil {
		t.Fatal(err)
	}
	if !got {
		t.Error("toggle did not report bookmarked")
	}
	if len(activity.added) != 1 || activity.added[0] != "42" {
		t.Errorf("activity = %v, want [42]", activity.added)
	}
}

func TestToggleRemoveDoesNotTrackActivity(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.state[key("paper", "42")] = true
	activity := &fakeActivity{}
	svc := NewBookmarkService(client, fakeSession{loggedIn: true}, activity, nil)

	got, err := svc.Toggle(context.Background(), key("paper", "42"), true)
	if err != nil {
		t.Fatal(err)
	}
	if got {
		t.Error("toggle did not report removed")
	}
	if len(activity.added) != 0 {
		t.Error("removal tracked as bookmark-added")
	}
}

func TestToggleKeepsStateOnBackendError(t *testing.T) {
	t.Parallel()

	client := newFakeClient()
	client.createErr = errors.New("http 503")
	svc := NewBookmarkService(client, fakeSession{loggedIn: true}, nil, nil)

	got, err := svc.Toggle(context.Background(), key("paper", "1"), false)
	if err == nil {
		t.Fatal("expected error")
	}
	if got != false {
		t.Error("state flipped despite backend error")
	}
}

func TestToggleRejectsBadKey(t *testing.T) {
	t.Parallel()

	svc := NewBookmarkService(newFakeClient(), fakeSession{loggedIn: true}, nil, nil)
	if _, err := svc.Toggle(context.Background(), key("video", "1"), false); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Errorf("err = %v, want ErrInvalidInput", err)
	}
}
