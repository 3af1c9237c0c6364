package service

import (
	"context"
	"errors"
	"testing"

	"eduterm/internal/modules/forum/domain"
	apperrors "eduterm/internal/platform/errors"
)

type fakeClient struct {
	posts   []domain.Post
	replies map[string][]domain.Reply
	gets    int
	created []domain.NewPost
	replied []domain.NewReply
}

func (f *fakeClient) List(context.Context) ([]domain.Post, error) {
	return append([]domain.Post{}, f.posts...), nil
}

func (f *fakeClient) Get(_ context.Context, postID string) (domain.Post, []domain.Reply, error) {
	f.gets++
	for _, p := range f.posts {
		if p.ID == postID {
			return p, f.replies[postID], nil
		}
	}
	return domain.Post{}, nil, apperrors.ErrNotFound
}

func (f *fakeClient) CreatePost(_ context.Context, post domain.NewPost) (domain.Post, error) {
	f.created = append(f.created, post)
	return domain.Post{ID: "new", Title: post.Title, Content: post.Content}, nil
}

func (f *fakeClient) CreateReply(_ context.Context, reply domain.NewReply) (domain.Reply, error) {
	f.replied = append(f.replied, reply)
	return domain.Reply{ID: "r-new", PostID: reply.PostID, Content: reply.Content}, nil
}

type fakeSession struct{ loggedIn bool }

func (f fakeSession) LoggedIn(context.Context) bool { return f.loggedIn }

func TestListSanitizesAndFilters(t *testing.T) {
	t.Parallel()

	client := &fakeClient{posts: []domain.Post{
		{ID: "1", Title: "Exam tips", Content: "<b>bring</b> a calculator", Branch: "ece"},
		{ID: "2", Title: "Hostel wifi", Content: "slow again", Branch: "all"},
	}}
	svc := NewForumService(client, fakeSession{})

	posts, err := svc.List(context.Background(), "exam", "", 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
	if posts[0].Content != "bring a calculator" {
		t.Errorf("content = %q, markup survived", posts[0].Content)
	}
}

func TestThreadCachesOpenPost(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		posts:   []domain.Post{{ID: "1", Title: "Q"}},
		replies: map[string][]domain.Reply{"1": {{ID: "r1", PostID: "1", Content: "A"}}},
	}
	svc := NewForumService(client, fakeSession{loggedIn: true})
	ctx := context.Background()

	if _, _, err := svc.Thread(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Thread(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if client.gets != 1 {
		t.Errorf("backend fetched %d times for same thread, want 1", client.gets)
	}
}

func TestReplyInvalidatesThreadCache(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		posts:   []domain.Post{{ID: "1", Title: "Q"}},
		replies: map[string][]domain.Reply{"1": nil},
	}
	svc := NewForumService(client, fakeSession{loggedIn: true})
	ctx := context.Background()

	if _, _, err := svc.Thread(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateReply(ctx, domain.NewReply{PostID: "1", Content: "me too"}); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Thread(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if client.gets != 2 {
		t.Errorf("backend fetched %d times, want refetch after reply", client.gets)
	}
}

func TestCreatePostRequiresLogin(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := NewForumService(client, fakeSession{})

	_, err := svc.CreatePost(context.Background(), domain.NewPost{Title: "Q", Content: "body"})
	if !errors.Is(err, apperrors.ErrAuthRequired) {
		t.Fatalf("err = %v, want ErrAuthRequired", err)
	}
	if len(client.created) != 0 {
		t.Error("backend called while logged out")
	}
}

func TestCreatePostValidatesFirst(t *testing.T) {
	t.Parallel()

	client := &fakeClient{}
	svc := NewForumService(client, fakeSession{loggedIn: true})

	if _, err := svc.CreatePost(context.Background(), domain.NewPost{}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
	if len(client.created) != 0 {
		t.Error("backend called for invalid post")
	}
}
