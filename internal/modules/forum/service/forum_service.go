package service

import (
	"context"
	"fmt"
	"sync"

	"eduterm/internal/modules/forum/domain"
	"eduterm/internal/modules/forum/port/out"
	searchdomain "eduterm/internal/modules/search/domain"
	apperrors "eduterm/internal/platform/errors"
)

// ForumService fronts the forum endpoints and keeps the last opened thread
// cached, so re-opening a thread after going back is instant. Posting a
// reply drops the cached copy.
type ForumService struct {
	client  out.Client
	session out.Session

	mu           sync.Mutex
	openPostID   string
	openPost     domain.Post
	openReplies  []domain.Reply
}

func NewForumService(client out.Client, session out.Session) *ForumService {
	return &ForumService{client: client, session: session}
}

func (s *ForumService) List(ctx context.Context, query, branch string, limit int) ([]domain.Post, error) {
	posts, err := s.client.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	for i := range posts {
		posts[i].Content = domain.Sanitize(posts[i].Content)
	}
	return searchdomain.Filter(posts, query, branch, limit), nil
}

func (s *ForumService) Thread(ctx context.Context, postID string) (domain.Post, []domain.Reply, error) {
	if postID == "" {
		return domain.Post{}, nil, fmt.Errorf("%w: post id required", apperrors.ErrInvalidInput)
	}

	s.mu.Lock()
	if s.openPostID == postID {
		post, replies := s.openPost, s.openReplies
		s.mu.Unlock()
		return post, replies, nil
	}
	s.mu.Unlock()

	post, replies, err := s.client.Get(ctx, postID)
	if err != nil {
		return domain.Post{}, nil, fmt.Errorf("load thread: %w", err)
	}
	post.Content = domain.Sanitize(post.Content)
	for i := range replies {
		replies[i].Content = domain.Sanitize(replies[i].Content)
	}

	s.mu.Lock()
	s.openPostID = postID
	s.openPost = post
	s.openReplies = replies
	s.mu.Unlock()
	return post, replies, nil
}

func (s *ForumService) CreatePost(ctx context.Context, post domain.NewPost) (domain.Post, error) {
	if err := post.Validate(); err != nil {
		return domain.Post{}, err
	}
	if !s.session.LoggedIn(ctx) {
		return domain.Post{}, fmt.Errorf("create post: %w", apperrors.ErrAuthRequired)
	}
	created, err := s.client.CreatePost(ctx, post)
	if err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}
	created.Content = domain.Sanitize(created.Content)
	return created, nil
}

func (s *ForumService) CreateReply(ctx context.Context, reply domain.NewReply) (domain.Reply, error) {
	if err := reply.Validate(); err != nil {
		return domain.Reply{}, err
	}
	if !s.session.LoggedIn(ctx) {
		return domain.Reply{}, fmt.Errorf("create reply: %w", apperrors.ErrAuthRequired)
	}
	created, err := s.client.CreateReply(ctx, reply)
	if err != nil {
		return domain.Reply{}, fmt.Errorf("create reply: %w", err)
	}
	created.Content = domain.Sanitize(created.Content)

	// The cached thread is stale now.
	s.mu.Lock()
	if s.openPostID == reply.PostID {
		s.openPostID = ""
		s.openReplies = nil
	}
	s.mu.Unlock()
	return created, nil
}
