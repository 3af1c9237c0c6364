package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"

	"eduterm/internal/modules/forum/domain"
	forumout "eduterm/internal/modules/forum/port/out"
	apperrors "eduterm/internal/platform/errors"
)

type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  forumout.TokenSource
	logger  *zap.Logger
}

func NewRESTClient(baseURL string, tokens forumout.TokenSource, logger *zap.Logger) forumout.Client {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

type postPayload struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Author     string   `json:"author"`
	Branch     string   `json:"branch"`
	Tags       []string `json:"tags"`
	CreatedAt  string   `json:"created_at"`
	ReplyCount int      `json:"reply_count"`
}

type replyPayload struct {
	ID        string `json:"id"`
	PostID    string `json:"post_id"`
	Content   string `json:"content"`
	Author    string `json:"author"`
	CreatedAt string `json:"created_at"`
}

func (p postPayload) toDomain() domain.Post {
	post := domain.Post{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		Author:     p.Author,
		Branch:     p.Branch,
		Tags:       p.Tags,
		ReplyCount: p.ReplyCount,
	}
	if at, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		post.CreatedAt = at
	}
	return post
}

func (p replyPayload) toDomain() domain.Reply {
	reply := domain.Reply{ID: p.ID, PostID: p.PostID, Content: p.Content, Author: p.Author}
	if at, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
		reply.CreatedAt = at
	}
	return reply
}

func (c *RESTClient) List(ctx context.Context) ([]domain.Post, error) {
	var payloads []postPayload
	err := retry.Do(
		func() error {
			body, err := c.get(ctx, c.baseURL+"/api/forum/posts")
			if err != nil {
				return err
			}
			defer body.Close()
			return json.NewDecoder(body).Decode(&payloads)
		},
		retry.Attempts(3),
		retry.Delay(200*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		c.logger.Warn("forum list failed", zap.Error(err))
		return nil, fmt.Errorf("%w: list posts: %s", apperrors.ErrUnavailable, err)
	}

	posts := make([]domain.Post, 0, len(payloads))
	for _, p := range payloads {
		posts = append(posts, p.toDomain())
	}
	return posts, nil
}

func (c *RESTClient) Get(ctx context.Context, postID string) (domain.Post, []domain.Reply, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/api/forum/posts/%s", c.baseURL, postID))
	if err != nil {
		return domain.Post{}, nil, fmt.Errorf("load post: %w", err)
	}
	defer body.Close()

	var payload struct {
		postPayload
		Replies []replyPayload `json:"replies"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return domain.Post{}, nil, fmt.Errorf("decode post: %w", err)
	}
	replies := make([]domain.Reply, 0, len(payload.Replies))
	for _, r := range payload.Replies {
		replies = append(replies, r.toDomain())
	}
	return payload.postPayload.toDomain(), replies, nil
}

func (c *RESTClient) CreatePost(ctx context.Context, post domain.NewPost) (domain.Post, error) {
	payload := map[string]any{
		"title":   post.Title,
		"content": post.Content,
		"branch":  post.Branch,
		"tags":    post.Tags,
	}
	var created postPayload
	if err := c.post(ctx, c.baseURL+"/api/forum/posts", payload, &created); err != nil {
		return domain.Post{}, fmt.Errorf("create post: %w", err)
	}
	c.logger.Info("forum post created", zap.String("id", created.ID))
	return created.toDomain(), nil
}

func (c *RESTClient) CreateReply(ctx context.Context, reply domain.NewReply) (domain.Reply, error) {
	url := fmt.Sprintf("%s/api/forum/posts/%s/replies", c.baseURL, reply.PostID)
	var created replyPayload
	if err := c.post(ctx, url, map[string]any{"content": reply.Content}, &created); err != nil {
		return domain.Reply{}, fmt.Errorf("create reply: %w", err)
	}
	return created.toDomain(), nil
}

func (c *RESTClient) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.authorize(ctx, req)
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if err := checkStatus(resp); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func (c *RESTClient) post(ctx context.Context, url string, payload any, result any) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *RESTClient) authorize(ctx context.Context, req *http.Request) {
	if c.tokens == nil {
		return
	}
	if token := c.tokens.Token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return apperrors.ErrAuthRequired
	case resp.StatusCode == http.StatusNotFound:
		return apperrors.ErrNotFound
	case resp.StatusCode >= 400:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("backend returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	default:
		return nil
	}
}
