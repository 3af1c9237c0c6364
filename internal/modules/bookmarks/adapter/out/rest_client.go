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

	"eduterm/internal/modules/bookmarks/domain"
	bookmarksout "eduterm/internal/modules/bookmarks/port/out"
	apperrors "eduterm/internal/platform/errors"
)

type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  bookmarksout.TokenSource
	logger  *zap.Logger
}

func NewRESTClient(baseURL string, tokens bookmarksout.TokenSource, logger *zap.Logger) bookmarksout.Client {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

type bookmarkPayload struct {
	ResourceType string `json:"resource_type"`
	ResourceID   string `json:"resource_id"`
	Category     string `json:"category,omitempty"`
	Title        string `json:"title,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// defaultCategory is the backend's catch-all bookmark bucket.
const defaultCategory = "general"

func (c *RESTClient) Check(ctx context.Context, key domain.Key) (bool, error) {
	url := fmt.Sprintf("%s/api/bookmarks/check/%s/%s", c.baseURL, key.Type, key.ID)

	var result struct {
		Bookmarked bool `json:"bookmarked"`
	}
	err := retry.Do(
		func() error {
			req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
			if err != nil {
				return err
			}
			c.authorize(ctx, req)
			resp, err := c.http.Do(req)
			if err != nil {
				return err
			}
			defer resp.Body.Close()
			if err := checkStatus(resp); err != nil {
				return err
			}
			return json.NewDecoder(resp.Body).Decode(&result)
		},
		retry.Attempts(2),
		retry.Delay(150*time.Millisecond),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return false, fmt.Errorf("check bookmark %s/%s: %w", key.Type, key.ID, err)
	}
	return result.Bookmarked, nil
}

func (c *RESTClient) Create(ctx context.Context, key domain.Key) error {
	raw, err := json.Marshal(bookmarkPayload{ResourceType: key.Type, ResourceID: key.ID, Category: defaultCategory})
	if err != nil {
		return fmt.Errorf("encode bookmark: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/bookmarks", bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build bookmark request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: create bookmark: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return err
	}
	c.logger.Info("bookmark created", zap.String("type", key.Type), zap.String("id", key.ID))
	return nil
}

func (c *RESTClient) Remove(ctx context.Context, key domain.Key) error {
	url := fmt.Sprintf("%s/api/bookmarks/%s/%s", c.baseURL, key.Type, key.ID)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build bookmark request: %w", err)
	}
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: remove bookmark: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *RESTClient) List(ctx context.Context) ([]domain.Bookmark, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/bookmarks", nil)
	if err != nil {
		return nil, fmt.Errorf("build bookmark request: %w", err)
	}
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: list bookmarks: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return nil, err
	}

	var payloads []bookmarkPayload
	if err := json.NewDecoder(resp.Body).Decode(&payloads); err != nil {
		return nil, fmt.Errorf("decode bookmark list: %w", err)
	}
	marks := make([]domain.Bookmark, 0, len(payloads))
	for _, p := range payloads {
		mark := domain.Bookmark{
			Key:   domain.Key{Type: p.ResourceType, ID: p.ResourceID},
			Title: p.Title,
		}
		if at, err := time.Parse(time.RFC3339, p.CreatedAt); err == nil {
			mark.AddedAt = at
		}
		marks = append(marks, mark)
	}
	return marks, nil
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
