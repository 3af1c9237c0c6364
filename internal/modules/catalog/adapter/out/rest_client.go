package out

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/codeGROOVE-dev/retry"
	"go.uber.org/zap"

	"eduterm/internal/modules/catalog/domain"
	catalogout "eduterm/internal/modules/catalog/port/out"
	apperrors "eduterm/internal/platform/errors"
)

type RESTClient struct {
	baseURL string
	http    *http.Client
	tokens  catalogout.TokenSource
	logger  *zap.Logger
}

func NewRESTClient(baseURL string, tokens catalogout.TokenSource, logger *zap.Logger) catalogout.Client {
	return &RESTClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
		tokens:  tokens,
		logger:  logger,
	}
}

type resourcePayload struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Branch      string   `json:"branch"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Year        string   `json:"year"`
	UploadedBy  string   `json:"uploaded_by"`
	FilePath    string   `json:"file_path"`
}

func (c *RESTClient) List(ctx context.Context, resourceType domain.ResourceType) ([]domain.Resource, error) {
	url := fmt.Sprintf("%s/api/%s", c.baseURL, resourceType.Plural())

	var payloads []resourcePayload
	// List fetches are idempotent, so transient failures are retried with
	// backoff before surfacing.
	err := retry.Do(
		func() error {
			body, err := c.get(ctx, url)
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
		c.logger.Warn("resource list failed", zap.String("type", string(resourceType)), zap.Error(err))
		return nil, fmt.Errorf("%w: list %s: %s", apperrors.ErrUnavailable, resourceType.Plural(), err)
	}

	resources := make([]domain.Resource, 0, len(payloads))
	for _, p := range payloads {
		resources = append(resources, domain.Resource{
			ID:          p.ID,
			Type:        resourceType,
			Title:       p.Title,
			Branch:      p.Branch,
			Description: p.Description,
			Tags:        p.Tags,
			Year:        p.Year,
			UploadedBy:  p.UploadedBy,
			FileName:    filepath.Base(p.FilePath),
		})
	}
	return resources, nil
}

func (c *RESTClient) Upload(ctx context.Context, upload domain.Upload) (domain.Resource, error) {
	file, err := os.Open(upload.FilePath)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("open upload file: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	_ = writer.WriteField("title", upload.Title)
	_ = writer.WriteField("branch", upload.Branch)
	_ = writer.WriteField("description", upload.Description)
	_ = writer.WriteField("tags", strings.Join(upload.Tags, ","))
	if upload.Year != "" {
		_ = writer.WriteField("year", upload.Year)
	}
	part, err := writer.CreateFormFile("file", filepath.Base(upload.FilePath))
	if err != nil {
		return domain.Resource{}, fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return domain.Resource{}, fmt.Errorf("read upload file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return domain.Resource{}, fmt.Errorf("finish multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/api/%s", c.baseURL, upload.Type.Plural())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &buf)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(ctx, req)

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.Resource{}, fmt.Errorf("%w: upload: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if err := checkStatus(resp); err != nil {
		return domain.Resource{}, err
	}

	var payload resourcePayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.Resource{}, fmt.Errorf("decode upload response: %w", err)
	}
	c.logger.Info("resource uploaded", zap.String("id", payload.ID), zap.String("type", string(upload.Type)))
	return domain.Resource{
		ID:     payload.ID,
		Type:   upload.Type,
		Title:  payload.Title,
		Branch: payload.Branch,
	}, nil
}

func (c *RESTClient) Delete(ctx context.Context, resourceType domain.ResourceType, id string) error {
	url := fmt.Sprintf("%s/api/%s/%s", c.baseURL, resourceType.Plural(), id)
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, url, nil)
	if err != nil {
		return fmt.Errorf("build delete request: %w", err)
	}
	c.authorize(ctx, req)
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: delete: %s", apperrors.ErrUnavailable, err)
	}
	defer resp.Body.Close()
	return checkStatus(resp)
}

func (c *RESTClient) Download(ctx context.Context, resourceType domain.ResourceType, id, destDir string) (string, error) {
	url := fmt.Sprintf("%s/api/%s/%s/download", c.baseURL, resourceType.Plural(), id)
	body, err := c.get(ctx, url)
	if err != nil {
		return "", fmt.Errorf("%w: download: %s", apperrors.ErrUnavailable, err)
	}
	defer body.Close()

	dest := filepath.Join(destDir, id+".pdf")
	tmp := dest + ".part"
	file, err := os.Create(tmp)
	if err != nil {
		return "", fmt.Errorf("create download file: %w", err)
	}
	if _, err := io.Copy(file, body); err != nil {
		file.Close()
		_ = os.Remove(tmp)
		return "", fmt.Errorf("write download file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close download file: %w", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return "", fmt.Errorf("finalize download file: %w", err)
	}
	c.logger.Info("resource downloaded", zap.String("id", id), zap.String("path", dest))
	return dest, nil
}

func (c *RESTClient) ViewURL(resourceType domain.ResourceType, id string) string {
	return fmt.Sprintf("%s/api/%s/%s/view", c.baseURL, resourceType.Plural(), id)
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
