package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"eduterm/internal/modules/catalog/domain"
	catalogout "eduterm/internal/modules/catalog/port/out"
	searchdomain "eduterm/internal/modules/search/domain"
	apperrors "eduterm/internal/platform/errors"
)

type CatalogService struct {
	client    catalogout.Client
	previewer catalogout.Previewer
	session   catalogout.Session
	activity  catalogout.ActivitySink
	cacheDir  string
}

func NewCatalogService(client catalogout.Client, previewer catalogout.Previewer, session catalogout.Session, activity catalogout.ActivitySink, cacheDir string) *CatalogService {
	return &CatalogService{client: client, previewer: previewer, session: session, activity: activity, cacheDir: cacheDir}
}

// List fetches the current snapshot and runs it through the query engine.
// Query and branch may both be empty, returning the list unfiltered.
func (s *CatalogService) List(ctx context.Context, resourceType domain.ResourceType, query, branch string, limit int) ([]domain.Resource, error) {
	if err := resourceType.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	resources, err := s.client.List(ctx, resourceType)
	if err != nil {
		return nil, err
	}
	return searchdomain.Filter(resources, query, branch, limit), nil
}

func (s *CatalogService) Upload(ctx context.Context, upload domain.Upload) (domain.Resource, error) {
	if err := upload.Validate(); err != nil {
		return domain.Resource{}, fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	if !s.session.IsAdmin(ctx) {
		return domain.Resource{}, apperrors.ErrAuthRequired
	}
	if _, err := os.Stat(upload.FilePath); err != nil {
		return domain.Resource{}, fmt.Errorf("%w: file %s is not readable", apperrors.ErrInvalidInput, upload.FilePath)
	}
	return s.client.Upload(ctx, upload)
}

func (s *CatalogService) Delete(ctx context.Context, resourceType domain.ResourceType, id string) error {
	if err := resourceType.Validate(); err != nil {
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	if !s.session.IsAdmin(ctx) {
		return apperrors.ErrAuthRequired
	}
	return s.client.Delete(ctx, resourceType, id)
}

// Download requires a logged-in user, saves the PDF under the cache dir, and
// reports the download as activity once the file is on disk.
func (s *CatalogService) Download(ctx context.Context, resourceType domain.ResourceType, id string) (string, error) {
	if err := resourceType.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	if !s.session.LoggedIn(ctx) {
		return "", apperrors.ErrAuthRequired
	}
	destDir := filepath.Join(s.cacheDir, resourceType.Plural())
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}
	path, err := s.client.Download(ctx, resourceType, id, destDir)
	if err != nil {
		return "", err
	}
	if s.activity != nil {
		s.activity.ResourceDownloaded(ctx, id)
	}
	return path, nil
}

// Preview downloads the resource if needed and renders one page as text.
func (s *CatalogService) Preview(ctx context.Context, resourceType domain.ResourceType, id string, page int) (domain.PreviewPage, error) {
	if page < 1 {
		page = 1
	}
	path, err := s.Download(ctx, resourceType, id)
	if err != nil {
		return domain.PreviewPage{}, err
	}
	return s.previewer.ReadPage(ctx, path, page)
}

func (s *CatalogService) ViewURL(resourceType domain.ResourceType, id string) (string, error) {
	if err := resourceType.Validate(); err != nil {
		return "", fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, err)
	}
	return s.client.ViewURL(resourceType, id), nil
}
