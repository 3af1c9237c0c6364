package in

import (
	"context"

	"eduterm/internal/modules/catalog/dto"
)

type Usecase interface {
	List(ctx context.Context, input dto.ListInput) ([]dto.ResourceOutput, error)
	Upload(ctx context.Context, input dto.UploadInput) (dto.ResourceOutput, error)
	Delete(ctx context.Context, resourceType, id string) error
	Download(ctx context.Context, resourceType, id string) (dto.DownloadOutput, error)
	Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error)
	ViewURL(resourceType, id string) (string, error)
}
