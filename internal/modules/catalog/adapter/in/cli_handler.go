package in

import (
	"context"

	"eduterm/internal/modules/catalog/dto"
	catalogin "eduterm/internal/modules/catalog/port/in"
)

type CLIHandler struct {
	usecase catalogin.Usecase
}

func NewCLIHandler(usecase catalogin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, resourceType, query, branch string, limit int) ([]dto.ResourceOutput, error) {
	return h.usecase.List(ctx, dto.ListInput{
		Type:   resourceType,
		Query:  query,
		Branch: branch,
		Limit:  limit,
	})
}

func (h CLIHandler) Upload(ctx context.Context, resourceType, title, branch, description, year, filePath string, tags []string) (dto.ResourceOutput, error) {
	return h.usecase.Upload(ctx, dto.UploadInput{
		Type:        resourceType,
		Title:       title,
		Branch:      branch,
		Description: description,
		Tags:        tags,
		Year:        year,
		FilePath:    filePath,
	})
}

func (h CLIHandler) Delete(ctx context.Context, resourceType, id string) error {
	return h.usecase.Delete(ctx, resourceType, id)
}

func (h CLIHandler) Download(ctx context.Context, resourceType, id string) (dto.DownloadOutput, error) {
	return h.usecase.Download(ctx, resourceType, id)
}

func (h CLIHandler) Preview(ctx context.Context, resourceType, id string, page int) (dto.PreviewOutput, error) {
	return h.usecase.Preview(ctx, dto.PreviewInput{Type: resourceType, ID: id, Page: page})
}
