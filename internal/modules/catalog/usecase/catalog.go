package usecase

import (
	"context"

	"eduterm/internal/modules/catalog/domain"
	"eduterm/internal/modules/catalog/dto"
	catalogin "eduterm/internal/modules/catalog/port/in"
	"eduterm/internal/modules/catalog/service"
)

type Interactor struct {
	svc *service.CatalogService
}

func NewInteractor(svc *service.CatalogService) catalogin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) List(ctx context.Context, input dto.ListInput) ([]dto.ResourceOutput, error) {
	resources, err := i.svc.List(ctx, domain.ResourceType(input.Type), input.Query, input.Branch, input.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ResourceOutput, 0, len(resources))
	for _, resource := range resources {
		out = append(out, toOutput(resource))
	}
	return out, nil
}

func (i *Interactor) Upload(ctx context.Context, input dto.UploadInput) (dto.ResourceOutput, error) {
	resource, err := i.svc.Upload(ctx, domain.Upload{
		Type:        domain.ResourceType(input.Type),
		Title:       input.Title,
		Branch:      input.Branch,
		Description: input.Description,
		Tags:        input.Tags,
		Year:        input.Year,
		FilePath:    input.FilePath,
	})
	if err != nil {
		return dto.ResourceOutput{}, err
	}
	return toOutput(resource), nil
}

func (i *Interactor) Delete(ctx context.Context, resourceType, id string) error {
	return i.svc.Delete(ctx, domain.ResourceType(resourceType), id)
}

func (i *Interactor) Download(ctx context.Context, resourceType, id string) (dto.DownloadOutput, error) {
	path, err := i.svc.Download(ctx, domain.ResourceType(resourceType), id)
	if err != nil {
		return dto.DownloadOutput{}, err
	}
	return dto.DownloadOutput{Path: path}, nil
}

func (i *Interactor) Preview(ctx context.Context, input dto.PreviewInput) (dto.PreviewOutput, error) {
	page, err := i.svc.Preview(ctx, domain.ResourceType(input.Type), input.ID, input.Page)
	if err != nil {
		return dto.PreviewOutput{}, err
	}
	return dto.PreviewOutput{Page: page.Number, Total: page.Total, Text: page.Text}, nil
}

func (i *Interactor) ViewURL(resourceType, id string) (string, error) {
	return i.svc.ViewURL(domain.ResourceType(resourceType), id)
}

func toOutput(resource domain.Resource) dto.ResourceOutput {
	return dto.ResourceOutput{
		ID:          resource.ID,
		Type:        string(resource.Type),
		Title:       resource.Title,
		Branch:      resource.Branch,
		Description: resource.Description,
		Tags:        resource.Tags,
		Year:        resource.Year,
		UploadedBy:  resource.UploadedBy,
	}
}
