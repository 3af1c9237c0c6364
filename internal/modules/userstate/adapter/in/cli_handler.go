package in

import (
	"context"

	"eduterm/internal/modules/userstate/dto"
	statein "eduterm/internal/modules/userstate/port/in"
)

type CLIHandler struct {
	usecase statein.Usecase
}

func NewCLIHandler(usecase statein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ShowPreferences(ctx context.Context) (dto.PreferencesOutput, error) {
	return h.usecase.Preferences(ctx)
}

func (h CLIHandler) SetPreferences(ctx context.Context, theme, language, density, fontSize string) error {
	input := dto.PreferencesInput{}
	if theme != "" {
		input.Theme = &theme
	}
	if language != "" {
		input.Language = &language
	}
	if density != "" {
		input.Density = &density
	}
	if fontSize != "" {
		input.FontSize = &fontSize
	}
	return h.usecase.SavePreferences(ctx, input)
}

func (h CLIHandler) ShowProgress(ctx context.Context) (dto.ProgressOutput, error) {
	return h.usecase.Progress(ctx)
}

func (h CLIHandler) Export(ctx context.Context, dir string) (dto.ExportOutput, error) {
	return h.usecase.ExportData(ctx, dir)
}

func (h CLIHandler) Import(ctx context.Context, path string) error {
	return h.usecase.ImportData(ctx, path)
}
