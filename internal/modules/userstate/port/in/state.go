package in

import (
	"context"

	"eduterm/internal/modules/userstate/domain"
	"eduterm/internal/modules/userstate/dto"
)

// Usecase is the application boundary for preferences, study progress,
// session-scoped scratch state and data portability.
type Usecase interface {
	Preferences(ctx context.Context) (dto.PreferencesOutput, error)
	SavePreferences(ctx context.Context, input dto.PreferencesInput) error

	Progress(ctx context.Context) (dto.ProgressOutput, error)
	Track(ctx context.Context, event domain.Event) error

	SaveFormData(ctx context.Context, form string, data map[string]string) error
	FormData(ctx context.Context, form string) (map[string]string, error)
	ClearFormData(ctx context.Context, form string) error
	SaveScrollPosition(ctx context.Context, page string, offset int) error
	ScrollPosition(ctx context.Context, page string) (int, error)
	SetCurrentPage(ctx context.Context, page string) error

	ExportData(ctx context.Context, dir string) (dto.ExportOutput, error)
	ImportData(ctx context.Context, path string) error
}
