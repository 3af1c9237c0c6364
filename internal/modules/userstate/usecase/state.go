package usecase

import (
	"context"
	"fmt"
	"os"

	"eduterm/internal/modules/userstate/domain"
	"eduterm/internal/modules/userstate/dto"
	"eduterm/internal/modules/userstate/service"
)

// Interactor adapts the state service to the application boundary.
type Interactor struct {
	state *service.StateService
}

func NewInteractor(state *service.StateService) *Interactor {
	return &Interactor{state: state}
}

func (i *Interactor) Preferences(_ context.Context) (dto.PreferencesOutput, error) {
	p := i.state.Preferences()
	return dto.PreferencesOutput{
		Theme:         p.Theme,
		Language:      p.Language,
		EmailNotify:   p.Notifications.Email,
		PushNotify:    p.Notifications.Push,
		SoundNotify:   p.Notifications.Sound,
		Sidebar:       p.Layout.Sidebar,
		Density:       p.Layout.Density,
		ReducedMotion: p.Accessibility.ReducedMotion,
		HighContrast:  p.Accessibility.HighContrast,
		FontSize:      p.Accessibility.FontSize,
	}, nil
}

func (i *Interactor) SavePreferences(ctx context.Context, input dto.PreferencesInput) error {
	patch := domain.PreferencesPatch{
		Theme:    input.Theme,
		Language: input.Language,
	}
	if input.Density != nil {
		layout := i.state.Preferences().Layout
		layout.Density = *input.Density
		patch.Layout = &layout
	}
	if input.FontSize != nil {
		access := i.state.Preferences().Accessibility
		access.FontSize = *input.FontSize
		patch.Accessibility = &access
	}
	return i.state.SavePreferences(ctx, patch)
}

func (i *Interactor) Progress(_ context.Context) (dto.ProgressOutput, error) {
	p := i.state.Progress()
	out := dto.ProgressOutput{
		ResourcesDownloaded: p.ResourcesDownloaded,
		TestsCompleted:      p.TestsCompleted,
		StudyStreak:         p.StudyStreak,
		TotalStudyTime:      p.TotalStudyTime,
		LastActivity:        p.LastActivity,
		IsActiveUser:        p.IsActiveUser(),
		StudyLevel:          p.StudyLevel(),
	}
	for _, v := range p.RecentlyViewed {
		out.RecentlyViewed = append(out.RecentlyViewed, v.URL)
	}
	for _, a := range p.Achievements {
		out.Achievements = append(out.Achievements, dto.AchievementOutput{
			ID:          a.ID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
			UnlockedAt:  a.UnlockedAt,
		})
	}
	return out, nil
}

func (i *Interactor) Track(ctx context.Context, event domain.Event) error {
	return i.state.Track(ctx, event)
}

func (i *Interactor) SaveFormData(ctx context.Context, form string, data map[string]string) error {
	return i.state.SaveFormData(ctx, form, data)
}

func (i *Interactor) FormData(_ context.Context, form string) (map[string]string, error) {
	return i.state.FormData(form), nil
}

func (i *Interactor) ClearFormData(ctx context.Context, form string) error {
	return i.state.ClearFormData(ctx, form)
}

func (i *Interactor) SaveScrollPosition(ctx context.Context, page string, offset int) error {
	return i.state.SaveScrollPosition(ctx, page, offset)
}

func (i *Interactor) ScrollPosition(_ context.Context, page string) (int, error) {
	return i.state.ScrollPosition(page), nil
}

func (i *Interactor) SetCurrentPage(ctx context.Context, page string) error {
	return i.state.SetCurrentPage(ctx, page)
}

func (i *Interactor) ExportData(ctx context.Context, dir string) (dto.ExportOutput, error) {
	path, err := i.state.ExportData(ctx, dir)
	if err != nil {
		return dto.ExportOutput{}, err
	}
	return dto.ExportOutput{Path: path}, nil
}

func (i *Interactor) ImportData(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read import file: %w", err)
	}
	return i.state.ImportData(ctx, raw)
}
