package dto

import "time"

type PreferencesOutput struct {
	Theme         string
	Language      string
	EmailNotify   bool
	PushNotify    bool
	SoundNotify   bool
	Sidebar       bool
	Density       string
	ReducedMotion bool
	HighContrast  bool
	FontSize      string
}

type PreferencesInput struct {
	Theme    *string
	Language *string
	Density  *string
	FontSize *string
}

type AchievementOutput struct {
	ID          string
	Name        string
	Description string
	Icon        string
	UnlockedAt  time.Time
}

type ProgressOutput struct {
	ResourcesDownloaded int
	TestsCompleted      int
	StudyStreak         int
	TotalStudyTime      int
	LastActivity        time.Time
	RecentlyViewed      []string
	Achievements        []AchievementOutput
	IsActiveUser        bool
	StudyLevel          int
}

type ExportOutput struct {
	Path string
}
