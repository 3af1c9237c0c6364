package domain

import "time"

// RecentlyViewedMax bounds the page-view history ring.
const RecentlyViewedMax = 20

type BookmarkRef struct {
	ResourceID string    `json:"resourceId"`
	AddedAt    time.Time `json:"addedAt"`
}

type PageView struct {
	URL      string    `json:"url"`
	ViewedAt time.Time `json:"viewedAt"`
}

type Achievement struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	UnlockedAt  time.Time `json:"unlockedAt"`
}

type Goal struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Target int    `json:"target"`
	Done   bool   `json:"done"`
}

// Progress accumulates study activity across sessions. Counters only ever
// grow through activity tracking; wholesale replacement happens on import.
type Progress struct {
	ResourcesDownloaded int           `json:"resourcesDownloaded"`
	TestsCompleted      int           `json:"testsCompleted"`
	StudyStreak         int           `json:"studyStreak"`
	TotalStudyTime      int           `json:"totalStudyTime"` // minutes
	LastActivity        time.Time     `json:"lastActivity"`
	Bookmarks           []BookmarkRef `json:"bookmarks"`
	RecentlyViewed      []PageView    `json:"recentlyViewed"`
	Achievements        []Achievement `json:"achievements"`
	Goals               []Goal        `json:"goals"`
}

func DefaultProgress() Progress {
	return Progress{}
}

// ProgressPatch is a partial update, same shallow-merge contract as
// PreferencesPatch.
type ProgressPatch struct {
	ResourcesDownloaded *int
	TestsCompleted      *int
	StudyStreak         *int
	TotalStudyTime      *int
	Bookmarks           *[]BookmarkRef
	RecentlyViewed      *[]PageView
	Goals               *[]Goal
}

func (p Progress) Merge(patch ProgressPatch) Progress {
	if patch.ResourcesDownloaded != nil {
		p.ResourcesDownloaded = *patch.ResourcesDownloaded
	}
	if patch.TestsCompleted != nil {
		p.TestsCompleted = *patch.TestsCompleted
	}
	if patch.StudyStreak != nil {
		p.StudyStreak = *patch.StudyStreak
	}
	if patch.TotalStudyTime != nil {
		p.TotalStudyTime = *patch.TotalStudyTime
	}
	if patch.Bookmarks != nil {
		p.Bookmarks = *patch.Bookmarks
	}
	if patch.RecentlyViewed != nil {
		p.RecentlyViewed = *patch.RecentlyViewed
	}
	if patch.Goals != nil {
		p.Goals = *patch.Goals
	}
	return p
}

// WithPageView prepends a page view and trims the ring to its cap.
func (p Progress) WithPageView(url string, at time.Time) Progress {
	views := make([]PageView, 0, len(p.RecentlyViewed)+1)
	views = append(views, PageView{URL: url, ViewedAt: at})
	views = append(views, p.RecentlyViewed...)
	if len(views) > RecentlyViewedMax {
		views = views[:RecentlyViewedMax]
	}
	p.RecentlyViewed = views
	return p
}

// HasAchievements reports whether any achievement has been unlocked.
func (p Progress) HasAchievements() bool {
	return len(p.Achievements) > 0
}

// IsActiveUser marks users past the light-usage threshold.
func (p Progress) IsActiveUser() bool {
	return p.ResourcesDownloaded > 10 || p.TestsCompleted > 5
}

// StudyLevel is a coarse progression score derived from the counters.
func (p Progress) StudyLevel() int {
	return p.ResourcesDownloaded/10 + p.TestsCompleted/5
}
