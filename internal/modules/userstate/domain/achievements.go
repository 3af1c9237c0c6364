package domain

import "time"

// Rule describes one unlockable achievement. Rules are evaluated in
// declaration order and an unlocked achievement is never re-checked.
type Rule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Condition   func(Progress) bool
}

func Rules() []Rule {
	return []Rule{
		{
			ID:          "first_download",
			Name:        "First Download",
			Description: "Downloaded your first resource",
			Icon:        "📥",
			Condition:   func(p Progress) bool { return p.ResourcesDownloaded >= 1 },
		},
		{
			ID:          "heavy_downloader",
			Name:        "Heavy Downloader",
			Description: "Downloaded 50 resources",
			Icon:        "💪",
			Condition:   func(p Progress) bool { return p.ResourcesDownloaded >= 50 },
		},
		{
			ID:          "test_master",
			Name:        "Test Master",
			Description: "Completed 10 tests",
			Icon:        "🏆",
			Condition:   func(p Progress) bool { return p.TestsCompleted >= 10 },
		},
		{
			ID:          "study_streak",
			Name:        "Study Streak",
			Description: "Maintained a 7-day study streak",
			Icon:        "🔥",
			Condition:   func(p Progress) bool { return p.StudyStreak >= 7 },
		},
	}
}

// Evaluate checks every rule whose achievement is not yet held against the
// given snapshot and appends the ones that now pass, stamped with the given
// time. It returns the updated progress and the rules unlocked by this call,
// in declaration order. Evaluation is pure: same snapshot, same result.
func Evaluate(p Progress, at time.Time) (Progress, []Rule) {
	held := make(map[string]bool, len(p.Achievements))
	for _, a := range p.Achievements {
		held[a.ID] = true
	}

	var unlocked []Rule
	for _, r := range Rules() {
		if held[r.ID] || !r.Condition(p) {
			continue
		}
		p.Achievements = append(p.Achievements, Achievement{
			ID:          r.ID,
			Name:        r.Name,
			Description: r.Description,
			Icon:        r.Icon,
			UnlockedAt:  at,
		})
		unlocked = append(unlocked, r)
	}
	return p, unlocked
}
