package domain

import (
	"testing"
	"time"
)

func TestEvaluateUnlocksInDeclarationOrder(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	p := Progress{ResourcesDownloaded: 50, TestsCompleted: 10}

	p, unlocked := Evaluate(p, now)
	want := []string{"first_download", "heavy_downloader", "test_master"}
	if len(unlocked) != len(want) {
		t.Fatalf("unlocked %d rules, want %d", len(unlocked), len(want))
	}
	for i, id := range want {
		if unlocked[i].ID != id {
			t.Errorf("unlocked[%d] = %s, want %s", i, unlocked[i].ID, id)
		}
		if p.Achievements[i].UnlockedAt != now {
			t.Errorf("achievement %s not stamped with evaluation time", id)
		}
	}
}

func TestEvaluateSkipsAlreadyUnlocked(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	p := Progress{ResourcesDownloaded: 1}

	p, unlocked := Evaluate(p, now)
	if len(unlocked) != 1 || unlocked[0].ID != "first_download" {
		t.Fatalf("first pass unlocked %v", unlocked)
	}

	p, unlocked = Evaluate(p, now.Add(time.Hour))
	if len(unlocked) != 0 {
		t.Fatalf("second pass re-unlocked %v", unlocked)
	}
	if len(p.Achievements) != 1 {
		t.Fatalf("achievements duplicated: %d entries", len(p.Achievements))
	}
}

func TestEvaluateIsPure(t *testing.T) {
	t.Parallel()

	p := Progress{StudyStreak: 7}
	a, ua := Evaluate(p, time.Time{})
	b, ub := Evaluate(p, time.Time{})
	if len(ua) != len(ub) || len(a.Achievements) != len(b.Achievements) {
		t.Fatal("same snapshot produced different results")
	}
}
