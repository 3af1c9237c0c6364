package domain_test

import (
	"reflect"
	"testing"

	"eduterm/internal/modules/search/domain"
)

func fixture() []domain.Item {
	return []domain.Item{
		{ID: "1", Kind: domain.KindPaper, Title: "Data Structures 2023", Branch: "Computer Science Engineering", Tags: []string{"dsa", "trees"}},
		{ID: "2", Kind: domain.KindNote, Title: "Circuit Analysis", Branch: "Electrical Engineering", Description: "RLC circuits and phasors"},
		{ID: "3", Kind: domain.KindNote, Title: "Thermodynamics", Branch: "Mechanical Engineering", Tags: []string{"heat", "circuits"}},
		{ID: "4", Kind: domain.KindSyllabus, Title: "Software Engineering Syllabus", Branch: "Computer Science Engineering"},
		{ID: "5", Kind: domain.KindForum, Title: "Help with trees assignment", Branch: "Computer Science Engineering", Description: "binary search trees"},
	}
}

func ids(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestEmptyQueryAllBranchesReturnsEverythingInOrder(t *testing.T) {
	t.Parallel()
	items := fixture()
	got := domain.Filter(items, "", domain.BranchAll, 0)
	if !reflect.DeepEqual(ids(got), []string{"1", "2", "3", "4", "5"}) {
		t.Fatalf("expected original order, got %v", ids(got))
	}
}

func TestResultIsSubsetAndEveryResultMatches(t *testing.T) {
	t.Parallel()
	items := fixture()
	for _, query := range []string{"circuit", "trees", "engineering", "zzz", ""} {
		got := domain.Filter(items, query, domain.BranchAll, 0)
		if len(got) > len(items) {
			t.Fatalf("query %q: result larger than input", query)
		}
		for _, item := range got {
			if !domain.Matches(item, query) {
				t.Fatalf("query %q: item %s does not satisfy the predicate", query, item.ID)
			}
		}
	}
}

func TestTitleMatchesRankAheadOfFieldMatches(t *testing.T) {
	t.Parallel()
	// "circuit": item 2 matches on title, item 3 only on a tag.
	got := domain.Filter(fixture(), "circuit", domain.BranchAll, 0)
	if !reflect.DeepEqual(ids(got), []string{"2", "3"}) {
		t.Fatalf("title match must precede tag match, got %v", ids(got))
	}

	// "trees": item 5's title matches, item 1 only a tag; item 5 comes
	// after item 1 in the input but still ranks first.
	got = domain.Filter(fixture(), "trees", domain.BranchAll, 0)
	if !reflect.DeepEqual(ids(got), []string{"5", "1"}) {
		t.Fatalf("expected [5 1], got %v", ids(got))
	}
}

func TestFilterIsDeterministic(t *testing.T) {
	t.Parallel()
	items := fixture()
	first := domain.Filter(items, "engineering", domain.BranchAll, 0)
	second := domain.Filter(items, "engineering", domain.BranchAll, 0)
	if !reflect.DeepEqual(ids(first), ids(second)) {
		t.Fatalf("same input must produce the same order: %v vs %v", ids(first), ids(second))
	}
}

func TestBranchFilterIsConjunctive(t *testing.T) {
	t.Parallel()
	got := domain.Filter(fixture(), "trees", "Computer Science Engineering", 0)
	if !reflect.DeepEqual(ids(got), []string{"5", "1"}) {
		t.Fatalf("expected CSE-only results, got %v", ids(got))
	}
	got = domain.Filter(fixture(), "trees", "Mechanical Engineering", 0)
	if len(got) != 0 {
		t.Fatalf("no mechanical item mentions trees, got %v", ids(got))
	}
}

func TestLimitCapsResults(t *testing.T) {
	t.Parallel()
	got := domain.Filter(fixture(), "", domain.BranchAll, 2)
	if !reflect.DeepEqual(ids(got), []string{"1", "2"}) {
		t.Fatalf("expected first two items, got %v", ids(got))
	}
	got = domain.Filter(fixture(), "", domain.BranchAll, 0)
	if len(got) != 5 {
		t.Fatalf("zero limit must mean unbounded, got %d items", len(got))
	}
}

func TestMissingOptionalFieldsNeverMatchAndNeverPanic(t *testing.T) {
	t.Parallel()
	bare := []domain.Item{{ID: "x", Title: "Untitled", Branch: "Civil Engineering"}}
	if got := domain.Filter(bare, "description", domain.BranchAll, 0); len(got) != 0 {
		t.Fatalf("absent fields must not match, got %v", ids(got))
	}
	if got := domain.Filter(bare, "untitled", domain.BranchAll, 0); len(got) != 1 {
		t.Fatalf("title should still match, got %v", ids(got))
	}
}

func TestCaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()
	got := domain.Filter(fixture(), "DATA struct", domain.BranchAll, 0)
	if !reflect.DeepEqual(ids(got), []string{"1"}) {
		t.Fatalf("expected case-insensitive title match, got %v", ids(got))
	}
}
