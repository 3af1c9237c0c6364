package domain

import "strings"

// Entry is anything the query engine can rank: papers, notes, syllabus
// items, forum posts. Implementations with no description or tags return
// empty values; those fields simply never match.
type Entry interface {
	SearchTitle() string
	SearchBranch() string
	SearchText() []string
}

// BranchAll disables branch filtering.
const BranchAll = "all"

// Filter returns the subset of items matching query and branch, ranked so
// that title matches come before matches on other fields. Both partitions
// keep the input order (stable). An empty query matches everything. A limit
// of zero or less means unbounded.
func Filter[T Entry](items []T, query, branch string, limit int) []T {
	query = strings.ToLower(strings.TrimSpace(query))

	var titleHits, otherHits []T
	for _, item := range items {
		if branch != "" && branch != BranchAll && item.SearchBranch() != branch {
			continue
		}
		if query == "" {
			otherHits = append(otherHits, item)
			continue
		}
		title := strings.Contains(strings.ToLower(item.SearchTitle()), query)
		if title {
			titleHits = append(titleHits, item)
			continue
		}
		if matchesRest(item, query) {
			otherHits = append(otherHits, item)
		}
	}

	out := append(titleHits, otherHits...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Matches reports whether a single entry satisfies the query predicate,
// ignoring branch filtering and ranking.
func Matches[T Entry](item T, query string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.SearchTitle()), query) {
		return true
	}
	return matchesRest(item, query)
}

func matchesRest[T Entry](item T, query string) bool {
	if strings.Contains(strings.ToLower(item.SearchBranch()), query) {
		return true
	}
	for _, field := range item.SearchText() {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}
