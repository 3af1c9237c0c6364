package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	searchdto "eduterm/internal/modules/search/dto"
)

func typeRune(t *testing.T, s SearchBar, r rune) SearchBar {
	t.Helper()
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return s
}

func TestSetResultsDropsStaleGeneration(t *testing.T) {
	t.Parallel()

	s := NewSearchBar()
	s.Open(nil)
	s = typeRune(t, s, 'q')
	s = typeRune(t, s, 'u')

	// Results for the first keystroke arrive after the second one already
	// advanced the generation. They must not be shown.
	s.SetResults(1, []searchdto.ItemOutput{{Title: "Quarks 101"}})
	if len(s.results) != 0 {
		t.Fatalf("stale results were installed: %v", s.results)
	}

	s.SetResults(2, []searchdto.ItemOutput{{Title: "Quantum Mechanics"}})
	if len(s.results) != 1 || s.results[0].Title != "Quantum Mechanics" {
		t.Fatalf("current results = %v", s.results)
	}
}

func TestSetResultsClampsCursor(t *testing.T) {
	t.Parallel()

	s := NewSearchBar()
	s.Open(nil)
	s = typeRune(t, s, 'q')
	s.SetResults(1, []searchdto.ItemOutput{{Title: "a"}, {Title: "b"}, {Title: "c"}})
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})
	s, _ = s.Update(tea.KeyMsg{Type: tea.KeyDown})

	s = typeRune(t, s, 'u')
	s.SetResults(2, []searchdto.ItemOutput{{Title: "a"}})
	if s.cursor != 0 {
		t.Errorf("cursor = %d after shorter result set, want 0", s.cursor)
	}
}
