package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	searchdomain "eduterm/internal/modules/search/domain"
	searchdto "eduterm/internal/modules/search/dto"
	"eduterm/internal/ui/theme"
)

// SearchQueryMsg asks the app to run a search. Seq identifies the keystroke
// generation that produced it; results for an older Seq are stale and must
// be dropped.
type SearchQueryMsg struct {
	Query string
	Seq   int
}

// SearchSubmitMsg is emitted when the user confirms a result (enter).
type SearchSubmitMsg struct {
	Query string
	Item  searchdto.ItemOutput
	OK    bool
}

// SearchCancelMsg is emitted when the user presses esc.
type SearchCancelMsg struct{}

type debounceMsg struct {
	query string
	seq   int
}

// SearchBar is the global search overlay backed by bubbles/textinput.
// Keystrokes are debounced; clearing the field resets results immediately
// without waiting out the delay.
type SearchBar struct {
	input   textinput.Model
	visible bool
	width   int

	seq     int
	results []searchdto.ItemOutput
	recent  []string
	cursor  int
}

func NewSearchBar() SearchBar {
	ti := textinput.New()
	ti.Placeholder = "search papers, notes, syllabus, forum…"
	ti.CharLimit = 256
	return SearchBar{input: ti}
}

func (s SearchBar) Visible() bool { return s.visible }

// Open shows the bar, clears the input, and returns the focus command.
func (s *SearchBar) Open(recent []string) tea.Cmd {
	s.visible = true
	s.input.SetValue("")
	s.results = nil
	s.recent = recent
	s.cursor = 0
	return s.input.Focus()
}

func (s *SearchBar) SetWidth(w int) { s.width = w }

// SetResults installs results for the given generation. Stale generations
// are ignored.
func (s *SearchBar) SetResults(seq int, results []searchdto.ItemOutput) {
	if seq != s.seq {
		return
	}
	s.results = results
	if s.cursor >= len(results) {
		s.cursor = 0
	}
}

func (s SearchBar) Update(msg tea.Msg) (SearchBar, tea.Cmd) {
	if !s.visible {
		return s, nil
	}
	switch msg := msg.(type) {
	case debounceMsg:
		// Only the latest generation's timer may fire a query.
		if msg.seq == s.seq && msg.query == s.input.Value() {
			return s, func() tea.Msg { return SearchQueryMsg{Query: msg.query, Seq: msg.seq} }
		}
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			s.visible = false
			s.input.Blur()
			return s, func() tea.Msg { return SearchCancelMsg{} }
		case "up":
			if s.cursor > 0 {
				s.cursor--
			}
			return s, nil
		case "down":
			if s.cursor < len(s.results)-1 {
				s.cursor++
			}
			return s, nil
		case "enter":
			query := strings.TrimSpace(s.input.Value())
			s.visible = false
			s.input.Blur()
			if s.cursor < len(s.results) {
				item := s.results[s.cursor]
				return s, func() tea.Msg { return SearchSubmitMsg{Query: query, Item: item, OK: true} }
			}
			return s, func() tea.Msg { return SearchSubmitMsg{Query: query} }
		}
	}

	before := s.input.Value()
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	after := s.input.Value()
	if after == before {
		return s, cmd
	}

	s.seq++
	if strings.TrimSpace(after) == "" {
		// Clearing resets synchronously; no debounce window.
		s.results = nil
		s.cursor = 0
		seq := s.seq
		return s, tea.Batch(cmd, func() tea.Msg { return SearchQueryMsg{Query: "", Seq: seq} })
	}
	seq := s.seq
	return s, tea.Batch(cmd, tea.Tick(searchdomain.DebounceDelay, func(time.Time) tea.Msg {
		return debounceMsg{query: after, seq: seq}
	}))
}

var searchStyle = func() lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Sapphire).
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(0, 1)
}

func (s SearchBar) View() string {
	if !s.visible {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Search") + "\n")
	sb.WriteString("/ " + s.input.View() + "\n")

	switch {
	case strings.TrimSpace(s.input.Value()) == "" && len(s.recent) > 0:
		sb.WriteString("\n" + theme.Muted.Render("recent") + "\n")
		for _, term := range s.recent {
			sb.WriteString(theme.Muted.Render("  "+term) + "\n")
		}
	case len(s.results) > 0:
		sb.WriteString("\n")
		for i, r := range s.results {
			if i == 6 {
				break
			}
			line := "  " + r.Title + "  " + theme.Muted.Render(r.Kind)
			if i == s.cursor {
				line = theme.Hot.Render("> " + r.Title + "  " + r.Kind)
			}
			sb.WriteString(line + "\n")
		}
	}

	w := s.width
	if w < 20 {
		w = 64
	}
	return searchStyle().Width(w - 2).Render(sb.String())
}
