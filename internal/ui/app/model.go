package app

import (
	"context"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "eduterm/internal/modules/account/dto"
	searchdto "eduterm/internal/modules/search/dto"
	shortcutsdomain "eduterm/internal/modules/shortcuts/domain"
	statedomain "eduterm/internal/modules/userstate/domain"
	statedto "eduterm/internal/modules/userstate/dto"
	"eduterm/internal/ui/components"
	"eduterm/internal/ui/theme"
	assistantview "eduterm/internal/ui/views/assistant"
	forumview "eduterm/internal/ui/views/forum"
	profileview "eduterm/internal/ui/views/profile"
	resourcesview "eduterm/internal/ui/views/resources"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type searchPort interface {
	Search(ctx context.Context, input searchdto.SearchInput) ([]searchdto.ItemOutput, error)
	RecordSearch(ctx context.Context, term string) error
	RecentSearches(ctx context.Context) ([]string, error)
}

type shortcutPort interface {
	Press(ctx context.Context, key shortcutsdomain.Key) shortcutsdomain.Action
	Bindings(ctx context.Context) []shortcutsdomain.Binding
	HasSeenHelp(ctx context.Context) bool
	MarkHelpSeen(ctx context.Context) error
}

type statePort interface {
	Preferences(ctx context.Context) (statedto.PreferencesOutput, error)
	SavePreferences(ctx context.Context, input statedto.PreferencesInput) error
	Progress(ctx context.Context) (statedto.ProgressOutput, error)
	Track(ctx context.Context, event statedomain.Event) error
	SetCurrentPage(ctx context.Context, page string) error
}

type accountPort interface {
	CurrentUser(ctx context.Context) (accountdto.UserOutput, bool)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabHome tabID = iota
	tabPapers
	tabNotes
	tabSyllabus
	tabForum
	tabAssistant
	tabProfile
	tabCount
)

var tabLabels = [tabCount]string{
	"Home", "Papers", "Notes", "Syllabus", "Forum", "Assistant", "Profile",
}

var tabPages = [tabCount]string{
	"/", "/papers", "/notes", "/syllabus", "/forum", "/assistant", "/profile",
}

// ─── async messages ──────────────────────────────────────────────────────────

type searchResultsMsg struct {
	seq     int
	results []searchdto.ItemOutput
	err     error
}

type homeLoadedMsg struct {
	progress statedto.ProgressOutput
	recent   []string
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the global
// search overlay, the shortcut dispatch, the help overlay, and the status
// bar. All business logic is delegated to port interfaces; rendering of
// each tab is delegated to sub-views.
type Model struct {
	search    searchPort
	shortcuts shortcutPort
	state     statePort
	account   accountPort
	notifier  *Notifier

	papersView    resourcesview.Model
	notesView     resourcesview.Model
	syllabusView  resourcesview.Model
	forumView     forumview.Model
	assistantView assistantview.Model
	profileView   profileview.Model

	activeTab tabID
	searchBar components.SearchBar
	showHelp  bool
	fullHelp  bool
	home      homeLoadedMsg
	status    string
	width     int
	height    int
}

func NewModel(
	search searchPort,
	shortcuts shortcutPort,
	state statePort,
	account accountPort,
	notifier *Notifier,
	catalog resourcesview.CatalogPort,
	bookmarks resourcesview.BookmarkPort,
	forum forumview.ForumPort,
	assistant assistantview.AssistantPort,
) Model {
	m := Model{
		search:        search,
		shortcuts:     shortcuts,
		state:         state,
		account:       account,
		notifier:      notifier,
		papersView:    resourcesview.New(catalog, bookmarks, "paper", "Papers"),
		notesView:     resourcesview.New(catalog, bookmarks, "note", "Notes"),
		syllabusView:  resourcesview.New(catalog, bookmarks, "syllabus", "Syllabus"),
		forumView:     forumview.New(forum),
		assistantView: assistantview.New(assistant),
		profileView:   profileview.New(account, state),
		searchBar:     components.NewSearchBar(),
		activeTab:     tabHome,
		status:        "ready",
	}

	// Apply the persisted theme before the first render.
	if prefs, err := state.Preferences(context.Background()); err == nil {
		theme.Use(prefs.Theme != "light")
	}
	// First launch shows the shortcut help once.
	if !shortcuts.HasSeenHelp(context.Background()) {
		m.showHelp = true
		_ = shortcuts.MarkHelpSeen(context.Background())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.papersView.Init(),
		m.notesView.Init(),
		m.syllabusView.Init(),
		m.forumView.Init(),
		m.profileView.Init(),
		m.loadHomeCmd(),
		m.notifier.Listen(),
	)
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.searchBar.SetWidth(min(m.width-4, 80))
		m.propagateSize()
		return m, nil

	case NoticeMsg:
		switch msg.Level {
		case "error":
			m.status = theme.Bad.Render(msg.Title) + "  " + msg.Detail
		case "ok":
			m.status = theme.Good.Render(msg.Title) + "  " + msg.Detail
		default:
			m.status = msg.Title + "  " + msg.Detail
		}
		return m, m.notifier.Listen()

	case homeLoadedMsg:
		m.home = msg
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.status = "search: " + msg.err.Error()
			return m, nil
		}
		m.searchBar.SetResults(msg.seq, msg.results)
		return m, nil

	case components.SearchQueryMsg:
		if msg.Query == "" {
			m.searchBar.SetResults(msg.Seq, nil)
			return m, nil
		}
		return m, m.searchCmd(msg.Query, msg.Seq)

	case components.SearchSubmitMsg:
		if msg.Query != "" {
			cmds = append(cmds, func() tea.Msg {
				_ = m.search.RecordSearch(context.Background(), msg.Query)
				return nil
			})
		}
		if msg.OK {
			m.jumpToResult(msg.Item)
			cmds = append(cmds, m.trackPageCmd(tabPages[m.activeTab]))
		}
		return m, tea.Batch(cmds...)

	case components.SearchCancelMsg:
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActiveView(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// The search overlay intercepts all input while open.
	if m.searchBar.Visible() {
		var cmd tea.Cmd
		m.searchBar, cmd = m.searchBar.Update(msg)
		return m, cmd
	}

	if m.showHelp {
		switch msg.String() {
		case "?", "esc", "q":
			m.showHelp = false
			m.fullHelp = false
		}
		return m, nil
	}

	action := m.shortcuts.Press(context.Background(), toShortcutKey(msg, m.typing()))
	switch action {
	case shortcutsdomain.ActionNavigateHome:
		return m.switchTab(tabHome)
	case shortcutsdomain.ActionNavigatePapers:
		return m.switchTab(tabPapers)
	case shortcutsdomain.ActionNavigateNotes:
		return m.switchTab(tabNotes)
	case shortcutsdomain.ActionNavigateSyllabus:
		return m.switchTab(tabSyllabus)
	case shortcutsdomain.ActionNavigateForum:
		return m.switchTab(tabForum)
	case shortcutsdomain.ActionNavigateProfile:
		return m.switchTab(tabProfile)
	case shortcutsdomain.ActionShowHelp:
		m.showHelp = true
		return m, nil
	case shortcutsdomain.ActionDetailedHelp:
		m.showHelp = true
		m.fullHelp = true
		return m, nil
	case shortcutsdomain.ActionFocusSearch:
		recent, _ := m.search.RecentSearches(context.Background())
		return m, m.searchBar.Open(recent)
	case shortcutsdomain.ActionToggleTheme:
		return m.toggleTheme()
	}

	if !m.typing() {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "tab":
			return m.switchTab((m.activeTab + 1) % tabCount)
		case "shift+tab":
			return m.switchTab((m.activeTab + tabCount - 1) % tabCount)
		case "a":
			if m.activeTab == tabHome {
				return m.switchTab(tabAssistant)
			}
		}
	}

	return m.updateActiveView(msg)
}

func (m Model) switchTab(tab tabID) (tea.Model, tea.Cmd) {
	m.activeTab = tab
	cmds := []tea.Cmd{m.trackPageCmd(tabPages[tab])}
	if tab == tabHome {
		cmds = append(cmds, m.loadHomeCmd())
	}
	return m, tea.Batch(cmds...)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	next := "dark"
	if theme.Dark() {
		next = "light"
	}
	theme.Use(next != "light")
	return m, func() tea.Msg {
		_ = m.state.SavePreferences(context.Background(), statedto.PreferencesInput{Theme: &next})
		return nil
	}
}

// jumpToResult navigates to the tab that owns a search result.
func (m *Model) jumpToResult(item searchdto.ItemOutput) {
	switch item.Kind {
	case "paper":
		m.activeTab = tabPapers
	case "note":
		m.activeTab = tabNotes
	case "syllabus":
		m.activeTab = tabSyllabus
	case "forum":
		m.activeTab = tabForum
	}
	m.status = "found: " + item.Title
}

// typing reports whether any text input currently owns the keyboard, in
// which case shortcut dispatch must treat keys as input.
func (m Model) typing() bool {
	switch m.activeTab {
	case tabPapers:
		return m.papersView.Filtering()
	case tabNotes:
		return m.notesView.Filtering()
	case tabSyllabus:
		return m.syllabusView.Filtering()
	case tabForum:
		return m.forumView.Filtering() || m.forumView.Typing()
	case tabAssistant:
		return m.assistantView.Typing()
	}
	return false
}

func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.activeTab {
	case tabPapers:
		m.papersView, cmd = m.papersView.Update(msg)
	case tabNotes:
		m.notesView, cmd = m.notesView.Update(msg)
	case tabSyllabus:
		m.syllabusView, cmd = m.syllabusView.Update(msg)
	case tabForum:
		m.forumView, cmd = m.forumView.Update(msg)
	case tabAssistant:
		m.assistantView, cmd = m.assistantView.Update(msg)
	case tabProfile:
		m.profileView, cmd = m.profileView.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(tabBar) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.renderHelp())
	case m.searchBar.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.searchBar.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabHome:
		return m.renderHome()
	case tabPapers:
		return m.papersView.View()
	case tabNotes:
		return m.notesView.View()
	case tabSyllabus:
		return m.syllabusView.View()
	case tabForum:
		return m.forumView.View()
	case tabAssistant:
		return m.assistantView.View()
	case tabProfile:
		return m.profileView.View()
	}
	return ""
}

func (m Model) renderHome() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("EduTerm") + "\n")
	if user, ok := m.account.CurrentUser(context.Background()); ok {
		sb.WriteString("welcome back, " + user.Name + "\n")
	} else {
		sb.WriteString(theme.Muted.Render("log in with `eduterm login` to download and post") + "\n")
	}

	p := m.home.progress
	sb.WriteString("\n")
	sb.WriteString(theme.Muted.Render("downloads") + "  " + theme.Hot.Render(strconv.Itoa(p.ResourcesDownloaded)) + "   ")
	sb.WriteString(theme.Muted.Render("tests") + "  " + theme.Hot.Render(strconv.Itoa(p.TestsCompleted)) + "   ")
	sb.WriteString(theme.Muted.Render("level") + "  " + theme.Hot.Render(strconv.Itoa(p.StudyLevel)) + "\n")

	if len(m.home.recent) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recent searches") + "\n")
		for _, term := range m.home.recent {
			sb.WriteString(theme.Muted.Render("  "+term) + "\n")
		}
	}
	if len(p.Achievements) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Achievements") + "\n")
		for _, a := range p.Achievements {
			sb.WriteString("  " + a.Icon + " " + a.Name + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("g p papers  g n notes  g s syllabus  g f forum  ctrl+k search  ? help"))
	return theme.Pane.Render(sb.String())
}

func (m Model) renderHelp() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Keyboard shortcuts") + "\n\n")
	for _, b := range m.shortcuts.Bindings(context.Background()) {
		sb.WriteString(theme.Hot.Render(pad(b.Keys, 14)) + theme.Muted.Render(b.Description) + "\n")
	}
	if m.fullHelp {
		sb.WriteString("\n" + theme.Title.Render("In lists") + "\n\n")
		extra := []shortcutsdomain.Binding{
			{Keys: "enter", Description: "Download selected resource"},
			{Keys: "v", Description: "Preview selected PDF"},
			{Keys: "b", Description: "Toggle bookmark"},
			{Keys: "/", Description: "Filter the current list"},
			{Keys: "r", Description: "Reload"},
			{Keys: "tab", Description: "Next tab"},
			{Keys: "q", Description: "Quit"},
		}
		for _, b := range extra {
			sb.WriteString(theme.Hot.Render(pad(b.Keys, 14)) + theme.Muted.Render(b.Description) + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("esc to close"))
	return theme.PaneActive.Render(sb.String())
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "eduterm  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if user, ok := m.account.CurrentUser(context.Background()); ok {
		left = theme.Good.Render("● "+user.Name) + "  " + left
	}
	right := theme.Muted.Render("?:help  ctrl+k:search  tab:switch  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

// toShortcutKey normalizes a Bubble Tea key event for the dispatcher.
func toShortcutKey(msg tea.KeyMsg, typing bool) shortcutsdomain.Key {
	raw := msg.String()
	key := shortcutsdomain.Key{FromInput: typing}
	switch {
	case raw == "esc":
		key.Name = "escape"
	case strings.HasPrefix(raw, "ctrl+shift+"):
		key.Ctrl = true
		key.Shift = true
		key.Name = strings.TrimPrefix(raw, "ctrl+shift+")
	case strings.HasPrefix(raw, "ctrl+"):
		key.Ctrl = true
		key.Name = strings.TrimPrefix(raw, "ctrl+")
	case strings.HasPrefix(raw, "alt+"):
		key.Name = "" // alt combos are not bound
	default:
		key.Name = raw
	}
	return key
}

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.papersView, _ = m.papersView.Update(sz)
	m.notesView, _ = m.notesView.Update(sz)
	m.syllabusView, _ = m.syllabusView.Update(sz)
	m.forumView, _ = m.forumView.Update(sz)
	m.assistantView, _ = m.assistantView.Update(sz)
	m.profileView, _ = m.profileView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) searchCmd(query string, seq int) tea.Cmd {
	return func() tea.Msg {
		results, err := m.search.Search(context.Background(), searchdto.SearchInput{Query: query, Limit: 6})
		return searchResultsMsg{seq: seq, results: results, err: err}
	}
}

func (m Model) loadHomeCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		progress, _ := m.state.Progress(ctx)
		recent, _ := m.search.RecentSearches(ctx)
		return homeLoadedMsg{progress: progress, recent: recent}
	}
}

func (m Model) trackPageCmd(page string) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		_ = m.state.SetCurrentPage(ctx, page)
		_ = m.state.Track(ctx, statedomain.Event{Kind: statedomain.EventPageViewed, PageURL: page})
		return nil
	}
}

func pad(s string, width int) string {
	for len(s) < width {
		s += " "
	}
	return s
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
