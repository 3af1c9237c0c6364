package profile

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	accountdto "eduterm/internal/modules/account/dto"
	statedto "eduterm/internal/modules/userstate/dto"
	"eduterm/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type AccountPort interface {
	CurrentUser(ctx context.Context) (accountdto.UserOutput, bool)
}

type StatePort interface {
	Preferences(ctx context.Context) (statedto.PreferencesOutput, error)
	Progress(ctx context.Context) (statedto.ProgressOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	User     accountdto.UserOutput
	LoggedIn bool
	Prefs    statedto.PreferencesOutput
	Progress statedto.ProgressOutput
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	account AccountPort
	state   StatePort

	view   viewport.Model
	loaded LoadedMsg
	width  int
	height int
}

func New(account AccountPort, state StatePort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)
	return Model{account: account, state: state, view: vp}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.Width = m.width - 4
		m.view.Height = m.height - 2

	case LoadedMsg:
		m.loaded = msg
		m.view.SetContent(m.render())

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd()
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return theme.Pane.Render(m.view.View())
}

func (m Model) render() string {
	var sb strings.Builder

	if m.loaded.LoggedIn {
		sb.WriteString(theme.Title.Render(m.loaded.User.Name) + "\n")
		sb.WriteString(theme.Muted.Render(m.loaded.User.Email) + "\n")
		if m.loaded.User.IsAdmin {
			sb.WriteString(theme.Hot.Render("admin") + "\n")
		}
	} else {
		sb.WriteString(theme.Muted.Render("not logged in") + "\n")
	}

	p := m.loaded.Progress
	sb.WriteString("\n" + theme.Title.Render("Progress") + "\n")
	sb.WriteString(fmt.Sprintf("downloads  %d\n", p.ResourcesDownloaded))
	sb.WriteString(fmt.Sprintf("tests      %d\n", p.TestsCompleted))
	sb.WriteString(fmt.Sprintf("streak     %d days\n", p.StudyStreak))
	sb.WriteString(fmt.Sprintf("level      %d\n", p.StudyLevel))
	if p.IsActiveUser {
		sb.WriteString(theme.Good.Render("active user") + "\n")
	}

	if len(p.Achievements) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Achievements") + "\n")
		for _, a := range p.Achievements {
			sb.WriteString(fmt.Sprintf("%s %s  %s\n", a.Icon, a.Name, theme.Muted.Render(a.Description)))
		}
	}

	if len(p.RecentlyViewed) > 0 {
		sb.WriteString("\n" + theme.Title.Render("Recently viewed") + "\n")
		for i, url := range p.RecentlyViewed {
			if i == 10 {
				break
			}
			sb.WriteString(theme.Muted.Render("  "+url) + "\n")
		}
	}

	prefs := m.loaded.Prefs
	sb.WriteString("\n" + theme.Title.Render("Preferences") + "\n")
	sb.WriteString(fmt.Sprintf("theme     %s\n", prefs.Theme))
	sb.WriteString(fmt.Sprintf("language  %s\n", prefs.Language))
	sb.WriteString(fmt.Sprintf("density   %s\n", prefs.Density))
	sb.WriteString(fmt.Sprintf("font      %s\n", prefs.FontSize))

	return sb.String()
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		user, loggedIn := m.account.CurrentUser(ctx)
		prefs, _ := m.state.Preferences(ctx)
		progress, _ := m.state.Progress(ctx)
		return LoadedMsg{User: user, LoggedIn: loggedIn, Prefs: prefs, Progress: progress}
	}
}
