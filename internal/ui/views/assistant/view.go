package assistant

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	assistantdomain "eduterm/internal/modules/assistant/domain"
	"eduterm/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AssistantPort interface {
	Send(ctx context.Context, message string) (assistantdomain.Message, error)
	Transcript(ctx context.Context) []assistantdomain.Message
	Clear(ctx context.Context)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ReplyMsg struct {
	Err error
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port AssistantPort

	transcript viewport.Model
	input      textinput.Model
	waiting    bool
	status     string
	width      int
	height     int
}

func New(port AssistantPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	ti := textinput.New()
	ti.Placeholder = "ask about your coursework…"
	ti.CharLimit = 2000

	return Model{port: port, transcript: vp, input: ti}
}

func (m Model) Init() tea.Cmd {
	return nil
}

// Typing reports whether the message input owns the keyboard.
func (m Model) Typing() bool { return m.input.Focused() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.transcript.Width = m.width - 4
		m.transcript.Height = m.height - 4
		m.input.Width = m.width - 6

	case ReplyMsg:
		m.waiting = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
		} else {
			m.status = ""
		}
		m.refresh()

	case tea.KeyMsg:
		if m.input.Focused() {
			switch msg.String() {
			case "esc":
				m.input.Blur()
			case "enter":
				text := strings.TrimSpace(m.input.Value())
				if text != "" && !m.waiting {
					m.input.SetValue("")
					m.waiting = true
					m.status = "thinking…"
					cmds = append(cmds, m.sendCmd(text))
					m.refresh()
				}
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
		switch msg.String() {
		case "i", "enter":
			cmds = append(cmds, m.input.Focus())
		case "c":
			m.port.Clear(context.Background())
			m.refresh()
		}
	}

	var cmd tea.Cmd
	m.transcript, cmd = m.transcript.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := theme.Pane.Render(m.transcript.View())
	body += "\n> " + m.input.View()
	if m.status != "" {
		body += "\n" + theme.Muted.Render(m.status)
	} else if !m.input.Focused() {
		body += "\n" + theme.Muted.Render("i ask  c clear")
	}
	return body
}

func (m *Model) refresh() {
	var sb strings.Builder
	for _, msg := range m.port.Transcript(context.Background()) {
		switch msg.Role {
		case assistantdomain.RoleUser:
			sb.WriteString(theme.Hot.Render("you") + "  " + msg.Content + "\n\n")
		default:
			sb.WriteString(theme.Title.Render("ai") + "   " + msg.Content + "\n\n")
		}
	}
	m.transcript.SetContent(sb.String())
	m.transcript.GotoBottom()
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) sendCmd(text string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.Send(context.Background(), text)
		return ReplyMsg{Err: err}
	}
}
