package forum

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	forumdto "eduterm/internal/modules/forum/dto"
	"eduterm/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ForumPort interface {
	List(ctx context.Context, query, branch string, limit int) ([]forumdto.PostOutput, error)
	Thread(ctx context.Context, postID string) (forumdto.ThreadOutput, error)
	CreateReply(ctx context.Context, input forumdto.NewReplyInput) (forumdto.ReplyOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type PostsLoadedMsg struct {
	Posts []forumdto.PostOutput
	Err   error
}

type ThreadLoadedMsg struct {
	Thread forumdto.ThreadOutput
	Err    error
}

type ReplyPostedMsg struct {
	PostID string
	Err    error
}

// ─── list item ───────────────────────────────────────────────────────────────

type postItem struct {
	post forumdto.PostOutput
}

func (i postItem) Title() string { return i.post.Title }
func (i postItem) Description() string {
	return fmt.Sprintf("%s  %d replies  %s", i.post.Author, i.post.ReplyCount, i.post.Branch)
}
func (i postItem) FilterValue() string { return i.post.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port ForumPort

	list     list.Model
	thread   viewport.Model
	reply    textarea.Model
	loading  bool
	open     bool
	replying bool
	openID   string
	status   string
	width    int
	height   int
}

func New(port ForumPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Forum"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	ta := textarea.New()
	ta.Placeholder = "write a reply…"
	ta.CharLimit = 4000
	ta.SetHeight(4)

	return Model{port: port, list: l, thread: vp, reply: ta, loading: true}
}

func (m Model) Init() tea.Cmd {
	return m.loadPostsCmd()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Typing reports whether the reply editor owns the keyboard.
func (m Model) Typing() bool { return m.replying }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case PostsLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			break
		}
		m.status = fmt.Sprintf("%d posts", len(msg.Posts))
		items := make([]list.Item, len(msg.Posts))
		for i, p := range msg.Posts {
			items[i] = postItem{post: p}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case ThreadLoadedMsg:
		if msg.Err != nil {
			m.status = "thread: " + msg.Err.Error()
			break
		}
		m.open = true
		m.openID = msg.Thread.Post.ID
		m.thread.SetContent(renderThread(msg.Thread))
		m.thread.GotoTop()

	case ReplyPostedMsg:
		m.replying = false
		m.reply.Blur()
		m.reply.Reset()
		if msg.Err != nil {
			m.status = "reply: " + msg.Err.Error()
			break
		}
		m.status = "reply posted"
		cmds = append(cmds, m.loadThreadCmd(msg.PostID))

	case tea.KeyMsg:
		if m.replying {
			switch msg.String() {
			case "esc":
				m.replying = false
				m.reply.Blur()
			case "ctrl+s":
				content := strings.TrimSpace(m.reply.Value())
				if content != "" {
					cmds = append(cmds, m.postReplyCmd(m.openID, content))
				}
			default:
				var cmd tea.Cmd
				m.reply, cmd = m.reply.Update(msg)
				cmds = append(cmds, cmd)
			}
			return m, tea.Batch(cmds...)
		}
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if !m.open {
				if item, ok := m.list.SelectedItem().(postItem); ok {
					cmds = append(cmds, m.loadThreadCmd(item.post.ID))
				}
			}
		case "a":
			if m.open {
				m.replying = true
				cmds = append(cmds, m.reply.Focus())
			}
		case "esc":
			m.open = false
			m.openID = ""
		case "r":
			m.loading = true
			cmds = append(cmds, m.loadPostsCmd())
		}
	}

	var cmd tea.Cmd
	if m.open {
		m.thread, cmd = m.thread.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render("loading…")
	}
	if m.open {
		body := theme.PaneActive.Render(m.thread.View())
		if m.replying {
			body += "\n" + m.reply.View() + "\n" + theme.Muted.Render("ctrl+s send  esc cancel")
		} else {
			body += "\n" + theme.Muted.Render("a reply  esc back")
		}
		return body
	}
	body := m.list.View()
	if m.status != "" {
		body += "\n" + theme.Muted.Render(m.status)
	}
	return body
}

func renderThread(thread forumdto.ThreadOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(thread.Post.Title) + "\n")
	sb.WriteString(theme.Muted.Render(thread.Post.Author) + "\n\n")
	sb.WriteString(thread.Post.Content + "\n")
	for _, r := range thread.Replies {
		sb.WriteString("\n" + theme.Muted.Render("── "+r.Author) + "\n")
		sb.WriteString(r.Content + "\n")
	}
	return sb.String()
}

func (m *Model) resize() {
	listH := m.height - 2
	if listH < 3 {
		listH = 3
	}
	m.list.SetSize(m.width, listH)
	m.thread.Width = m.width - 4
	m.thread.Height = listH - 6
	m.reply.SetWidth(m.width - 4)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadPostsCmd() tea.Cmd {
	return func() tea.Msg {
		posts, err := m.port.List(context.Background(), "", "", 0)
		return PostsLoadedMsg{Posts: posts, Err: err}
	}
}

func (m Model) loadThreadCmd(postID string) tea.Cmd {
	return func() tea.Msg {
		thread, err := m.port.Thread(context.Background(), postID)
		return ThreadLoadedMsg{Thread: thread, Err: err}
	}
}

func (m Model) postReplyCmd(postID, content string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.port.CreateReply(context.Background(), forumdto.NewReplyInput{PostID: postID, Content: content})
		return ReplyPostedMsg{PostID: postID, Err: err}
	}
}
