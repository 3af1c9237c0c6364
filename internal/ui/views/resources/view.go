package resources

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	bookmarksdomain "eduterm/internal/modules/bookmarks/domain"
	bookmarksdto "eduterm/internal/modules/bookmarks/dto"
	catalogdto "eduterm/internal/modules/catalog/dto"
	"eduterm/internal/ui/theme"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type CatalogPort interface {
	List(ctx context.Context, input catalogdto.ListInput) ([]catalogdto.ResourceOutput, error)
	Download(ctx context.Context, resourceType, id string) (catalogdto.DownloadOutput, error)
	Preview(ctx context.Context, input catalogdto.PreviewInput) (catalogdto.PreviewOutput, error)
}

type BookmarkPort interface {
	CheckAll(ctx context.Context, keys []bookmarksdto.KeyInput) (bookmarksdomain.Set, error)
	Toggle(ctx context.Context, key bookmarksdto.KeyInput, bookmarked bool) (bookmarksdto.ToggleOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Type      string
	Resources []catalogdto.ResourceOutput
	Err       error
}

type BookmarksCheckedMsg struct {
	Type string
	Set  bookmarksdomain.Set
}

type ToggledMsg struct {
	Type string
	Key  bookmarksdto.KeyInput
	Now  bool
	Err  error
}

type DownloadedMsg struct {
	Out catalogdto.DownloadOutput
	Err error
}

type PreviewedMsg struct {
	Out catalogdto.PreviewOutput
	Err error
}

// ─── list item ───────────────────────────────────────────────────────────────

type resourceItem struct {
	resource   catalogdto.ResourceOutput
	bookmarked bool
}

func (i resourceItem) Title() string {
	if i.bookmarked {
		return "★ " + i.resource.Title
	}
	return i.resource.Title
}

func (i resourceItem) Description() string {
	desc := i.resource.Branch
	if i.resource.Year != "" {
		desc += "  " + i.resource.Year
	}
	if len(i.resource.Tags) > 0 {
		desc += "  " + strings.Join(i.resource.Tags, ",")
	}
	return desc
}

func (i resourceItem) FilterValue() string { return i.resource.Title }

// ─── model ───────────────────────────────────────────────────────────────────

// Model renders one resource collection (papers, notes or syllabus) as a
// filterable list with a preview pane.
type Model struct {
	catalog      CatalogPort
	bookmarks    BookmarkPort
	resourceType string

	list    list.Model
	preview viewport.Model
	spinner spinner.Model
	loading bool
	showing bool
	status  string
	marks   bookmarksdomain.Set
	width   int
	height  int
}

func New(catalog CatalogPort, bookmarks BookmarkPort, resourceType, title string) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Lavender).BorderForeground(theme.Lavender)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Lavender)

	l := list.New(nil, delegate, 0, 0)
	l.Title = title
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		Background(theme.Mantle).
		Foreground(theme.Text).
		Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Lavender)

	return Model{
		catalog:      catalog,
		bookmarks:    bookmarks,
		resourceType: resourceType,
		list:         l,
		preview:      vp,
		spinner:      sp,
		loading:      true,
		marks:        bookmarksdomain.Set{},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// Filtering reports whether the list filter input is open.
func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// Selected returns the highlighted resource.
func (m Model) Selected() (catalogdto.ResourceOutput, bool) {
	item, ok := m.list.SelectedItem().(resourceItem)
	if !ok {
		return catalogdto.ResourceOutput{}, false
	}
	return item.resource, true
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

	case LoadedMsg:
		if msg.Type != m.resourceType {
			break
		}
		m.loading = false
		if msg.Err != nil {
			m.status = msg.Err.Error()
			break
		}
		m.status = fmt.Sprintf("%d items", len(msg.Resources))
		items := make([]list.Item, len(msg.Resources))
		keys := make([]bookmarksdto.KeyInput, len(msg.Resources))
		for i, r := range msg.Resources {
			items[i] = resourceItem{resource: r}
			keys[i] = bookmarksdto.KeyInput{Type: m.resourceType, ID: r.ID}
		}
		cmds = append(cmds, m.list.SetItems(items), m.checkBookmarksCmd(keys))

	case BookmarksCheckedMsg:
		if msg.Type != m.resourceType {
			break
		}
		m.marks = msg.Set
		m.remark()

	case ToggledMsg:
		if msg.Type != m.resourceType {
			break
		}
		if msg.Err != nil {
			m.status = "bookmark: " + msg.Err.Error()
			break
		}
		m.marks[bookmarksdomain.Key{Type: msg.Key.Type, ID: msg.Key.ID}] = msg.Now
		m.remark()

	case DownloadedMsg:
		if msg.Err != nil {
			m.status = "download: " + msg.Err.Error()
		} else {
			m.status = "saved " + msg.Out.Path
		}

	case PreviewedMsg:
		if msg.Err != nil {
			m.status = "preview: " + msg.Err.Error()
			break
		}
		m.showing = true
		m.preview.SetContent(fmt.Sprintf("%s\n%s\n\n%s",
			theme.Title.Render(msg.Out.Title),
			theme.Muted.Render(fmt.Sprintf("page %d/%d", msg.Out.Page, msg.Out.Total)),
			msg.Out.Text))

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case tea.KeyMsg:
		if m.Filtering() {
			break
		}
		switch msg.String() {
		case "enter":
			if r, ok := m.Selected(); ok {
				m.status = "downloading " + r.Title
				cmds = append(cmds, m.downloadCmd(r.ID))
			}
		case "v":
			if r, ok := m.Selected(); ok {
				m.status = "opening preview"
				cmds = append(cmds, m.previewCmd(r.ID, 1))
			}
		case "b":
			if r, ok := m.Selected(); ok {
				key := bookmarksdto.KeyInput{Type: m.resourceType, ID: r.ID}
				current := m.marks[bookmarksdomain.Key{Type: key.Type, ID: key.ID}]
				cmds = append(cmds, m.toggleCmd(key, current))
			}
		case "r":
			m.loading = true
			cmds = append(cmds, m.loadCmd(), m.spinner.Tick)
		case "esc":
			m.showing = false
		}
	}

	var cmd tea.Cmd
	if m.showing {
		m.preview, cmd = m.preview.Update(msg)
	} else {
		m.list, cmd = m.list.Update(msg)
	}
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return theme.Pane.Render(m.spinner.View() + " loading…")
	}
	if m.showing {
		return theme.PaneActive.Render(m.preview.View())
	}
	body := m.list.View()
	if m.status != "" {
		body += "\n" + theme.Muted.Render(m.status)
	}
	return body
}

func (m *Model) resize() {
	listH := m.height - 2
	if listH < 3 {
		listH = 3
	}
	m.list.SetSize(m.width, listH)
	m.preview.Width = m.width - 4
	m.preview.Height = listH
}

// remark rebuilds the item list so bookmark stars reflect current state.
func (m *Model) remark() {
	items := m.list.Items()
	for i, it := range items {
		if r, ok := it.(resourceItem); ok {
			r.bookmarked = m.marks[bookmarksdomain.Key{Type: m.resourceType, ID: r.resource.ID}]
			items[i] = r
		}
	}
	m.list.SetItems(items)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		resources, err := m.catalog.List(context.Background(), catalogdto.ListInput{Type: m.resourceType})
		return LoadedMsg{Type: m.resourceType, Resources: resources, Err: err}
	}
}

func (m Model) checkBookmarksCmd(keys []bookmarksdto.KeyInput) tea.Cmd {
	return func() tea.Msg {
		set, _ := m.bookmarks.CheckAll(context.Background(), keys)
		return BookmarksCheckedMsg{Type: m.resourceType, Set: set}
	}
}

func (m Model) toggleCmd(key bookmarksdto.KeyInput, current bool) tea.Cmd {
	return func() tea.Msg {
		out, err := m.bookmarks.Toggle(context.Background(), key, current)
		return ToggledMsg{Type: m.resourceType, Key: key, Now: out.Bookmarked, Err: err}
	}
}

func (m Model) downloadCmd(id string) tea.Cmd {
	return func() tea.Msg {
		out, err := m.catalog.Download(context.Background(), m.resourceType, id)
		return DownloadedMsg{Out: out, Err: err}
	}
}

func (m Model) previewCmd(id string, page int) tea.Cmd {
	return func() tea.Msg {
		out, err := m.catalog.Preview(context.Background(), catalogdto.PreviewInput{Type: m.resourceType, ID: id, Page: page})
		return PreviewedMsg{Out: out, Err: err}
	}
}
