package app

import tea "github.com/charmbracelet/bubbletea"

// NoticeMsg is a user-facing notification surfaced in the status bar.
type NoticeMsg struct {
	Level  string // ok, error, info
	Title  string
	Detail string
}

// Notifier bridges state-side notifications (achievement unlocks, save
// results) into the Bubble Tea message loop.
type Notifier struct {
	ch chan NoticeMsg
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan NoticeMsg, 16)}
}

func (n *Notifier) Success(title, detail string) { n.push(NoticeMsg{Level: "ok", Title: title, Detail: detail}) }
func (n *Notifier) Error(title, detail string)   { n.push(NoticeMsg{Level: "error", Title: title, Detail: detail}) }
func (n *Notifier) Info(title, detail string)    { n.push(NoticeMsg{Level: "info", Title: title, Detail: detail}) }

// push never blocks; when the UI is not draining, old notices are dropped.
func (n *Notifier) push(msg NoticeMsg) {
	select {
	case n.ch <- msg:
	default:
	}
}

// Listen returns a command that waits for the next notice.
func (n *Notifier) Listen() tea.Cmd {
	return func() tea.Msg {
		return <-n.ch
	}
}
