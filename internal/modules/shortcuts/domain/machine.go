package domain

import "time"

// SequenceTimeout bounds the gap between the two keys of a g-sequence.
// Expiry is checked lazily on the next press; no timer runs in between.
const SequenceTimeout = 2 * time.Second

// Action is what a key press resolves to. Unknown keys resolve to
// ActionNone.
type Action int

const (
	ActionNone Action = iota
	ActionNavigateHome
	ActionNavigatePapers
	ActionNavigateNotes
	ActionNavigateSyllabus
	ActionNavigateForum
	ActionNavigateProfile
	ActionShowHelp
	ActionDetailedHelp
	ActionFocusSearch
	ActionToggleTheme
	ActionDismiss
	ActionBlurInput
)

func (a Action) String() string {
	switch a {
	case ActionNavigateHome:
		return "navigate-home"
	case ActionNavigatePapers:
		return "navigate-papers"
	case ActionNavigateNotes:
		return "navigate-notes"
	case ActionNavigateSyllabus:
		return "navigate-syllabus"
	case ActionNavigateForum:
		return "navigate-forum"
	case ActionNavigateProfile:
		return "navigate-profile"
	case ActionShowHelp:
		return "show-help"
	case ActionDetailedHelp:
		return "detailed-help"
	case ActionFocusSearch:
		return "focus-search"
	case ActionToggleTheme:
		return "toggle-theme"
	case ActionDismiss:
		return "dismiss"
	case ActionBlurInput:
		return "blur-input"
	default:
		return "none"
	}
}

// Key is one normalized key press. Name is the lowercase key name
// ("g", "escape", "?"). FromInput marks presses that happened while a text
// input had focus.
type Key struct {
	Name      string
	Ctrl      bool
	Meta      bool
	Shift     bool
	FromInput bool
}

// Machine resolves presses to actions, tracking at most one pending
// sequence prefix. It is not safe for concurrent use; callers serialize.
type Machine struct {
	pending   string
	pendingAt time.Time
}

var sequences = map[string]Action{
	"h": ActionNavigateHome,
	"p": ActionNavigatePapers,
	"n": ActionNavigateNotes,
	"s": ActionNavigateSyllabus,
	"f": ActionNavigateForum,
	"u": ActionNavigateProfile,
}

// Press feeds one key into the machine. now is the press time, used to
// expire a stale sequence prefix before the key is interpreted.
func (m *Machine) Press(key Key, now time.Time) Action {
	if m.pending != "" && now.Sub(m.pendingAt) > SequenceTimeout {
		m.pending = ""
	}

	// Typing in an input never triggers shortcuts. Escape is the one
	// exception: it blurs the input.
	if key.FromInput {
		m.pending = ""
		if key.Name == "escape" {
			return ActionBlurInput
		}
		return ActionNone
	}

	if key.Ctrl || key.Meta {
		m.pending = ""
		switch {
		case key.Name == "?" && key.Shift:
			return ActionDetailedHelp
		case key.Name == "k":
			return ActionFocusSearch
		case key.Name == "d":
			return ActionToggleTheme
		default:
			return ActionNone
		}
	}

	if m.pending == "g" {
		m.pending = ""
		if action, ok := sequences[key.Name]; ok {
			return action
		}
		return ActionNone
	}

	switch key.Name {
	case "g":
		m.pending = "g"
		m.pendingAt = now
		return ActionNone
	case "?":
		return ActionShowHelp
	case "escape":
		return ActionDismiss
	default:
		return ActionNone
	}
}

// Pending reports whether a sequence prefix is waiting for its second key.
func (m *Machine) Pending() bool {
	return m.pending != ""
}

// Reset drops any pending prefix.
func (m *Machine) Reset() {
	m.pending = ""
}
