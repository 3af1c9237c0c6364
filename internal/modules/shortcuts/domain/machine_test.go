package domain

import (
	"testing"
	"time"
)

var t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestSequenceWithinTimeout(t *testing.T) {
	t.Parallel()

	var m Machine
	if got := m.Press(Key{Name: "g"}, t0); got != ActionNone {
		t.Fatalf("prefix emitted %v", got)
	}
	if !m.Pending() {
		t.Fatal("prefix not pending")
	}
	if got := m.Press(Key{Name: "h"}, t0.Add(time.Second)); got != ActionNavigateHome {
		t.Fatalf("g h = %v, want ActionNavigateHome", got)
	}
	if m.Pending() {
		t.Error("sequence left prefix pending")
	}
}

func TestSequenceExpiresAfterTimeout(t *testing.T) {
	t.Parallel()

	var m Machine
	m.Press(Key{Name: "g"}, t0)
	if got := m.Press(Key{Name: "h"}, t0.Add(2100*time.Millisecond)); got != ActionNone {
		t.Fatalf("expired sequence emitted %v", got)
	}
}

func TestSequenceAtExactTimeoutStillFires(t *testing.T) {
	t.Parallel()

	var m Machine
	m.Press(Key{Name: "g"}, t0)
	if got := m.Press(Key{Name: "p"}, t0.Add(2*time.Second)); got != ActionNavigatePapers {
		t.Fatalf("boundary press = %v, want ActionNavigatePapers", got)
	}
}

func TestAllNavigationSequences(t *testing.T) {
	t.Parallel()

	cases := map[string]Action{
		"h": ActionNavigateHome,
		"p": ActionNavigatePapers,
		"n": ActionNavigateNotes,
		"s": ActionNavigateSyllabus,
		"f": ActionNavigateForum,
		"u": ActionNavigateProfile,
	}
	for name, want := range cases {
		var m Machine
		m.Press(Key{Name: "g"}, t0)
		if got := m.Press(Key{Name: name}, t0.Add(time.Millisecond)); got != want {
			t.Errorf("g %s = %v, want %v", name, got, want)
		}
	}
}

func TestUnknownSecondKeyDropsPrefix(t *testing.T) {
	t.Parallel()

	var m Machine
	m.Press(Key{Name: "g"}, t0)
	if got := m.Press(Key{Name: "x"}, t0.Add(time.Millisecond)); got != ActionNone {
		t.Fatalf("g x = %v", got)
	}
	if m.Pending() {
		t.Error("failed sequence left prefix pending")
	}
}

func TestInputFocusSuppressesShortcuts(t *testing.T) {
	t.Parallel()

	var m Machine
	if got := m.Press(Key{Name: "g", FromInput: true}, t0); got != ActionNone {
		t.Errorf("g while typing = %v", got)
	}
	if got := m.Press(Key{Name: "?", FromInput: true}, t0); got != ActionNone {
		t.Errorf("? while typing = %v", got)
	}
	if got := m.Press(Key{Name: "escape", FromInput: true}, t0); got != ActionBlurInput {
		t.Errorf("escape while typing = %v, want ActionBlurInput", got)
	}
}

func TestTypingDropsPendingPrefix(t *testing.T) {
	t.Parallel()

	var m Machine
	m.Press(Key{Name: "g"}, t0)
	m.Press(Key{Name: "a", FromInput: true}, t0.Add(time.Millisecond))
	if got := m.Press(Key{Name: "h"}, t0.Add(2*time.Millisecond)); got != ActionNone {
		t.Errorf("h after input press = %v, pending prefix survived typing", got)
	}
}

func TestModifierCombos(t *testing.T) {
	t.Parallel()

	var m Machine
	if got := m.Press(Key{Name: "k", Ctrl: true}, t0); got != ActionFocusSearch {
		t.Errorf("ctrl+k = %v", got)
	}
	if got := m.Press(Key{Name: "d", Ctrl: true}, t0); got != ActionToggleTheme {
		t.Errorf("ctrl+d = %v", got)
	}
	if got := m.Press(Key{Name: "?", Ctrl: true, Shift: true}, t0); got != ActionDetailedHelp {
		t.Errorf("ctrl+shift+? = %v", got)
	}
	// cmd acts like ctrl
	if got := m.Press(Key{Name: "k", Meta: true}, t0); got != ActionFocusSearch {
		t.Errorf("cmd+k = %v", got)
	}
}

func TestHelpAndDismiss(t *testing.T) {
	t.Parallel()

	var m Machine
	if got := m.Press(Key{Name: "?"}, t0); got != ActionShowHelp {
		t.Errorf("? = %v", got)
	}
	if got := m.Press(Key{Name: "escape"}, t0); got != ActionDismiss {
		t.Errorf("escape = %v", got)
	}
}

func TestCtrlComboCancelsPrefix(t *testing.T) {
	t.Parallel()

	var m Machine
	m.Press(Key{Name: "g"}, t0)
	m.Press(Key{Name: "k", Ctrl: true}, t0.Add(time.Millisecond))
	if got := m.Press(Key{Name: "h"}, t0.Add(2*time.Millisecond)); got != ActionNone {
		t.Errorf("h after ctrl combo = %v, prefix survived", got)
	}
}
