package domain

// Binding is a displayable shortcut description for the help overlay.
type Binding struct {
	Keys        string
	Description string
}

func Bindings() []Binding {
	return []Binding{
		{Keys: "g h", Description: "Go to home"},
		{Keys: "g p", Description: "Go to papers"},
		{Keys: "g n", Description: "Go to notes"},
		{Keys: "g s", Description: "Go to syllabus"},
		{Keys: "g f", Description: "Go to forum"},
		{Keys: "g u", Description: "Go to profile"},
		{Keys: "ctrl+k", Description: "Focus search"},
		{Keys: "ctrl+d", Description: "Toggle theme"},
		{Keys: "?", Description: "Show shortcut help"},
		{Keys: "ctrl+shift+?", Description: "Show detailed help"},
		{Keys: "esc", Description: "Dismiss overlay or leave input"},
	}
}
