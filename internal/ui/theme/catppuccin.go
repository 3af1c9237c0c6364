package theme

import "github.com/charmbracelet/lipgloss"

// Palette is one catppuccin variant. Mocha is the dark default; Latte is
// what ctrl+d flips to.
type Palette struct {
	Base     lipgloss.Color
	Mantle   lipgloss.Color
	Surface0 lipgloss.Color
	Surface1 lipgloss.Color
	Text     lipgloss.Color
	Subtext0 lipgloss.Color
	Lavender lipgloss.Color
	Sapphire lipgloss.Color
	Green    lipgloss.Color
	Peach    lipgloss.Color
	Red      lipgloss.Color
}

func Mocha() Palette {
	return Palette{
		Base:     lipgloss.Color("#1e1e2e"),
		Mantle:   lipgloss.Color("#181825"),
		Surface0: lipgloss.Color("#313244"),
		Surface1: lipgloss.Color("#45475a"),
		Text:     lipgloss.Color("#cdd6f4"),
		Subtext0: lipgloss.Color("#a6adc8"),
		Lavender: lipgloss.Color("#b4befe"),
		Sapphire: lipgloss.Color("#74c7ec"),
		Green:    lipgloss.Color("#a6e3a1"),
		Peach:    lipgloss.Color("#fab387"),
		Red:      lipgloss.Color("#f38ba8"),
	}
}

func Latte() Palette {
	return Palette{
		Base:     lipgloss.Color("#eff1f5"),
		Mantle:   lipgloss.Color("#e6e9ef"),
		Surface0: lipgloss.Color("#ccd0da"),
		Surface1: lipgloss.Color("#bcc0cc"),
		Text:     lipgloss.Color("#4c4f69"),
		Subtext0: lipgloss.Color("#6c6f85"),
		Lavender: lipgloss.Color("#7287fd"),
		Sapphire: lipgloss.Color("#209fb5"),
		Green:    lipgloss.Color("#40a02b"),
		Peach:    lipgloss.Color("#fe640b"),
		Red:      lipgloss.Color("#d20f39"),
	}
}

var (
	current = Mocha()
	dark    = true

	Base     = current.Base
	Mantle   = current.Mantle
	Surface0 = current.Surface0
	Surface1 = current.Surface1
	Text     = current.Text
	Subtext0 = current.Subtext0
	Lavender = current.Lavender
	Sapphire = current.Sapphire
	Green    = current.Green
	Peach    = current.Peach
	Red      = current.Red

	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
)

func init() {
	rebuild()
}

// Use switches the active palette. Styles are package state, so this must
// happen before the next render, not concurrently with it.
func Use(darkMode bool) {
	dark = darkMode
	if darkMode {
		current = Mocha()
	} else {
		current = Latte()
	}
	rebuild()
}

// Dark reports the active variant.
func Dark() bool { return dark }

func rebuild() {
	Base = current.Base
	Mantle = current.Mantle
	Surface0 = current.Surface0
	Surface1 = current.Surface1
	Text = current.Text
	Subtext0 = current.Subtext0
	Lavender = current.Lavender
	Sapphire = current.Sapphire
	Green = current.Green
	Peach = current.Peach
	Red = current.Red

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good = lipgloss.NewStyle().Foreground(Green)
	Bad = lipgloss.NewStyle().Foreground(Red).Bold(true)
}
