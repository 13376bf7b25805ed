// Package theme holds the color palettes and shared lipgloss styles.
// Two palettes ship (dark and light); Set swaps the active one and
// rebuilds every exported style, so screens can keep referencing the
// package-level vars across a toggle.
package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Palette is one complete color scheme.
type Palette struct {
	Name string

	Primary   color.Color
	Secondary color.Color
	Accent    color.Color
	Success   color.Color
	Error     color.Color
	Text      color.Color
	TextDim   color.Color
	Bg        color.Color
	BgCard    color.Color
	Border    color.Color
	Locked    color.Color
}

var Dark = Palette{
	Name:      "dark",
	Primary:   lipgloss.Color("#6366F1"), // Indigo
	Secondary: lipgloss.Color("#14B8A6"), // Teal
	Accent:    lipgloss.Color("#F59E0B"), // Amber
	Success:   lipgloss.Color("#22C55E"), // Green
	Error:     lipgloss.Color("#F43F5E"), // Rose
	Text:      lipgloss.Color("#F8FAFC"),
	TextDim:   lipgloss.Color("#94A3B8"),
	Bg:        lipgloss.Color("#0F172A"),
	BgCard:    lipgloss.Color("#1E293B"),
	Border:    lipgloss.Color("#334155"),
	Locked:    lipgloss.Color("#475569"),
}

var Light = Palette{
	Name:      "light",
	Primary:   lipgloss.Color("#4F46E5"),
	Secondary: lipgloss.Color("#0D9488"),
	Accent:    lipgloss.Color("#D97706"),
	Success:   lipgloss.Color("#16A34A"),
	Error:     lipgloss.Color("#E11D48"),
	Text:      lipgloss.Color("#0F172A"),
	TextDim:   lipgloss.Color("#64748B"),
	Bg:        lipgloss.Color("#F8FAFC"),
	BgCard:    lipgloss.Color("#E2E8F0"),
	Border:    lipgloss.Color("#CBD5E1"),
	Locked:    lipgloss.Color("#94A3B8"),
}

// Active is the palette currently in effect. Read it for raw colors;
// prefer the prebuilt styles below.
var Active = Dark

// Typography
var (
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Hint     lipgloss.Style
)

// Layout
var (
	Header lipgloss.Style
	Footer lipgloss.Style
	Card   lipgloss.Style
)

// States
var (
	Selected   lipgloss.Style
	Unselected lipgloss.Style
	Disabled   lipgloss.Style
	Correct    lipgloss.Style
	Incorrect  lipgloss.Style
)

// Components
var (
	ProgressFilled lipgloss.Style
	ProgressEmpty  lipgloss.Style
	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Set(Dark)
}

// Set makes p the active palette and rebuilds all exported styles.
func Set(p Palette) {
	Active = p

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
		Foreground(p.TextDim).
		Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(p.Text)

	Hint = lipgloss.NewStyle().
		Foreground(p.TextDim).
		Italic(true)

	Header = lipgloss.NewStyle().
		Background(p.BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(p.BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(p.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(1, 2)

	Selected = lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true)

	Unselected = lipgloss.NewStyle().
		Foreground(p.Text)

	Disabled = lipgloss.NewStyle().
		Foreground(p.Locked)

	Correct = lipgloss.NewStyle().
		Foreground(p.Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
		Foreground(p.Error).
		Bold(true)

	ProgressFilled = lipgloss.NewStyle().
		Background(p.Secondary)

	ProgressEmpty = lipgloss.NewStyle().
		Background(p.Border)

	ButtonActive = lipgloss.NewStyle().
		Background(p.Primary).
		Foreground(p.Text).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Background(p.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Border).
		Padding(0, 2)
}

// SetMode activates the palette named "dark" or "light". Unknown names
// fall back to dark.
func SetMode(name string) {
	if name == Light.Name {
		Set(Light)
		return
	}
	Set(Dark)
}

// Toggle switches between the two palettes and returns the new mode name.
func Toggle() string {
	if Active.Name == Dark.Name {
		Set(Light)
	} else {
		Set(Dark)
	}
	return Active.Name
}
