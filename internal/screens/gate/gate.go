// Package gate is the passphrase screen shown at startup. Access lasts
// for the process lifetime only; nothing about authentication is
// persisted, so the next launch asks again.
package gate

import (
	"charm.land/lipgloss/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screens/tracks"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/components"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// GateScreen collects the passphrase before handing over to the track
// selector. Wrong entries just clear the field; there is no lockout.
type GateScreen struct {
	passphrase string
	st         *progress.Store
	input      components.TextInput
	failed     bool
}

var _ screen.Screen = (*GateScreen)(nil)
var _ screen.KeyHintProvider = (*GateScreen)(nil)

// New creates the gate screen. passphrase comes from config.
func New(passphrase string, st *progress.Store) *GateScreen {
	return &GateScreen{
		passphrase: passphrase,
		st:         st,
		input:      components.NewTextInput("Passphrase", true, 64),
	}
}

func (g *GateScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GateScreen) Title() string {
	return "Locked"
}

func (g *GateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Unlock"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (g *GateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		if g.input.Value() == g.passphrase {
			st := g.st
			return g, func() tea.Msg {
				return router.ReplaceScreenMsg{Screen: tracks.New(st)}
			}
		}
		g.failed = true
		g.input.Reset()
		return g, nil
	}

	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return g, cmd
}

func (g *GateScreen) View(width, height int) string {
	title := theme.Title.Render("Pocket Academy")
	subtitle := theme.Subtitle.Render("Enter the passphrase to begin")

	body := title + "\n\n" + subtitle + "\n\n" + g.input.View()
	if g.failed {
		body += "\n\n" + theme.Incorrect.Render("That's not it. Try again.")
	}

	card := theme.Card.Render(body)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
