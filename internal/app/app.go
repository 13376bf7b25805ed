package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/config"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/gating"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screens/gate"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screens/phases"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Progress *progress.Store
	Config   config.Config
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	progress *progress.Store
	width    int
	height   int
}

// newAppModel creates the root model with the passphrase gate on the
// bottom of the stack. The persisted theme preference wins over the
// config default.
func newAppModel(opts Options) AppModel {
	mode := opts.Config.Theme
	if t := opts.Progress.Snapshot().Theme; t != "" {
		mode = string(t)
	}
	theme.SetMode(mode)

	gateScreen := gate.New(opts.Config.Passphrase, opts.Progress)
	return AppModel{
		router:   router.New(gateScreen),
		progress: opts.Progress,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+t":
			mode := theme.Toggle()
			m.progress.SetTheme(context.Background(), progress.Theme(mode))
			return m, nil
		case "esc":
			if m.router.Depth() > 1 {
				// Leaving the phase list means going home: the track is
				// no longer active and the next launch shows the chooser.
				if _, ok := m.router.Active().(*phases.PhasesScreen); ok {
					m.progress.ClearActiveTrack(context.Background())
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.headerInfo(), m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+T", Description: "Theme"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// headerInfo builds the right-hand header status from the active track.
func (m AppModel) headerInfo() layout.HeaderInfo {
	state := m.progress.Snapshot()
	if state.ActiveTrack == "" {
		return layout.HeaderInfo{}
	}
	track, err := curriculum.Get(state.ActiveTrack)
	if err != nil {
		return layout.HeaderInfo{}
	}
	done, total := gating.TrackProgress(track, state)
	return layout.HeaderInfo{
		Track:     track.Name,
		Completed: done,
		Total:     total,
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
