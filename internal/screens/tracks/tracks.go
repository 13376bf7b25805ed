// Package tracks is the home screen: a greeting and the track chooser.
package tracks

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/gating"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screens/phases"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/components"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// TracksScreen lets the learner pick (or resume) a curriculum track.
type TracksScreen struct {
	st   *progress.Store
	menu components.Menu
	now  func() time.Time
}

var _ screen.Screen = (*TracksScreen)(nil)
var _ screen.KeyHintProvider = (*TracksScreen)(nil)

// New creates the track chooser.
func New(st *progress.Store) *TracksScreen {
	s := &TracksScreen{st: st, now: time.Now}

	items := make([]components.MenuItem, 0, len(curriculum.Tracks())+1)
	for _, track := range curriculum.Tracks() {
		track := track
		items = append(items, components.MenuItem{
			Label: track.Name,
			Action: func() tea.Cmd {
				st.SetActiveTrack(context.Background(), track.ID)
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: phases.New(st, track.ID)}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label:  "Quit",
		Action: func() tea.Cmd { return tea.Quit },
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *TracksScreen) Init() tea.Cmd {
	// Resume the last active track directly.
	state := s.st.Snapshot()
	if state.ActiveTrack == "" {
		return nil
	}
	st, trackID := s.st, state.ActiveTrack
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: phases.New(st, trackID)}
	}
}

func (s *TracksScreen) Title() string {
	return "Choose Your Path"
}

func (s *TracksScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *TracksScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *TracksScreen) View(width, height int) string {
	state := s.st.Snapshot()

	greeting := theme.Title.Render(s.greeting())
	subtitle := theme.Subtitle.Render("What are we learning today?")

	// Per-track progress lines, recomputed each render so they stay
	// current after popping back from a track.
	var summary string
	for _, track := range curriculum.Tracks() {
		done, total := gating.TrackProgress(track, state)
		line := fmt.Sprintf("%-24s %d/%d tasks", track.Name, done, total)
		if gating.TrackComplete(track, state) {
			line += "  " + theme.Correct.Render("✓ complete")
		}
		summary += theme.Hint.Render(line) + "\n"
	}

	body := greeting + "\n" + subtitle + "\n\n" + s.menu.View() + "\n" + summary

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

// greeting picks a salutation from the local hour, the small touch that
// makes the home screen feel alive.
func (s *TracksScreen) greeting() string {
	switch h := s.now().Hour(); {
	case h < 12:
		return "Good morning!"
	case h < 18:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}
