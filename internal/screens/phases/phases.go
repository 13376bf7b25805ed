// Package phases shows one track's phase list with lock state, task
// progress, and exam scores. Statuses are recomputed from the progress
// snapshot on every render, so anything toggled deeper in the stack is
// reflected as soon as the learner pops back.
package phases

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/exam"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/gating"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screens/certificate"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screens/phasedetail"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/components"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/widgets/pomodoro"
)

// PhasesScreen lists the phases of the active track.
type PhasesScreen struct {
	st      *progress.Store
	track   curriculum.Track
	cursor  int
	pom     pomodoro.Model
	showPom bool
	loadErr error
}

var _ screen.Screen = (*PhasesScreen)(nil)
var _ screen.KeyHintProvider = (*PhasesScreen)(nil)

// New creates the phase list for trackID.
func New(st *progress.Store, trackID curriculum.TrackID) *PhasesScreen {
	track, err := curriculum.Get(trackID)
	return &PhasesScreen{
		st:      st,
		track:   track,
		pom:     pomodoro.New(),
		loadErr: err,
	}
}

func (s *PhasesScreen) Init() tea.Cmd {
	return nil
}

func (s *PhasesScreen) Title() string {
	return s.track.Name
}

func (s *PhasesScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open phase"},
		{Key: "P", Description: "Pomodoro"},
	}
	if gating.TrackComplete(s.track, s.st.Snapshot()) {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Certificate"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *PhasesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	// Pomodoro ticks flow regardless of focus.
	var pomCmd tea.Cmd
	s.pom, pomCmd = s.pom.Update(msg)

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, pomCmd
	}

	statuses := gating.Evaluate(s.track, s.st.Snapshot())

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(statuses)-1 {
			s.cursor++
		}
	case "enter":
		if s.cursor < len(statuses) && !statuses[s.cursor].Locked {
			st, track, idx := s.st, s.track, s.cursor
			return s, tea.Batch(pomCmd, func() tea.Msg {
				return router.PushScreenMsg{Screen: phasedetail.New(st, track, idx)}
			})
		}
	case "p":
		s.showPom = true
		var cmd tea.Cmd
		s.pom, cmd = s.pom.Toggle()
		return s, tea.Batch(pomCmd, cmd)
	case "P":
		s.showPom = false
		s.pom = s.pom.Reset()
	case "c":
		if gating.TrackComplete(s.track, s.st.Snapshot()) {
			name := s.track.Name
			return s, tea.Batch(pomCmd, func() tea.Msg {
				return router.PushScreenMsg{Screen: certificate.New(name)}
			})
		}
	}

	return s, pomCmd
}

func (s *PhasesScreen) View(width, height int) string {
	if s.loadErr != nil {
		return theme.Incorrect.Render("  " + s.loadErr.Error())
	}

	state := s.st.Snapshot()
	statuses := gating.Evaluate(s.track, state)
	done, total := gating.TrackProgress(s.track, state)

	var b strings.Builder

	percent := 0.0
	if total > 0 {
		percent = float64(done) / float64(total)
	}
	bar := components.NewProgressBar("Track progress", percent, true, min(width-8, 60))
	b.WriteString("  " + bar.View() + "\n")

	if s.showPom {
		b.WriteString("  " + s.pom.View() + "\n")
	}
	b.WriteString("\n")

	if gating.TrackComplete(s.track, state) {
		b.WriteString("  " + theme.Correct.Render("★ Track complete! Press C to view your certificate.") + "\n\n")
	}

	for i, ps := range statuses {
		b.WriteString(s.renderPhaseLine(i, ps) + "\n")
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func (s *PhasesScreen) renderPhaseLine(i int, ps gating.PhaseStatus) string {
	marker := "  "
	if i == s.cursor {
		marker = "▸ "
	}

	var icon string
	switch {
	case ps.Locked:
		icon = "🔒"
	case ps.Passed:
		icon = "✓ "
	default:
		icon = "○ "
	}

	line := fmt.Sprintf("%s%s Phase %d · %s  (%d/%d tasks)",
		marker, icon, ps.Phase.ID, ps.Phase.Title, ps.CompletedTasks, ps.TotalTasks)

	if ps.HasScore {
		badge := fmt.Sprintf("exam %d%%", ps.Score)
		if ps.Score >= exam.PassThreshold {
			line += "  " + theme.Correct.Render(badge)
		} else {
			line += "  " + theme.Incorrect.Render(badge)
		}
	} else if ps.ExamAvailable {
		line += "  " + lipgloss.NewStyle().Foreground(theme.Active.Accent).Render("exam ready")
	}

	switch {
	case ps.Locked:
		return theme.Disabled.Render(line)
	case i == s.cursor:
		return theme.Selected.Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}

