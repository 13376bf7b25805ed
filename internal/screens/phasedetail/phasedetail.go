// Package phasedetail is one phase's study view: the task checklist,
// lingo cards, sketch challenge, and the door into the exam.
package phasedetail

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/celebrate"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/gating"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	examscreen "github.com/theboiblazin2026-oss/pocket-academy/internal/screens/exam"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// PhaseDetailScreen shows one phase of a track.
type PhaseDetailScreen struct {
	st       *progress.Store
	track    curriculum.Track
	phaseIdx int

	cursor     int
	showDetail bool
	showLingo  bool

	// Knowledge-check quiz state. Not persisted; one try per visit.
	quizChosen int

	fx celebrate.Model
}

var _ screen.Screen = (*PhaseDetailScreen)(nil)
var _ screen.KeyHintProvider = (*PhaseDetailScreen)(nil)

// New creates the detail screen for track.Phases[phaseIdx].
func New(st *progress.Store, track curriculum.Track, phaseIdx int) *PhaseDetailScreen {
	return &PhaseDetailScreen{
		st:         st,
		track:      track,
		phaseIdx:   phaseIdx,
		quizChosen: -1,
	}
}

func (s *PhaseDetailScreen) phase() curriculum.Phase {
	return s.track.Phases[s.phaseIdx]
}

func (s *PhaseDetailScreen) Init() tea.Cmd {
	return nil
}

func (s *PhaseDetailScreen) Title() string {
	return fmt.Sprintf("Phase %d", s.phase().ID)
}

func (s *PhaseDetailScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Toggle task"},
		{Key: "D", Description: "Details"},
	}
	if len(s.phase().Lingo) > 0 {
		hints = append(hints, layout.KeyHint{Key: "L", Description: "Lingo"})
	}
	if s.examAvailable() {
		hints = append(hints, layout.KeyHint{Key: "E", Description: "Take exam"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *PhaseDetailScreen) examAvailable() bool {
	statuses := gating.Evaluate(s.track, s.st.Snapshot())
	return statuses[s.phaseIdx].ExamAvailable
}

func (s *PhaseDetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd := s.fx.Update(msg); cmd != nil {
		return s, cmd
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	tasks := s.phase().Tasks

	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(tasks)-1 {
			s.cursor++
		}
	case " ", "space", "enter":
		if s.cursor < len(tasks) {
			s.st.ToggleTask(context.Background(), tasks[s.cursor].ID)
			if cmd := s.celebrateToggle(); cmd != nil {
				return s, cmd
			}
		}
	case "d":
		s.showDetail = !s.showDetail
	case "l":
		if len(s.phase().Lingo) > 0 {
			s.showLingo = !s.showLingo
		}
	case "1", "2", "3", "4":
		if quiz := s.phase().Quiz; quiz != nil && s.quizChosen < 0 {
			idx := int(kmsg.String()[0] - '1')
			if idx < len(quiz.Options) {
				s.quizChosen = idx
			}
		}
	case "e":
		if s.examAvailable() {
			st, trackID, phase := s.st, s.track.ID, s.phase()
			return s, func() tea.Msg {
				return router.PushScreenMsg{Screen: examscreen.New(st, trackID, phase)}
			}
		}
	}

	return s, nil
}

// celebrateToggle fires a banner when a toggle just finished something:
// the whole track beats finishing the phase's tasks.
func (s *PhaseDetailScreen) celebrateToggle() tea.Cmd {
	state := s.st.Snapshot()
	if gating.TrackComplete(s.track, state) {
		return s.fx.Start(celebrate.Milestone, "Track complete! Go claim your certificate!")
	}
	if gating.Evaluate(s.track, state)[s.phaseIdx].TaskComplete {
		return s.fx.Start(celebrate.Minor, "All tasks done!")
	}
	return nil
}

func (s *PhaseDetailScreen) View(width, height int) string {
	phase := s.phase()
	state := s.st.Snapshot()
	statuses := gating.Evaluate(s.track, state)
	status := statuses[s.phaseIdx]

	var b strings.Builder

	if s.fx.Active() {
		b.WriteString(s.fx.View(width) + "\n")
	}

	b.WriteString("  " + theme.Title.Align(lipgloss.Left).Render(phase.Title) + "\n")
	b.WriteString("  " + theme.Hint.Render(phase.Description) + "\n\n")

	if status.HasScore {
		line := fmt.Sprintf("Exam score: %d%%", status.Score)
		if status.Passed {
			b.WriteString("  " + theme.Correct.Render(line+" · passed") + "\n\n")
		} else {
			b.WriteString("  " + theme.Incorrect.Render(line+" · below passing, retake when ready") + "\n\n")
		}
	} else if status.ExamAvailable {
		b.WriteString("  " + theme.Body.Foreground(theme.Active.Accent).Render("All tasks done. Press E to take the exam!") + "\n\n")
	}

	for i, task := range phase.Tasks {
		b.WriteString(s.renderTaskLine(i, task, state) + "\n")
		if s.showDetail && i == s.cursor {
			b.WriteString(s.renderTaskDetail(task))
		}
	}

	if phase.SketchChallenge != "" {
		b.WriteString("\n  " + theme.Subtitle.Align(lipgloss.Left).Render("Sketch challenge") + "\n")
		b.WriteString("  " + theme.Body.Render(phase.SketchChallenge) + "\n")
	}

	if phase.Quiz != nil {
		b.WriteString(s.renderQuiz(*phase.Quiz))
	}

	if s.showLingo && len(phase.Lingo) > 0 {
		b.WriteString("\n  " + theme.Subtitle.Align(lipgloss.Left).Render("Lingo") + "\n")
		for _, l := range phase.Lingo {
			b.WriteString("  " + theme.Selected.Render(l.Term) + theme.Hint.Render(" — "+l.Def) + "\n")
		}
	}

	return b.String()
}

func (s *PhaseDetailScreen) renderTaskLine(i int, task curriculum.Task, state progress.State) string {
	marker := "  "
	if i == s.cursor {
		marker = "▸ "
	}

	box := "[ ]"
	if state.Completed[task.ID] {
		box = "[✓]"
	}

	line := fmt.Sprintf("%s%s %s", marker, box, task.Text)

	switch {
	case state.Completed[task.ID] && i != s.cursor:
		return theme.Hint.Render(line)
	case i == s.cursor:
		return theme.Selected.Render(line)
	default:
		return theme.Unselected.Render(line)
	}
}

// renderQuiz shows the optional knowledge check. Answering is a single
// press of 1-4; feedback reveals the correct option and nothing is
// recorded, it is practice only.
func (s *PhaseDetailScreen) renderQuiz(quiz curriculum.Quiz) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Subtitle.Align(lipgloss.Left).Render("Knowledge check") + "\n")
	b.WriteString("  " + theme.Body.Render(quiz.Question) + "\n")

	for i, opt := range quiz.Options {
		line := fmt.Sprintf("  %d) %s", i+1, opt)
		switch {
		case s.quizChosen < 0:
			b.WriteString(theme.Unselected.Render(line) + "\n")
		case i == quiz.CorrectIndex:
			b.WriteString(theme.Correct.Render(line) + "\n")
		case i == s.quizChosen:
			b.WriteString(theme.Incorrect.Render(line) + "\n")
		default:
			b.WriteString(theme.Hint.Render(line) + "\n")
		}
	}
	return b.String()
}

func (s *PhaseDetailScreen) renderTaskDetail(task curriculum.Task) string {
	var b strings.Builder
	if task.Detail != "" {
		b.WriteString("        " + theme.Hint.Render(task.Detail) + "\n")
	}
	if task.Tool != "" {
		b.WriteString("        " + theme.Hint.Render("Tool: "+task.Tool) + "\n")
	}
	if task.Link != "" {
		b.WriteString("        " + theme.Hint.Render("Link: "+task.Link) + "\n")
	}
	if b.Len() == 0 {
		b.WriteString("        " + theme.Hint.Render("No extra details for this one.") + "\n")
	}
	return b.String()
}
