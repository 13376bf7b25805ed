// Package exam is the exam-taking screen. The attempt state machine
// lives in the engine package; this screen just renders it and records
// the result when the attempt completes.
package exam

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/celebrate"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	engine "github.com/theboiblazin2026-oss/pocket-academy/internal/exam"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/components"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// ExamScreen runs one phase's exam attempt.
type ExamScreen struct {
	st    *progress.Store
	track curriculum.TrackID
	phase curriculum.Phase

	eng       *engine.Engine
	opts      components.OptionList
	retakeBtn components.Button
	fx        celebrate.Model
}

// retakeMsg restarts the attempt from the result view.
type retakeMsg struct{}

var _ screen.Screen = (*ExamScreen)(nil)
var _ screen.KeyHintProvider = (*ExamScreen)(nil)

// New creates an exam screen for a phase that carries an exam.
func New(st *progress.Store, track curriculum.TrackID, phase curriculum.Phase) *ExamScreen {
	eng := engine.NewEngine(phase.Exam)
	return &ExamScreen{
		st:    st,
		track: track,
		phase: phase,
		eng:   eng,
		opts:  optionsFor(eng),
	}
}

func optionsFor(eng *engine.Engine) components.OptionList {
	q := eng.Question()
	return components.NewOptionList(q.Question, q.Options)
}

func (s *ExamScreen) Init() tea.Cmd {
	return nil
}

func (s *ExamScreen) Title() string {
	return fmt.Sprintf("Phase %d Exam", s.phase.ID)
}

func (s *ExamScreen) KeyHints() []layout.KeyHint {
	switch s.eng.Phase() {
	case engine.AwaitingAdvance:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Continue"},
		}
	case engine.Completed:
		hints := []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
		if !s.eng.Passed() {
			hints = append([]layout.KeyHint{{Key: "R", Description: "Retake"}}, hints...)
		}
		return hints
	default:
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Answer"},
		}
	}
}

func (s *ExamScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if cmd := s.fx.Update(msg); cmd != nil {
		return s, cmd
	}

	if _, ok := msg.(retakeMsg); ok {
		s.eng.Retake()
		s.opts = optionsFor(s.eng)
		return s, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch s.eng.Phase() {
	case engine.InProgress:
		if kmsg.String() == "enter" {
			s.eng.SelectOption(s.opts.Cursor)
			if s.eng.Phase() == engine.AwaitingAdvance {
				s.opts.Reveal(s.opts.Cursor, s.eng.Question().CorrectIndex)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.opts, cmd = s.opts.Update(msg)
		return s, cmd

	case engine.AwaitingAdvance:
		if kmsg.String() == "enter" {
			s.eng.Advance()
			if s.eng.Phase() == engine.Completed {
				return s, s.finishAttempt()
			}
			s.opts = optionsFor(s.eng)
		}
		return s, nil

	case engine.Completed:
		if kmsg.String() == "r" && !s.eng.Passed() {
			return s, func() tea.Msg { return retakeMsg{} }
		}
		var cmd tea.Cmd
		s.retakeBtn, cmd = s.retakeBtn.Update(msg)
		return s, cmd
	}

	return s, nil
}

// finishAttempt records the score, pass or fail, exactly once per
// attempt, and fires the celebration on a pass.
func (s *ExamScreen) finishAttempt() tea.Cmd {
	score, ok := s.eng.TakeResult()
	if !ok {
		return nil
	}
	s.st.RecordExamScore(context.Background(), s.track, s.phase.ID, score)
	if s.eng.Passed() {
		return s.fx.Start(celebrate.Milestone, "Exam passed! Next phase unlocked!")
	}
	s.retakeBtn = components.NewButton("Retake exam", true, func() tea.Cmd {
		return func() tea.Msg { return retakeMsg{} }
	})
	return nil
}

func (s *ExamScreen) View(width, height int) string {
	if s.eng.Phase() == engine.Completed {
		return s.renderResult(width, height)
	}

	var b strings.Builder
	b.WriteString("  " + theme.Subtitle.Align(lipgloss.Left).Render(
		fmt.Sprintf("Question %d of %d", s.eng.Current()+1, s.eng.Total())) + "\n\n")

	for _, line := range strings.Split(s.opts.View(), "\n") {
		b.WriteString("  " + line + "\n")
	}

	if s.eng.Phase() == engine.AwaitingAdvance {
		b.WriteString("\n")
		if s.eng.SelectedCorrect() {
			b.WriteString("  " + theme.Correct.Render("Correct!") + "\n")
		} else {
			b.WriteString("  " + theme.Incorrect.Render("Not quite.") + "\n")
		}
	}

	return b.String()
}

func (s *ExamScreen) renderResult(width, height int) string {
	score := s.eng.Score()

	var headline, sub string
	if s.eng.Passed() {
		headline = theme.Correct.Render(fmt.Sprintf("You scored %d%% — passed!", score))
		sub = theme.Subtitle.Render("The next phase is unlocked.")
	} else {
		headline = theme.Incorrect.Render(fmt.Sprintf("You scored %d%%", score))
		sub = theme.Subtitle.Render(fmt.Sprintf("You need %d%% to pass. Press R to retake.", engine.PassThreshold))
	}

	review := "\n"
	for i := 0; i < s.eng.Total(); i++ {
		ans, _ := s.eng.Answer(i)
		q := s.phase.Exam[i]
		mark := theme.Incorrect.Render("✗")
		if ans == q.CorrectIndex {
			mark = theme.Correct.Render("✓")
		}
		review += fmt.Sprintf("%s %s\n", mark, theme.Hint.Render(q.Question))
	}

	body := headline + "\n" + sub + "\n" +
		theme.Body.Render(fmt.Sprintf("%d of %d correct", s.eng.CorrectCount(), s.eng.Total())) + "\n" +
		review
	if !s.eng.Passed() {
		body += "\n" + s.retakeBtn.View()
	}

	card := theme.Card.Render(body)
	out := lipgloss.NewStyle().
		Width(width).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)

	if s.fx.Active() {
		out = s.fx.View(width) + "\n" + out
	}
	return out
}
