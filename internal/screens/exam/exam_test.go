package exam

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func enterKey() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func testPhase(n int) curriculum.Phase {
	qs := make([]curriculum.ExamQuestion, n)
	for i := range qs {
		qs[i] = curriculum.ExamQuestion{
			Question:     "q",
			Options:      []string{"right", "wrong"},
			CorrectIndex: 0,
		}
	}
	return curriculum.Phase{ID: 0, Title: "P0", Exam: qs}
}

func newTestScreen(t *testing.T, n int) (*ExamScreen, *progress.Store) {
	t.Helper()
	st := progress.NewStore(context.Background(), store.NewMemory())
	return New(st, curriculum.TrackWeb, testPhase(n)), st
}

// answer picks the option at cursor offset and confirms the feedback.
func answer(s *ExamScreen, wrong bool) {
	if wrong {
		s.Update(keyPress('j'))
	}
	s.Update(enterKey()) // select
	s.Update(enterKey()) // advance
}

func TestPassingAttemptRecordsScore(t *testing.T) {
	s, st := newTestScreen(t, 2)

	answer(s, false)
	answer(s, false)

	score, ok := st.Snapshot().Score(curriculum.TrackWeb, 0)
	if !ok || score != 100 {
		t.Errorf("recorded score = %d, %v, want 100, true", score, ok)
	}
}

func TestFailingAttemptStillRecordsScore(t *testing.T) {
	s, st := newTestScreen(t, 2)

	answer(s, true)
	answer(s, true)

	score, ok := st.Snapshot().Score(curriculum.TrackWeb, 0)
	if !ok || score != 0 {
		t.Errorf("recorded score = %d, %v, want 0, true", score, ok)
	}
	if len(st.Snapshot().Attempts) != 1 {
		t.Errorf("attempts = %d, want 1", len(st.Snapshot().Attempts))
	}
}

func TestRetakeAfterFailRecordsNewScore(t *testing.T) {
	s, st := newTestScreen(t, 1)

	answer(s, true) // 0%
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("R should offer a retake after a fail")
	}
	s.Update(cmd())
	answer(s, false) // 100%

	score, ok := st.Snapshot().Score(curriculum.TrackWeb, 0)
	if !ok || score != 100 {
		t.Errorf("recorded score = %d, %v, want 100, true", score, ok)
	}
	if got := len(st.Snapshot().Attempts); got != 2 {
		t.Errorf("attempts = %d, want 2", got)
	}
}

func TestRetakeButtonRestartsAttempt(t *testing.T) {
	s, st := newTestScreen(t, 1)

	answer(s, true) // fail, retake button active
	_, cmd := s.Update(enterKey())
	if cmd == nil {
		t.Fatal("enter on the retake button should restart")
	}
	s.Update(cmd())
	answer(s, false) // 100%

	if score, _ := st.Snapshot().Score(curriculum.TrackWeb, 0); score != 100 {
		t.Errorf("score after button retake = %d, want 100", score)
	}
}

func TestRetakeBlockedAfterPass(t *testing.T) {
	s, st := newTestScreen(t, 1)

	answer(s, false) // pass
	if _, cmd := s.Update(keyPress('r')); cmd != nil {
		t.Fatal("R must do nothing after a pass")
	}
	s.Update(enterKey())
	s.Update(enterKey())

	if got := len(st.Snapshot().Attempts); got != 1 {
		t.Errorf("attempts = %d, want 1: no retake after a pass", got)
	}
}
