package phasedetail

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testTrack() curriculum.Track {
	return curriculum.Track{
		ID:   curriculum.TrackWeb,
		Name: "Test",
		Phases: []curriculum.Phase{
			{
				ID:    0,
				Title: "P0",
				Tasks: []curriculum.Task{
					{ID: "p0-1", Text: "first"},
					{ID: "p0-2", Text: "second"},
				},
				Exam: []curriculum.ExamQuestion{
					{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 0},
				},
			},
		},
	}
}

func newTestScreen(t *testing.T) (*PhaseDetailScreen, *progress.Store) {
	t.Helper()
	st := progress.NewStore(context.Background(), store.NewMemory())
	return New(st, testTrack(), 0), st
}

func TestSpaceTogglesTask(t *testing.T) {
	s, st := newTestScreen(t)

	s.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if !st.IsCompleted("p0-1") {
		t.Fatal("space should complete the selected task")
	}

	s.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	if st.IsCompleted("p0-1") {
		t.Error("second space should un-complete the task")
	}
}

func TestCursorMovesBetweenTasks(t *testing.T) {
	s, st := newTestScreen(t)

	s.Update(keyPress('j'))
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if st.IsCompleted("p0-1") || !st.IsCompleted("p0-2") {
		t.Error("toggle should hit the task under the cursor")
	}
}

func TestExamKeyIgnoredUntilTasksComplete(t *testing.T) {
	s, _ := newTestScreen(t)

	if _, cmd := s.Update(keyPress('e')); cmd != nil {
		t.Fatal("exam must not open with open tasks")
	}
}

func TestExamKeyOpensExamWhenAvailable(t *testing.T) {
	s, st := newTestScreen(t)

	ctx := context.Background()
	st.ToggleTask(ctx, "p0-1")
	st.ToggleTask(ctx, "p0-2")

	_, cmd := s.Update(keyPress('e'))
	if cmd == nil {
		t.Fatal("exam should open once all tasks are complete")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected a PushScreenMsg onto the exam")
	}
}

func TestExamKeyIgnoredAfterPass(t *testing.T) {
	s, st := newTestScreen(t)

	ctx := context.Background()
	st.ToggleTask(ctx, "p0-1")
	st.ToggleTask(ctx, "p0-2")
	st.RecordExamScore(ctx, curriculum.TrackWeb, 0, 100)

	if _, cmd := s.Update(keyPress('e')); cmd != nil {
		t.Error("a passed exam is not offered again")
	}
}
