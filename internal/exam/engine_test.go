package exam

import (
	"testing"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
)

// questions builds n two-option questions whose correct answer is 0.
func questions(n int) []curriculum.ExamQuestion {
	qs := make([]curriculum.ExamQuestion, n)
	for i := range qs {
		qs[i] = curriculum.ExamQuestion{
			Question:     "q",
			Options:      []string{"right", "wrong"},
			CorrectIndex: 0,
		}
	}
	return qs
}

// run drives a full attempt; answers[i] is the option picked for question i.
func run(e *Engine, answers []int) {
	for _, a := range answers {
		e.SelectOption(a)
		e.Advance()
	}
}

func TestScoreRounding(t *testing.T) {
	tests := []struct {
		name    string
		total   int
		correct int
		want    int
	}{
		{"4 of 5", 5, 4, 80},
		{"3 of 5", 5, 3, 60},
		{"1 of 1", 1, 1, 100},
		{"0 of 1", 1, 0, 0},
		{"1 of 3", 3, 1, 33},
		{"2 of 3", 3, 2, 67},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine(questions(tt.total))
			answers := make([]int, tt.total)
			for i := range answers {
				if i >= tt.correct {
					answers[i] = 1
				}
			}
			run(e, answers)

			if e.Phase() != Completed {
				t.Fatalf("phase = %v, want Completed", e.Phase())
			}
			if e.Score() != tt.want {
				t.Errorf("score = %d, want %d", e.Score(), tt.want)
			}
		})
	}
}

func TestPassThreshold(t *testing.T) {
	e := NewEngine(questions(5))
	run(e, []int{0, 0, 0, 0, 1}) // 4/5 = 80
	if !e.Passed() {
		t.Error("80 should pass")
	}

	e = NewEngine(questions(5))
	run(e, []int{0, 0, 0, 1, 1}) // 3/5 = 60
	if e.Passed() {
		t.Error("60 should not pass")
	}
}

func TestFirstAnswerBinding(t *testing.T) {
	e := NewEngine(questions(1))

	e.SelectOption(1)
	// A second select for the same question is ignored.
	e.SelectOption(0)
	e.Advance()

	if e.Score() != 0 {
		t.Errorf("score = %d, want 0: second select must not overwrite", e.Score())
	}
}

func TestTwoStepSelectThenAdvance(t *testing.T) {
	e := NewEngine(questions(2))

	if e.Phase() != InProgress || e.Current() != 0 {
		t.Fatalf("initial state = %v, %d", e.Phase(), e.Current())
	}

	// Advance without a selection is a no-op.
	e.Advance()
	if e.Phase() != InProgress {
		t.Error("Advance in InProgress should be ignored")
	}

	e.SelectOption(0)
	if e.Phase() != AwaitingAdvance {
		t.Errorf("phase after select = %v, want AwaitingAdvance", e.Phase())
	}
	if !e.SelectedCorrect() {
		t.Error("selected option 0 should be correct")
	}

	e.Advance()
	if e.Phase() != InProgress || e.Current() != 1 {
		t.Errorf("after advance: phase %v, current %d, want InProgress, 1", e.Phase(), e.Current())
	}
}

func TestOutOfRangeOptionIgnored(t *testing.T) {
	e := NewEngine(questions(1))
	e.SelectOption(7)
	if e.Phase() != InProgress {
		t.Error("out-of-range option should be ignored")
	}
	e.SelectOption(-1)
	if e.Phase() != InProgress {
		t.Error("negative option should be ignored")
	}
}

func TestCompletionReportsExactlyOnce(t *testing.T) {
	e := NewEngine(questions(1))
	run(e, []int{1}) // failing score

	score, ok := e.TakeResult()
	if !ok || score != 0 {
		t.Errorf("TakeResult = %d, %v, want 0, true: failing scores are still recorded", score, ok)
	}
	if _, ok := e.TakeResult(); ok {
		t.Error("TakeResult should fire only once per attempt")
	}
}

func TestRetakeResetsAttempt(t *testing.T) {
	e := NewEngine(questions(2))
	run(e, []int{1, 1}) // 0%

	// Retake is valid only in Completed.
	e.Retake()
	if e.Phase() != InProgress || e.Current() != 0 {
		t.Fatalf("after retake: phase %v, current %d", e.Phase(), e.Current())
	}
	if _, ok := e.Answer(0); ok {
		t.Error("retake should discard previous answers")
	}

	run(e, []int{0, 0}) // 100%
	if score, ok := e.TakeResult(); !ok || score != 100 {
		t.Errorf("retake result = %d, %v, want 100, true", score, ok)
	}
}

func TestRetakeOutsideCompletedIgnored(t *testing.T) {
	e := NewEngine(questions(2))
	e.SelectOption(0)
	e.Retake()
	if e.Phase() != AwaitingAdvance {
		t.Error("Retake before completion should be ignored")
	}
}
