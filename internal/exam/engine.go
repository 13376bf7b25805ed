// Package exam drives one phase's exam attempt as an explicit state
// machine, independent of any rendering concern.
package exam

import (
	"math"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
)

// PassThreshold is the minimum score that unlocks the next phase.
const PassThreshold = 80

// Phase of an exam attempt.
type Phase int

const (
	// InProgress: the current question is shown, no option picked yet.
	InProgress Phase = iota
	// AwaitingAdvance: an option is picked and feedback is visible;
	// the learner must confirm before moving on.
	AwaitingAdvance
	// Completed: all questions answered, final score computed.
	Completed
)

// Engine runs a single phase's exam. Answers are binding on first
// select; the only way to change them is a full retake. Invalid calls
// for the current phase are silent no-ops.
type Engine struct {
	questions []curriculum.ExamQuestion

	phase    Phase
	current  int
	answers  map[int]int
	score    int
	reported bool
}

// NewEngine creates an engine for the given questions. The caller must
// not construct an engine for an empty exam; phases without questions
// are not exam-gated.
func NewEngine(questions []curriculum.ExamQuestion) *Engine {
	return &Engine{
		questions: questions,
		answers:   make(map[int]int),
	}
}

// Phase returns the current attempt phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Current returns the index of the question being shown.
func (e *Engine) Current() int {
	return e.current
}

// Question returns the question being shown.
func (e *Engine) Question() curriculum.ExamQuestion {
	return e.questions[e.current]
}

// Total returns the number of questions.
func (e *Engine) Total() int {
	return len(e.questions)
}

// Answer returns the recorded answer for a question index, if any.
func (e *Engine) Answer(idx int) (int, bool) {
	a, ok := e.answers[idx]
	return a, ok
}

// SelectOption records the learner's answer for the current question
// and moves to AwaitingAdvance so feedback can be shown. Only the
// first select per question counts.
func (e *Engine) SelectOption(option int) {
	if e.phase != InProgress {
		return
	}
	if option < 0 || option >= len(e.questions[e.current].Options) {
		return
	}
	e.answers[e.current] = option
	e.phase = AwaitingAdvance
}

// SelectedCorrect reports whether the answer shown in feedback is right.
func (e *Engine) SelectedCorrect() bool {
	if e.phase != AwaitingAdvance {
		return false
	}
	return e.answers[e.current] == e.questions[e.current].CorrectIndex
}

// Advance moves past the feedback view: to the next question, or to
// Completed when the last question was answered.
func (e *Engine) Advance() {
	if e.phase != AwaitingAdvance {
		return
	}
	if e.current == len(e.questions)-1 {
		e.score = e.computeScore()
		e.phase = Completed
		return
	}
	e.current++
	e.phase = InProgress
}

// Retake discards the completed attempt and restarts from question 0.
func (e *Engine) Retake() {
	if e.phase != Completed {
		return
	}
	e.phase = InProgress
	e.current = 0
	e.answers = make(map[int]int)
	e.score = 0
	e.reported = false
}

// Score returns the final score. Valid only in Completed.
func (e *Engine) Score() int {
	return e.score
}

// Passed reports whether the completed attempt met the threshold.
func (e *Engine) Passed() bool {
	return e.phase == Completed && e.score >= PassThreshold
}

// CorrectCount returns how many recorded answers are correct.
func (e *Engine) CorrectCount() int {
	n := 0
	for idx, ans := range e.answers {
		if ans == e.questions[idx].CorrectIndex {
			n++
		}
	}
	return n
}

// TakeResult consumes the one-time completion event. It returns the
// final score and true exactly once per completed attempt, so a score
// is recorded exactly once whether the attempt passed or failed.
func (e *Engine) TakeResult() (int, bool) {
	if e.phase != Completed || e.reported {
		return 0, false
	}
	e.reported = true
	return e.score, true
}

// computeScore rounds half away from zero, matching round-half-up for
// the non-negative ratios possible here: 4/5 correct is exactly 80.
func (e *Engine) computeScore() int {
	total := len(e.questions)
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(e.CorrectCount()) / float64(total)))
}
