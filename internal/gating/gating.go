// Package gating derives which phases are open from the catalog and the
// learner's recorded progress. It is a pure view: it holds no state and
// never mutates the progress store.
package gating

import (
	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/exam"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
)

// PhaseStatus is the derived view of one phase for the presentation layer.
type PhaseStatus struct {
	Phase          curriculum.Phase
	CompletedTasks int
	TotalTasks     int
	TaskComplete   bool // every task of the phase is checked off
	Locked         bool
	Score          int  // latest recorded exam score
	HasScore       bool // false until an exam attempt completed
	Passed         bool // exam passed, or examless phase fully task-complete

	// ExamAvailable is true when the learner should be offered the exam:
	// all tasks done, an exam exists, and it has not been passed yet.
	ExamAvailable bool
}

// Evaluate computes the status of every phase in the track.
//
// Phase 0 is always unlocked. A later phase unlocks when the previous
// phase is passed: a recorded score at or above the threshold, or, for
// phases with no exam, all tasks complete. The examless rule keeps a
// quiz-free phase from permanently locking everything behind it.
func Evaluate(track curriculum.Track, state progress.State) []PhaseStatus {
	statuses := make([]PhaseStatus, len(track.Phases))

	for i, p := range track.Phases {
		st := PhaseStatus{
			Phase:      p,
			TotalTasks: len(p.Tasks),
		}
		for _, task := range p.Tasks {
			if state.Completed[task.ID] {
				st.CompletedTasks++
			}
		}
		st.TaskComplete = st.TotalTasks > 0 && st.CompletedTasks == st.TotalTasks

		if score, ok := state.Score(track.ID, p.ID); ok {
			st.Score = score
			st.HasScore = true
		}

		st.Passed = phasePassed(p, st)
		st.ExamAvailable = p.HasExam() && st.TaskComplete && !st.Passed

		if i == 0 {
			st.Locked = false
		} else {
			st.Locked = !statuses[i-1].Passed
		}
		statuses[i] = st
	}

	return statuses
}

func phasePassed(p curriculum.Phase, st PhaseStatus) bool {
	if !p.HasExam() {
		return st.TaskComplete
	}
	return st.HasScore && st.Score >= exam.PassThreshold
}

// TrackProgress returns completed and total task counts for the track,
// counting only ids the track's catalog owns. Completed ids from the
// other track (or stale ids) never bleed across.
func TrackProgress(track curriculum.Track, state progress.State) (completed, total int) {
	for _, p := range track.Phases {
		for _, task := range p.Tasks {
			total++
			if state.Completed[task.ID] {
				completed++
			}
		}
	}
	return completed, total
}

// TrackComplete reports whether every task in the track is done. This
// is the certificate condition.
func TrackComplete(track curriculum.Track, state progress.State) bool {
	completed, total := TrackProgress(track, state)
	return total > 0 && completed == total
}
