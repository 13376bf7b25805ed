package gating

import (
	"testing"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
)

// twoOpt builds a minimal exam question.
func twoOpt() curriculum.ExamQuestion {
	return curriculum.ExamQuestion{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 0}
}

// testTrack builds a 3-phase track with one task per phase and exams on
// every phase.
func testTrack() curriculum.Track {
	return curriculum.Track{
		ID:   curriculum.TrackWeb,
		Name: "Test",
		Phases: []curriculum.Phase{
			{ID: 0, Title: "P0", Tasks: []curriculum.Task{{ID: "p0-1", Text: "t"}}, Exam: []curriculum.ExamQuestion{twoOpt()}},
			{ID: 1, Title: "P1", Tasks: []curriculum.Task{{ID: "p1-1", Text: "t"}}, Exam: []curriculum.ExamQuestion{twoOpt()}},
			{ID: 2, Title: "P2", Tasks: []curriculum.Task{{ID: "p2-1", Text: "t"}}, Exam: []curriculum.ExamQuestion{twoOpt()}},
		},
	}
}

func stateWith(completed []string, scores map[int]int) progress.State {
	st := progress.NewState()
	for _, id := range completed {
		st.Completed[id] = true
	}
	if scores != nil {
		st.Scores[curriculum.TrackWeb] = scores
	}
	return st
}

func TestFreshStateOnlyPhaseZeroUnlocked(t *testing.T) {
	statuses := Evaluate(testTrack(), progress.NewState())

	if statuses[0].Locked {
		t.Error("phase 0 must always be unlocked")
	}
	if !statuses[1].Locked || !statuses[2].Locked {
		t.Error("later phases must start locked")
	}
}

func TestPassingScoreUnlocksNextPhase(t *testing.T) {
	statuses := Evaluate(testTrack(), stateWith(nil, map[int]int{0: 80}))

	if statuses[1].Locked {
		t.Error("phase 1 should unlock after phase 0 scores 80")
	}
	if !statuses[2].Locked {
		t.Error("phase 2 should stay locked until phase 1 passes")
	}
}

func TestFailingScoreKeepsLock(t *testing.T) {
	statuses := Evaluate(testTrack(), stateWith(nil, map[int]int{0: 79}))

	if !statuses[1].Locked {
		t.Error("79 is below threshold and must not unlock")
	}
	if !statuses[0].HasScore || statuses[0].Score != 79 {
		t.Error("failing score should still be visible")
	}
}

func TestGatingMonotonicity(t *testing.T) {
	// Phase 1 passed but phase 0 not: phase 2 opens on its direct
	// predecessor only, while phase 1 itself stays locked.
	statuses := Evaluate(testTrack(), stateWith(nil, map[int]int{1: 100}))

	if statuses[0].Locked {
		t.Error("phase 0 unlocked always")
	}
	if !statuses[1].Locked {
		t.Error("phase 1 locked without a phase 0 pass")
	}
	if statuses[2].Locked {
		t.Error("phase 2 unlocks on phase 1's recorded pass")
	}
}

func TestExamAvailability(t *testing.T) {
	track := testTrack()

	statuses := Evaluate(track, stateWith(nil, nil))
	if statuses[0].ExamAvailable {
		t.Error("exam not offered before tasks complete")
	}

	statuses = Evaluate(track, stateWith([]string{"p0-1"}, nil))
	if !statuses[0].ExamAvailable {
		t.Error("exam offered once all tasks complete")
	}

	statuses = Evaluate(track, stateWith([]string{"p0-1"}, map[int]int{0: 90}))
	if statuses[0].ExamAvailable {
		t.Error("exam not offered again after a pass")
	}

	statuses = Evaluate(track, stateWith([]string{"p0-1"}, map[int]int{0: 40}))
	if !statuses[0].ExamAvailable {
		t.Error("exam still offered after a fail")
	}
}

func TestExamlessPhasePassesOnTaskCompletion(t *testing.T) {
	track := testTrack()
	track.Phases[0].Exam = nil

	statuses := Evaluate(track, stateWith(nil, nil))
	if !statuses[1].Locked {
		t.Error("phase 1 locked while examless phase 0 has open tasks")
	}

	statuses = Evaluate(track, stateWith([]string{"p0-1"}, nil))
	if !statuses[0].Passed {
		t.Error("examless phase passes when its tasks are done")
	}
	if statuses[1].Locked {
		t.Error("phase 1 unlocks behind a completed examless phase")
	}
	if statuses[0].ExamAvailable {
		t.Error("no exam to offer on an examless phase")
	}
}

func TestTrackIsolation(t *testing.T) {
	web, err := curriculum.Get(curriculum.TrackWeb)
	if err != nil {
		t.Fatal(err)
	}
	trucking, err := curriculum.Get(curriculum.TrackTrucking)
	if err != nil {
		t.Fatal(err)
	}

	// Complete every trucking task; web must see none of it.
	st := progress.NewState()
	for _, p := range trucking.Phases {
		for _, task := range p.Tasks {
			st.Completed[task.ID] = true
		}
	}

	if !TrackComplete(trucking, st) {
		t.Fatal("trucking should be fully complete")
	}
	if done, _ := TrackProgress(web, st); done != 0 {
		t.Errorf("web sees %d completed tasks from trucking progress", done)
	}
	for i, ps := range Evaluate(web, st) {
		if ps.TaskComplete {
			t.Errorf("web phase %d marked task-complete by trucking ids", i)
		}
	}
}

func TestEndToEndUnlockScenario(t *testing.T) {
	web, err := curriculum.Get(curriculum.TrackWeb)
	if err != nil {
		t.Fatal(err)
	}

	st := progress.NewState()
	statuses := Evaluate(web, st)
	if statuses[0].Locked || !statuses[1].Locked {
		t.Fatal("fresh state: phase 0 open, phase 1 locked")
	}

	// Complete every task in phase 0.
	for _, task := range web.Phases[0].Tasks {
		st.Completed[task.ID] = true
	}
	statuses = Evaluate(web, st)
	if !statuses[0].ExamAvailable {
		t.Fatal("exam should become available")
	}

	// Perfect score on the phase 0 exam.
	st.Scores[curriculum.TrackWeb] = map[int]int{web.Phases[0].ID: 100}
	statuses = Evaluate(web, st)
	if statuses[1].Locked {
		t.Error("phase 1 should unlock after a perfect phase 0 exam")
	}
}

func TestStaleIDsDoNotCount(t *testing.T) {
	statuses := Evaluate(testTrack(), stateWith([]string{"not-in-catalog"}, nil))
	if statuses[0].CompletedTasks != 0 {
		t.Error("stale ids must not count toward any phase")
	}
}
