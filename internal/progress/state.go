package progress

import (
	"time"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
)

// Theme is the persisted display preference.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Attempt is one completed exam attempt, pass or fail. The attempt log
// is append-only history; gating reads only the latest score per phase.
type Attempt struct {
	ID      string             `json:"id"`
	Track   curriculum.TrackID `json:"track"`
	PhaseID int                `json:"phase"`
	Score   int                `json:"score"`
	At      time.Time          `json:"at"`
}

// State is the full persisted learner state. Zero value = fresh learner.
type State struct {
	// Completed holds completed task ids across all tracks. Ids not in
	// any catalog are tolerated and preserved, never produced.
	Completed map[string]bool

	// Scores maps track -> phase id -> latest completed attempt score.
	// Entries are created by finished exam attempts only and never deleted.
	Scores map[curriculum.TrackID]map[int]int

	// ActiveTrack is the last-selected track, empty when on the home screen.
	ActiveTrack curriculum.TrackID

	// Theme is the display preference, empty when never set.
	Theme Theme

	// Attempts is the exam attempt history, oldest first.
	Attempts []Attempt
}

// NewState returns an empty learner state with allocated maps.
func NewState() State {
	return State{
		Completed: make(map[string]bool),
		Scores:    make(map[curriculum.TrackID]map[int]int),
	}
}

// Score returns the recorded score for a phase and whether one exists.
func (s State) Score(track curriculum.TrackID, phaseID int) (int, bool) {
	m, ok := s.Scores[track]
	if !ok {
		return 0, false
	}
	v, ok := m[phaseID]
	return v, ok
}
