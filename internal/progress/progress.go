// Package progress is the single source of truth for persisted learner
// state: completed tasks, exam scores, active track, and theme. It holds
// no unlock rules; those live in the gating package.
package progress

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/curriculum"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

// Persisted key names. Values are JSON.
const (
	KeyCompletedTasks = "completedTasks"
	KeyExamScores     = "examScores"
	KeyActiveTrack    = "activeTrack"
	KeyTheme          = "themePreference"
	KeyAttempts       = "examAttempts"
)

// AllKeys lists every key the progress store owns, for reset tooling.
func AllKeys() []string {
	return []string{KeyCompletedTasks, KeyExamScores, KeyActiveTrack, KeyTheme, KeyAttempts}
}

// Store keeps learner state in memory and mirrors every mutation to the
// KV backend. Backend failures degrade to memory-only operation: the
// caller never sees an error, a single warning goes to stderr.
type Store struct {
	kv    store.KV
	state State

	warned bool
	warnTo io.Writer

	now   func() time.Time
	newID func() string
}

// New creates a Store over kv with empty state. Call Load before use.
func New(kv store.KV) *Store {
	return &Store{
		kv:     kv,
		state:  NewState(),
		warnTo: os.Stderr,
		now:    time.Now,
		newID:  func() string { return uuid.NewString() },
	}
}

// NewStore creates a Store and loads learner state from kv. Corrupt or
// missing values fall back to that key's default without affecting the
// other keys.
func NewStore(ctx context.Context, kv store.KV) *Store {
	s := New(kv)
	s.Load(ctx)
	return s
}

// Load reads every persisted key, degrading per key on corruption.
func (s *Store) Load(ctx context.Context) {
	if raw, ok := s.get(ctx, KeyCompletedTasks); ok {
		var ids []string
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			s.warnf("discarding corrupt %s: %v", KeyCompletedTasks, err)
		} else {
			for _, id := range ids {
				s.state.Completed[id] = true
			}
		}
	}

	if raw, ok := s.get(ctx, KeyExamScores); ok {
		var scores map[curriculum.TrackID]map[int]int
		if err := json.Unmarshal([]byte(raw), &scores); err != nil {
			s.warnf("discarding corrupt %s: %v", KeyExamScores, err)
		} else if !scoresValid(scores) {
			s.warnf("discarding %s: score out of range", KeyExamScores)
		} else if scores != nil {
			s.state.Scores = scores
		}
	}

	if raw, ok := s.get(ctx, KeyActiveTrack); ok {
		var track curriculum.TrackID
		if err := json.Unmarshal([]byte(raw), &track); err != nil {
			s.warnf("discarding corrupt %s: %v", KeyActiveTrack, err)
		} else if _, err := curriculum.Get(track); err == nil {
			s.state.ActiveTrack = track
		}
	}

	if raw, ok := s.get(ctx, KeyTheme); ok {
		var theme Theme
		if err := json.Unmarshal([]byte(raw), &theme); err != nil {
			s.warnf("discarding corrupt %s: %v", KeyTheme, err)
		} else if theme == ThemeDark || theme == ThemeLight {
			s.state.Theme = theme
		}
	}

	if raw, ok := s.get(ctx, KeyAttempts); ok {
		var attempts []Attempt
		if err := json.Unmarshal([]byte(raw), &attempts); err != nil {
			s.warnf("discarding corrupt %s: %v", KeyAttempts, err)
		} else {
			s.state.Attempts = attempts
		}
	}
}

func scoresValid(scores map[curriculum.TrackID]map[int]int) bool {
	for _, phases := range scores {
		for _, v := range phases {
			if v < 0 || v > 100 {
				return false
			}
		}
	}
	return true
}

// Snapshot returns a copy of the current in-memory state.
func (s *Store) Snapshot() State {
	cp := NewState()
	for id := range s.state.Completed {
		cp.Completed[id] = true
	}
	for track, phases := range s.state.Scores {
		m := make(map[int]int, len(phases))
		for p, v := range phases {
			m[p] = v
		}
		cp.Scores[track] = m
	}
	cp.ActiveTrack = s.state.ActiveTrack
	cp.Theme = s.state.Theme
	cp.Attempts = append(cp.Attempts, s.state.Attempts...)
	return cp
}

// IsCompleted reports whether a task is in the completed set.
func (s *Store) IsCompleted(taskID string) bool {
	return s.state.Completed[taskID]
}

// ToggleTask flips membership of taskID and persists the new set.
// Returns the new membership.
func (s *Store) ToggleTask(ctx context.Context, taskID string) bool {
	if s.state.Completed[taskID] {
		delete(s.state.Completed, taskID)
	} else {
		s.state.Completed[taskID] = true
	}
	s.persistCompleted(ctx)
	return s.state.Completed[taskID]
}

// RecordExamScore overwrites the latest score for the phase and appends
// an entry to the attempt history. A retake score replaces the previous
// one even when lower.
func (s *Store) RecordExamScore(ctx context.Context, track curriculum.TrackID, phaseID, score int) {
	if s.state.Scores[track] == nil {
		s.state.Scores[track] = make(map[int]int)
	}
	s.state.Scores[track][phaseID] = score
	s.state.Attempts = append(s.state.Attempts, Attempt{
		ID:      s.newID(),
		Track:   track,
		PhaseID: phaseID,
		Score:   score,
		At:      s.now(),
	})
	s.set(ctx, KeyExamScores, s.state.Scores)
	s.set(ctx, KeyAttempts, s.state.Attempts)
}

// SetActiveTrack persists the selected track so reload resumes it.
func (s *Store) SetActiveTrack(ctx context.Context, track curriculum.TrackID) {
	s.state.ActiveTrack = track
	s.set(ctx, KeyActiveTrack, track)
}

// ClearActiveTrack returns the learner to the track chooser.
func (s *Store) ClearActiveTrack(ctx context.Context) {
	s.state.ActiveTrack = ""
	if err := s.kv.Delete(ctx, KeyActiveTrack); err != nil {
		s.warnf("persist %s: %v", KeyActiveTrack, err)
	}
}

// SetTheme persists the display preference.
func (s *Store) SetTheme(ctx context.Context, theme Theme) {
	s.state.Theme = theme
	s.set(ctx, KeyTheme, theme)
}

// persistCompleted writes the completed set as a sorted flat JSON array,
// the same shape the original data used, so stored ids round-trip.
func (s *Store) persistCompleted(ctx context.Context) {
	ids := make([]string, 0, len(s.state.Completed))
	for id := range s.state.Completed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	s.set(ctx, KeyCompletedTasks, ids)
}

func (s *Store) get(ctx context.Context, key string) (string, bool) {
	raw, ok, err := s.kv.Get(ctx, key)
	if err != nil {
		s.warnf("read %s: %v", key, err)
		return "", false
	}
	return raw, ok
}

func (s *Store) set(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		s.warnf("encode %s: %v", key, err)
		return
	}
	if err := s.kv.Set(ctx, key, string(b)); err != nil {
		s.warnf("persist %s: %v", key, err)
	}
}

// warnf logs at most one persistence warning per session.
func (s *Store) warnf(format string, args ...any) {
	if s.warned {
		return
	}
	s.warned = true
	fmt.Fprintf(s.warnTo, "pocket-academy: progress persistence degraded: "+format+"\n", args...)
}
