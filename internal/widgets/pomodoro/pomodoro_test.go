package pomodoro

import (
	"testing"
	"time"
)

func TestStartsPaused(t *testing.T) {
	m := New()
	if m.Running() {
		t.Error("new timer should be paused")
	}
	if m.mode != Work || m.remaining != workDuration {
		t.Errorf("new timer = %v %v, want full work segment", m.mode, m.remaining)
	}
}

func TestToggleStartsAndPauses(t *testing.T) {
	m := New()

	m, cmd := m.Toggle()
	if !m.Running() || cmd == nil {
		t.Fatal("first toggle should start the timer with a tick")
	}

	m, cmd = m.Toggle()
	if m.Running() || cmd != nil {
		t.Error("second toggle should pause without a tick")
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	m := New()
	m, _ = m.Update(tickMsg(time.Now()))
	if m.remaining != workDuration {
		t.Error("paused timer must not count down")
	}
}

func TestWorkRollsIntoBreak(t *testing.T) {
	m := New()
	m, _ = m.Toggle()
	m.remaining = time.Second

	m, cmd := m.Update(tickMsg(time.Now()))

	if m.mode != Break || m.remaining != breakDuration {
		t.Errorf("after work segment: mode %v remaining %v, want full break", m.mode, m.remaining)
	}
	if !m.Running() || cmd == nil {
		t.Error("rollover should keep ticking")
	}
}

func TestBreakRollsBackToWork(t *testing.T) {
	m := New()
	m, _ = m.Toggle()
	m.mode = Break
	m.remaining = time.Second

	m, _ = m.Update(tickMsg(time.Now()))

	if m.mode != Work || m.remaining != workDuration {
		t.Errorf("after break segment: mode %v remaining %v, want full work", m.mode, m.remaining)
	}
}

func TestResetReturnsToPausedWork(t *testing.T) {
	m := New()
	m, _ = m.Toggle()
	m.remaining = time.Minute

	m = m.Reset()

	if m.Running() || m.mode != Work || m.remaining != workDuration {
		t.Error("reset should return a paused full work segment")
	}
}
