// Package pomodoro is a small focus timer widget embedded in the phase
// list: 25 minutes of work, 5 minutes of break, repeating. It renders a
// single line and runs off second ticks forwarded by its host screen.
package pomodoro

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// Mode is the current timer segment.
type Mode int

const (
	Work Mode = iota
	Break
)

const (
	workDuration  = 25 * time.Minute
	breakDuration = 5 * time.Minute
)

type tickMsg time.Time

// Model is the timer state.
type Model struct {
	mode      Mode
	remaining time.Duration
	running   bool
}

// New returns a paused work timer at full duration.
func New() Model {
	return Model{mode: Work, remaining: workDuration}
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Toggle starts or pauses the timer.
func (m Model) Toggle() (Model, tea.Cmd) {
	m.running = !m.running
	if m.running {
		return m, tick()
	}
	return m, nil
}

// Reset returns to a paused work segment at full duration.
func (m Model) Reset() Model {
	return Model{mode: Work, remaining: workDuration}
}

// Running reports whether the timer is counting down.
func (m Model) Running() bool {
	return m.running
}

// Update handles tick messages. A segment hitting zero rolls into the
// other segment and keeps running.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(tickMsg); !ok || !m.running {
		return m, nil
	}

	m.remaining -= time.Second
	if m.remaining <= 0 {
		if m.mode == Work {
			m.mode = Break
			m.remaining = breakDuration
		} else {
			m.mode = Work
			m.remaining = workDuration
		}
	}
	return m, tick()
}

// View renders the timer line.
func (m Model) View() string {
	label := "focus"
	if m.mode == Break {
		label = "break"
	}

	mins := int(m.remaining.Minutes())
	secs := int(m.remaining.Seconds()) % 60
	line := fmt.Sprintf("⏱ %02d:%02d %s", mins, secs, label)

	if !m.running {
		return theme.Hint.Render(line + " (paused)")
	}
	if m.mode == Break {
		return theme.Correct.Render(line)
	}
	return theme.Body.Foreground(theme.Active.Accent).Render(line)
}
