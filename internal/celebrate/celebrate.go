// Package celebrate renders a short-lived celebration banner. Two tiers:
// Minor for finishing a phase's tasks, Milestone for passing an exam or
// completing a track. The banner animates for a fixed duration and then
// clears itself; callers just forward messages and check Active.
package celebrate

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// Tier selects the banner's intensity.
type Tier int

const (
	Minor Tier = iota
	Milestone
)

const frameInterval = 150 * time.Millisecond

// Frame counts per tier.
const (
	minorFrames     = 8
	milestoneFrames = 16
)

var sparkles = []string{"✦", "★", "✧", "✸"}

type tickMsg time.Time

// Model is the banner state. Zero value is inactive.
type Model struct {
	tier    Tier
	message string
	active  bool
	frame   int
}

// Start activates the banner and returns the animation tick command.
func (m *Model) Start(tier Tier, message string) tea.Cmd {
	m.tier = tier
	m.message = message
	m.active = true
	m.frame = 0
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update advances the animation. Returns the next tick command while the
// banner is running, nil otherwise.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if _, ok := msg.(tickMsg); !ok || !m.active {
		return nil
	}

	m.frame++
	limit := minorFrames
	if m.tier == Milestone {
		limit = milestoneFrames
	}
	if m.frame >= limit {
		m.active = false
		return nil
	}
	return tick()
}

// Active reports whether the banner is currently showing.
func (m Model) Active() bool {
	return m.active
}

// View renders the banner centered in the given width. Empty when inactive.
func (m Model) View(width int) string {
	if !m.active {
		return ""
	}

	spark := sparkles[m.frame%len(sparkles)]
	line := spark + "  " + m.message + "  " + spark
	if m.tier == Milestone {
		edge := strings.Repeat(spark+" ", 3)
		line = edge + " " + m.message + " " + edge
	}

	style := lipgloss.NewStyle().
		Foreground(theme.Active.Accent).
		Bold(true).
		Width(width).
		Align(lipgloss.Center)
	return style.Render(line)
}
