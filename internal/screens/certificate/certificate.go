// Package certificate renders the completion certificate for a fully
// finished track.
package certificate

import (
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/screen"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/layout"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/ui/theme"
)

// CertificateScreen shows the award for completing every task of a track.
type CertificateScreen struct {
	trackName string
	awardedAt time.Time
}

var _ screen.Screen = (*CertificateScreen)(nil)
var _ screen.KeyHintProvider = (*CertificateScreen)(nil)

// New creates a certificate for the named track, dated now.
func New(trackName string) *CertificateScreen {
	return &CertificateScreen{
		trackName: trackName,
		awardedAt: time.Now(),
	}
}

func (s *CertificateScreen) Init() tea.Cmd {
	return nil
}

func (s *CertificateScreen) Title() string {
	return "Certificate"
}

func (s *CertificateScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CertificateScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	return s, nil
}

func (s *CertificateScreen) View(width, height int) string {
	inner := theme.Title.Render("★ Certificate of Completion ★") + "\n\n" +
		theme.Subtitle.Render("This certifies that you have completed") + "\n\n" +
		theme.Body.Bold(true).Render(s.trackName) + "\n\n" +
		theme.Subtitle.Render("every phase, every task, every exam") + "\n\n" +
		theme.Hint.Render(s.awardedAt.Format("January 2, 2006"))

	card := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Active.Accent).
		Padding(2, 6).
		Align(lipgloss.Center).
		Render(inner)

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}
