package gate

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/theboiblazin2026-oss/pocket-academy/internal/progress"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/router"
	"github.com/theboiblazin2026-oss/pocket-academy/internal/store"
)

func typeWord(g *GateScreen, word string) {
	for _, r := range word {
		g.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func newTestGate(t *testing.T) *GateScreen {
	t.Helper()
	st := progress.NewStore(context.Background(), store.NewMemory())
	return New("1234", st)
}

func TestWrongPassphraseStaysLocked(t *testing.T) {
	g := newTestGate(t)
	g.Init()

	typeWord(g, "9999")
	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd != nil {
		t.Fatal("wrong passphrase must not navigate")
	}
	if !g.failed {
		t.Error("failure message should be shown")
	}
	if g.input.Value() != "" {
		t.Error("input should clear after a wrong entry")
	}
}

func TestCorrectPassphraseUnlocks(t *testing.T) {
	g := newTestGate(t)
	g.Init()

	typeWord(g, "1234")
	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("correct passphrase should navigate")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg to the track chooser")
	}
}

func TestRetryAfterFailure(t *testing.T) {
	g := newTestGate(t)
	g.Init()

	typeWord(g, "nope")
	g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	typeWord(g, "1234")
	_, cmd := g.Update(tea.KeyPressMsg{Code: tea.KeyEnter})

	if cmd == nil {
		t.Fatal("gate should accept the passphrase on a later try")
	}
}
