package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduquest/internal/router"
	"github.com/abhisek/eduquest/internal/screens/home"
)

// drain runs cmd and feeds navigation messages back into the model.
func drain(t *testing.T, m AppModel, cmd tea.Cmd) AppModel {
	t.Helper()
	if cmd == nil {
		return m
	}
	msg := cmd()
	switch msg.(type) {
	case router.PushScreenMsg, router.PopScreenMsg, router.ReplaceScreenMsg:
		next, _ := m.Update(msg)
		return next.(AppModel)
	}
	return m
}

func TestWelcomeThenHome(t *testing.T) {
	m := newAppModel(Options{})
	if m.router.Active().Title() != "" {
		t.Fatalf("expected the welcome screen first, got %q", m.router.Active().Title())
	}

	next, cmd := m.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	m = drain(t, next.(AppModel), cmd)

	if _, ok := m.router.Active().(*home.HomeScreen); !ok {
		t.Fatalf("expected home after a keypress, got %T", m.router.Active())
	}
	if m.router.Depth() != 1 {
		t.Errorf("welcome should be replaced, depth = %d", m.router.Depth())
	}
}

func TestEscPopsToHome(t *testing.T) {
	m := newAppModel(Options{})
	next, cmd := m.Update(tea.KeyPressMsg{Code: ' ', Text: " "})
	m = drain(t, next.(AppModel), cmd)

	// Without a provider the tutor item is selected and opens a placeholder.
	next, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	m = drain(t, next.(AppModel), cmd)
	if m.router.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", m.router.Depth())
	}

	next, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(t, next.(AppModel), cmd)
	if m.router.Depth() != 1 {
		t.Errorf("esc should pop back to home, depth = %d", m.router.Depth())
	}
}

func TestFooterUsesScreenHints(t *testing.T) {
	m := newAppModel(Options{})
	hints := m.footerHints(m.router.Active())
	if len(hints) != 3 || hints[0].Key != "↑↓" {
		t.Errorf("welcome should use the default hints, got %+v", hints)
	}
}
