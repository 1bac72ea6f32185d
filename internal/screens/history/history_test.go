package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduquest/internal/store"
)

type fakeRepo struct {
	store.EventRepo
	results []store.GameResultRecord
	totals  []store.GameTotals
	err     error
	opts    store.QueryOpts
}

func (f *fakeRepo) QueryGameResults(_ context.Context, opts store.QueryOpts) ([]store.GameResultRecord, error) {
	f.opts = opts
	return f.results, f.err
}

func (f *fakeRepo) GameTotals(context.Context) ([]store.GameTotals, error) {
	return f.totals, nil
}

func record(id, g, subject, reason string, score, total, xp int) store.GameResultRecord {
	return store.GameResultRecord{
		Timestamp: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
		GameResultEventData: store.GameResultEventData{
			SessionID: id, Game: g, Subject: subject, Reason: reason,
			Score: score, Total: total, XP: xp, SecondsUsed: 75,
		},
	}
}

func load(t *testing.T, s *HistoryScreen) {
	t.Helper()
	s.Update(s.Init()())
	if !s.loaded {
		t.Fatal("screen should be loaded")
	}
}

func TestHistoryListsResults(t *testing.T) {
	repo := &fakeRepo{
		results: []store.GameResultRecord{
			record("5f8a2c1e-aaaa", "quiz", "math", "completed", 4, 5, 400),
			record("b2", "word", "science", "out-of-lives", 1, 6, 0),
		},
		totals: []store.GameTotals{{Game: "quiz", Played: 1, Cleared: 1, XP: 400}, {Game: "word", Played: 1}},
	}
	s := New(repo)
	load(t, s)

	if repo.opts.Limit != 50 {
		t.Errorf("limit = %d, want 50", repo.opts.Limit)
	}

	view := s.View(120, 30)
	for _, want := range []string{"Kuis", "Matematika", "4/5 benar", "Selesai", "Tebak Kata", "Nyawa habis", "400 XP"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "5f8a2c1e") {
		t.Error("details should be hidden until expanded")
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(120, 30), "Sesi 5f8a2c1e") {
		t.Error("expanded row should show the session id")
	}
}

func TestHistoryNavigationClamps(t *testing.T) {
	repo := &fakeRepo{results: []store.GameResultRecord{
		record("a", "quiz", "math", "completed", 1, 5, 100),
		record("b", "puzzle", "history", "solved", 8, 8, 0),
	}}
	s := New(repo)
	load(t, s)

	for range 5 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	if s.selected != 1 {
		t.Errorf("selected = %d, want 1", s.selected)
	}
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if s.selected != 0 {
		t.Errorf("selected = %d, want 0", s.selected)
	}
}

func TestHistoryEmptyAndError(t *testing.T) {
	s := New(&fakeRepo{})
	if !strings.Contains(s.View(80, 20), "Memuat") {
		t.Error("expected loading text before data arrives")
	}
	load(t, s)
	if !strings.Contains(s.View(80, 20), "Belum ada permainan") {
		t.Error("expected empty state")
	}

	s = New(&fakeRepo{err: errors.New("disk on fire")})
	load(t, s)
	if !strings.Contains(s.View(80, 20), "disk on fire") {
		t.Error("expected the load error")
	}
}
