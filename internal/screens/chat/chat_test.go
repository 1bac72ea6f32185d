package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/eduquest/internal/content"
	"github.com/abhisek/eduquest/internal/tutor"
)

type stubReplier struct {
	reply   string
	err     error
	history [][]content.Turn
}

func (r *stubReplier) TutorReply(_ context.Context, _ string, history []content.Turn) (string, error) {
	r.history = append(r.history, history)
	return r.reply, r.err
}

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestSendAndReceive(t *testing.T) {
	r := &stubReplier{reply: "Fotosintesis adalah proses tumbuhan membuat makanan."}
	s := New(r)

	s.input.Model.SetValue("  Apa itu fotosintesis?  ")
	_, cmd := s.Update(enter())
	if cmd == nil {
		t.Fatal("enter with text should send")
	}
	if !s.conv.Pending() {
		t.Error("conversation should be pending")
	}
	if s.input.Value() != "" {
		t.Error("input should be cleared after sending")
	}

	// A second send while pending is rejected.
	s.input.Model.SetValue("lagi")
	if _, again := s.Update(enter()); again != nil {
		t.Error("send while pending should be ignored")
	}

	s.Update(cmd())

	turns := s.conv.Turns()
	if len(turns) != 3 {
		t.Fatalf("got %d turns, want 3", len(turns))
	}
	if turns[1].Text != "Apa itu fotosintesis?" || turns[1].Author != content.AuthorLearner {
		t.Errorf("learner turn = %+v", turns[1])
	}
	if turns[2].Text != r.reply {
		t.Errorf("tutor turn = %q", turns[2].Text)
	}
	if len(r.history[0]) != 1 || r.history[0][0].Text != tutor.Greeting {
		t.Errorf("history passed = %+v, want the greeting only", r.history[0])
	}
}

func TestBlankInputIgnored(t *testing.T) {
	s := New(&stubReplier{})
	s.input.Model.SetValue("   ")
	if _, cmd := s.Update(enter()); cmd != nil {
		t.Error("blank input should not send")
	}
	if len(s.conv.Turns()) != 1 {
		t.Error("blank input should not add a turn")
	}
}

func TestFailureShowsFallback(t *testing.T) {
	s := New(&stubReplier{err: errors.New("boom")})
	s.input.Model.SetValue("Halo")
	_, cmd := s.Update(enter())
	s.Update(cmd())

	turns := s.conv.Turns()
	if turns[len(turns)-1].Text != tutor.FailureFallback {
		t.Errorf("last turn = %q, want failure fallback", turns[len(turns)-1].Text)
	}
	if !strings.Contains(s.View(100, 30), "Sinyal belajarku") {
		t.Error("view should show the fallback message")
	}
}

func TestTail(t *testing.T) {
	if got := tail("a\nb\nc\nd", 2); got != "c\nd" {
		t.Errorf("tail = %q", got)
	}
	if got := tail("a\nb", 5); got != "a\nb" {
		t.Errorf("tail = %q", got)
	}
}
