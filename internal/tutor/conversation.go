// Package tutor holds the transcript of a chat with the AI tutor.
package tutor

import (
	"context"
	"strings"

	"github.com/abhisek/eduquest/internal/content"
)

const (
	Greeting = "Halo sobat EduQuest! 👋 Aku Tutor AI-mu. Ada materi SMP yang bikin pusing? " +
		"Tanyakan aja, kita bahas bareng biar jadi gampang!"
	EmptyReplyFallback = "Maaf, pikiranku lagi loading. Coba tanya lagi ya!"
	FailureFallback    = "Ups! Sinyal belajarku lagi keganggu. Sabar ya, coba lagi!"
)

// Replier produces a tutor reply. content.Provider satisfies it.
type Replier interface {
	TutorReply(ctx context.Context, message string, history []content.Turn) (string, error)
}

// Conversation is an ordered tutor transcript. At most one question is
// in flight at a time.
type Conversation struct {
	turns   []content.Turn
	pending bool

	// Err is the error from the most recent failed reply.
	Err error
}

// NewConversation starts a conversation with the tutor greeting.
func NewConversation() *Conversation {
	return &Conversation{
		turns: []content.Turn{{Author: content.AuthorTutor, Text: Greeting}},
	}
}

// Turns returns a copy of the transcript.
func (c *Conversation) Turns() []content.Turn {
	return append([]content.Turn(nil), c.turns...)
}

// Pending reports whether a reply is awaited.
func (c *Conversation) Pending() bool {
	return c.pending
}

// Begin records a learner message and returns the history that preceded
// it. ok is false when text is blank or a reply is still pending.
func (c *Conversation) Begin(text string) (history []content.Turn, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" || c.pending {
		return nil, false
	}
	history = c.Turns()
	c.turns = append(c.turns, content.Turn{Author: content.AuthorLearner, Text: text})
	c.pending = true
	return history, true
}

// Finish records the outcome of the pending request. A failure or an empty
// reply is shown as a tutor fallback message.
func (c *Conversation) Finish(reply string, err error) {
	if !c.pending {
		return
	}
	c.pending = false
	c.Err = err

	text := strings.TrimSpace(reply)
	switch {
	case err != nil:
		text = FailureFallback
	case text == "":
		text = EmptyReplyFallback
	}
	c.turns = append(c.turns, content.Turn{Author: content.AuthorTutor, Text: text})
}

// Ask runs Begin, calls r, and Finish in one step. It blocks on r.
func (c *Conversation) Ask(ctx context.Context, r Replier, text string) (string, bool) {
	history, ok := c.Begin(text)
	if !ok {
		return "", false
	}
	reply, err := r.TutorReply(ctx, strings.TrimSpace(text), history)
	c.Finish(reply, err)
	return c.turns[len(c.turns)-1].Text, true
}
