package game

import (
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/eduquest/internal/content"
)

// Phase is the lifecycle phase of a session.
type Phase int

const (
	PhaseLoading  Phase = iota // Waiting for content
	PhasePlaying               // Accepting intents and ticks
	PhaseFinished              // Terminal
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePlaying:
		return "playing"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

// Reason records why a session finished.
type Reason int

const (
	ReasonNone Reason = iota
	ReasonCompleted
	ReasonSolved
	ReasonOutOfLives
	ReasonTimedOut
)

// String returns the name stored in game result events.
func (r Reason) String() string {
	switch r {
	case ReasonCompleted:
		return "completed"
	case ReasonSolved:
		return "solved"
	case ReasonOutOfLives:
		return "out-of-lives"
	case ReasonTimedOut:
		return "timed-out"
	default:
		return ""
	}
}

// Msg is anything that can be dispatched into a session: a game intent or
// a Tick.
type Msg any

// Tick is one elapsed second for the session with the given ID.
type Tick struct {
	Session string
}

// Game is the per-game payload driven by a Session.
type Game interface {
	// Apply handles one intent. changed reports whether state moved; a
	// non-None end finishes the session.
	Apply(msg Msg) (changed bool, end Reason)

	// Expire is called when the countdown reaches zero and returns the
	// finish reason.
	Expire() Reason
}

// Session is one play-through of a game, from content load to a terminal
// outcome. All mutation goes through Dispatch.
type Session[G Game] struct {
	// ID is unique per session; ticks carry it so a timer armed for a
	// replaced session cannot touch this one.
	ID      string
	Subject content.Subject
	Phase   Phase
	Reason  Reason

	// Limit is the countdown length in seconds; Remaining counts down.
	Limit     int
	Remaining int

	// Err is the last fetch or content error while loading.
	Err error

	Game G
}

// NewSession creates a loading session with a fresh ID.
func NewSession[G Game](subject content.Subject, limit int) *Session[G] {
	return &Session[G]{
		ID:        uuid.NewString(),
		Subject:   subject,
		Phase:     PhaseLoading,
		Limit:     limit,
		Remaining: limit,
	}
}

// Start installs the loaded game and begins play. It is a no-op unless the
// session is loading.
func (s *Session[G]) Start(g G) bool {
	if s.Phase != PhaseLoading {
		return false
	}
	s.Game = g
	s.Err = nil
	s.Phase = PhasePlaying
	s.Remaining = s.Limit
	return true
}

// Fail records a fetch error. The session stays in loading; the only way
// forward is a new session.
func (s *Session[G]) Fail(err error) {
	if s.Phase == PhaseLoading {
		s.Err = err
	}
}

// Tick returns the tick message for this session.
func (s *Session[G]) Tick() Tick {
	return Tick{Session: s.ID}
}

// Dispatch applies msg and reports whether state changed. Anything outside
// the playing phase is rejected.
func (s *Session[G]) Dispatch(msg Msg) bool {
	if s.Phase != PhasePlaying {
		return false
	}

	if t, ok := msg.(Tick); ok {
		if t.Session != s.ID {
			return false
		}
		if s.Remaining > 0 {
			s.Remaining--
		}
		if s.Remaining == 0 {
			s.finish(s.Game.Expire())
		}
		return true
	}

	changed, end := s.Game.Apply(msg)
	if end != ReasonNone {
		s.finish(end)
		return true
	}
	return changed
}

// Playing reports whether the session accepts intents.
func (s *Session[G]) Playing() bool {
	return s.Phase == PhasePlaying
}

// Finished reports whether the session reached its terminal state.
func (s *Session[G]) Finished() bool {
	return s.Phase == PhaseFinished
}

// Elapsed is the play time used so far.
func (s *Session[G]) Elapsed() time.Duration {
	return time.Duration(s.Limit-s.Remaining) * time.Second
}

func (s *Session[G]) finish(r Reason) {
	s.Phase = PhaseFinished
	s.Reason = r
}

// Limits holds the countdown and lives settings of each game.
type Limits struct {
	QuizSeconds   int
	WordSeconds   int
	WordLives     int
	PuzzleSeconds int
}

// DefaultLimits returns the standard limits.
func DefaultLimits() Limits {
	return Limits{
		QuizSeconds:   120,
		WordSeconds:   60,
		WordLives:     5,
		PuzzleSeconds: 90,
	}
}
