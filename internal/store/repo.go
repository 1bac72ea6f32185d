package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates LLM calls grouped by purpose or by model. Only one of
// Purpose and Model is set, depending on the grouping.
type LLMUsage struct {
	Purpose      string
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// GameResultEventData captures a finished game session.
type GameResultEventData struct {
	SessionID   string
	Game        string // quiz, word, puzzle
	Subject     string // subject slug
	Reason      string // completed, solved, out-of-lives, timed-out
	Score       int
	Total       int
	XP          int
	SecondsUsed int
}

// GameResultRecord is a stored game result event.
type GameResultRecord struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	GameResultEventData
}

// GameTotals aggregates finished games per game kind. Cleared counts the
// games that ended by completion or a solve rather than by time or lives.
type GameTotals struct {
	Game    string
	Played  int
	Cleared int
	XP      int
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single LLM event, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	LLMUsageByPurpose(ctx context.Context) ([]LLMUsage, error)
	LLMUsageByModel(ctx context.Context) ([]LLMUsage, error)

	// AppendGameResult records a finished game session.
	AppendGameResult(ctx context.Context, data GameResultEventData) error

	// QueryGameResults returns game results, newest first.
	QueryGameResults(ctx context.Context, opts QueryOpts) ([]GameResultRecord, error)

	// GameTotals summarizes all recorded games by kind.
	GameTotals(ctx context.Context) ([]GameTotals, error)
}
