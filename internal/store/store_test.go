package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "eduquest.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		require.NoError(t, db.QueryRow("PRAGMA "+tt.pragma).Scan(&got), tt.pragma)
		assert.Equal(t, tt.want, got, "PRAGMA %s", tt.pragma)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)

	for _, table := range []string{llmEventsTable, gameEventsTable, "global_sequence"} {
		var name string
		err := s.DB().QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, table)
		assert.Equal(t, table, name)
	}
}

func TestReopenKeepsEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "eduquest.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.EventRepo().AppendGameResult(ctx, GameResultEventData{
		SessionID: "s-1", Game: "quiz", Subject: "math", Reason: "completed",
	}))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	results, err := s.EventRepo().QueryGameResults(ctx, QueryOpts{})
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		seq, err := sc.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(i), seq)
	}
}

func TestLLMEventsAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "quiz-gen",
		InputTokens: 100, OutputTokens: 400, LatencyMs: 900, Success: true,
		RequestBody: "[user]\nbuat kuis", ResponseBody: `{"questions":[]}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "tutor",
		InputTokens: 50, OutputTokens: 80, LatencyMs: 300, Success: false,
		ErrorMessage: "rate limited",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "tutor", events[0].Purpose)
	assert.False(t, events[0].Success)
	assert.Equal(t, "rate limited", events[0].ErrorMessage)
	assert.Equal(t, "quiz-gen", events[1].Purpose)
	assert.Greater(t, events[0].Sequence, events[1].Sequence)
	assert.False(t, events[1].Timestamp.IsZero())

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	got, err := repo.GetLLMEvent(ctx, events[1].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, `{"questions":[]}`, got.ResponseBody)
	assert.Equal(t, "[user]\nbuat kuis", got.RequestBody)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []LLMRequestEventData{
		{Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 10, OutputTokens: 20, LatencyMs: 100, Success: true},
		{Model: "gemini-2.5-flash", Purpose: "quiz-gen", InputTokens: 30, OutputTokens: 40, LatencyMs: 300, Success: true},
		{Model: "gpt-4o-mini", Purpose: "tutor", InputTokens: 5, OutputTokens: 5, LatencyMs: 50, Success: true},
	} {
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, LLMUsage{Purpose: "quiz-gen", Calls: 2, InputTokens: 40, OutputTokens: 60, AvgLatencyMs: 200}, byPurpose[0])
	assert.Equal(t, "tutor", byPurpose[1].Purpose)

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, "gemini-2.5-flash", byModel[0].Model)
	assert.Empty(t, byModel[0].Purpose)
	assert.Equal(t, 2, byModel[0].Calls)
}

func TestGameResultsAndTotals(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for _, d := range []GameResultEventData{
		{SessionID: "a", Game: "quiz", Subject: "math", Reason: "completed", Score: 4, Total: 5, XP: 400, SecondsUsed: 70},
		{SessionID: "b", Game: "quiz", Subject: "science", Reason: "timed-out", Score: 1, Total: 5, SecondsUsed: 120},
		{SessionID: "c", Game: "word", Subject: "english", Reason: "out-of-lives", SecondsUsed: 30},
		{SessionID: "d", Game: "puzzle", Subject: "history", Reason: "solved", SecondsUsed: 45},
	} {
		require.NoError(t, repo.AppendGameResult(ctx, d))
	}

	results, err := repo.QueryGameResults(ctx, QueryOpts{Limit: 3})
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "d", results[0].SessionID)
	assert.Equal(t, "solved", results[0].Reason)

	older, err := repo.QueryGameResults(ctx, QueryOpts{Before: results[2].Sequence})
	require.NoError(t, err)
	require.Len(t, older, 1)
	assert.Equal(t, "a", older[0].SessionID)
	assert.Equal(t, 400, older[0].XP)

	totals, err := repo.GameTotals(ctx)
	require.NoError(t, err)
	assert.Equal(t, []GameTotals{
		{Game: "puzzle", Played: 1, Cleared: 1},
		{Game: "quiz", Played: 2, Cleared: 1, XP: 400},
		{Game: "word", Played: 1},
	}, totals)
}

func TestAppendGameResultRequiresSession(t *testing.T) {
	s := openTestStore(t)
	err := s.EventRepo().AppendGameResult(context.Background(), GameResultEventData{Game: "quiz"})
	assert.Error(t, err)
}

func TestEventsShareSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{Purpose: "word-gen", Success: true}))
	require.NoError(t, repo.AppendGameResult(ctx, GameResultEventData{SessionID: "x", Game: "word", Reason: "solved"}))

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	games, err := repo.QueryGameResults(ctx, QueryOpts{})
	require.NoError(t, err)

	require.Len(t, llmEvents, 1)
	require.Len(t, games, 1)
	assert.Equal(t, llmEvents[0].Sequence+1, games[0].Sequence)
}
