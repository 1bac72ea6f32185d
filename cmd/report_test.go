package cmd

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/abhisek/eduquest/internal/store"
)

func llmRecord(id int, purpose string, ok bool) store.LLMEventRecord {
	return store.LLMEventRecord{
		ID:        id,
		Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			Model: "gemini-2.5-flash", Purpose: purpose, Success: ok,
			InputTokens: 10, OutputTokens: 20, LatencyMs: 300,
		},
	}
}

func TestPrintLLMEventsFiltersAndLimits(t *testing.T) {
	events := []store.LLMEventRecord{
		llmRecord(4, "tutor", true),
		llmRecord(3, "quiz-gen", false),
		llmRecord(2, "tutor", true),
		llmRecord(1, "quiz-gen", true),
	}

	var out bytes.Buffer
	printLLMEvents(&out, events, "quiz-gen", 1)
	assert.Contains(t, out.String(), "quiz-gen")
	assert.Contains(t, out.String(), "✗")
	assert.NotContains(t, out.String(), "tutor")
	assert.NotContains(t, out.String(), "✓")

	out.Reset()
	printLLMEvents(&out, events, "word-gen", 0)
	assert.Equal(t, "Belum ada panggilan LLM yang tercatat.\n", out.String())
}

func TestPrintLLMEventShowsMissingBodies(t *testing.T) {
	e := llmRecord(7, "puzzle-gen", false)
	e.ErrorMessage = "rate limited"
	e.RequestBody = "[user]\nbuat puzzle"

	var out bytes.Buffer
	printLLMEvent(&out, &e)
	s := out.String()
	assert.Contains(t, s, "Error:     rate limited")
	assert.Contains(t, s, "[user]\nbuat puzzle")
	assert.Contains(t, s, "(tidak direkam)")
}

func TestPrintLLMUsageMarksUnpricedModels(t *testing.T) {
	byPurpose := []store.LLMUsage{{Purpose: "tutor", Calls: 2, InputTokens: 1000, OutputTokens: 500, AvgLatencyMs: 250}}
	byModel := []store.LLMUsage{
		{Model: "gemini-2.5-flash", Calls: 1, InputTokens: 1000, OutputTokens: 500},
		{Model: "homebrew-7b", Calls: 1},
	}

	var out bytes.Buffer
	printLLMUsage(&out, byPurpose, byModel)
	s := out.String()
	assert.Contains(t, s, "TOTAL (sebagian)")
	assert.Contains(t, s, "Harga tidak diketahui untuk: homebrew-7b")
	assert.Contains(t, s, "1500")

	out.Reset()
	printLLMUsage(&out, nil, nil)
	assert.Equal(t, "Belum ada pemakaian LLM.\n", out.String())
}

func TestPrintHistory(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	results := []store.GameResultRecord{
		{Timestamp: ts, GameResultEventData: store.GameResultEventData{Game: "word", Subject: "english", Reason: "out-of-lives"}},
		{Timestamp: ts, GameResultEventData: store.GameResultEventData{Game: "quiz", Subject: "math", Reason: "completed", Score: 4, Total: 5, XP: 400}},
	}
	totals := []store.GameTotals{
		{Game: "quiz", Played: 1, Cleared: 1, XP: 400},
		{Game: "word", Played: 1},
	}

	var out bytes.Buffer
	printHistory(&out, results, totals, "quiz", 0)
	s := out.String()
	assert.Contains(t, s, "Matematika")
	assert.Contains(t, s, "4/5")
	assert.Contains(t, s, "Selesai")
	assert.NotContains(t, s, "Nyawa habis")

	out.Reset()
	printHistory(&out, results, totals, "puzzle", 0)
	assert.Equal(t, "Belum ada permainan yang selesai.\n", out.String())
}
