package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/eduquest/internal/content"
)

// testQuestions returns n questions whose correct option is always 0.
func testQuestions(n int) []content.Question {
	qs := make([]content.Question, n)
	for i := range qs {
		qs[i] = content.Question{
			ID:          i + 1,
			Prompt:      "Soal",
			Options:     []string{"benar", "salah", "keliru", "tidak"},
			Correct:     0,
			Explanation: "Karena benar.",
		}
	}
	return qs
}

func newQuizSession(t *testing.T, n int) *Session[*Quiz] {
	t.Helper()
	s := NewSession[*Quiz](content.Math, DefaultLimits().QuizSeconds)
	require.True(t, s.Start(NewQuiz(testQuestions(n))))
	return s
}

func answer(s *Session[*Quiz], option int) {
	s.Dispatch(SelectOption{Index: option})
	s.Dispatch(SubmitAnswer{})
	s.Dispatch(Advance{})
}

func TestQuiz_ScenarioOneCorrectThenWrong(t *testing.T) {
	s := newQuizSession(t, 5)

	answer(s, 0)
	for range 4 {
		answer(s, 2)
	}

	assert.Equal(t, PhaseFinished, s.Phase)
	assert.Equal(t, ReasonCompleted, s.Reason)
	assert.Equal(t, 1, s.Game.Score)
	assert.Equal(t, 5, s.Game.Answered)
	assert.Equal(t, 100, s.Game.XP(s.Reason))
}

func TestQuiz_SelectBounds(t *testing.T) {
	s := newQuizSession(t, 5)

	assert.False(t, s.Dispatch(SelectOption{Index: -1}))
	assert.False(t, s.Dispatch(SelectOption{Index: 4}))
	assert.Equal(t, -1, s.Game.Selected)

	assert.True(t, s.Dispatch(SelectOption{Index: 3}))
	assert.True(t, s.Dispatch(SelectOption{Index: 1}))
	assert.Equal(t, 1, s.Game.Selected)
	assert.Equal(t, 0, s.Game.Score)
}

func TestQuiz_SubmitRequiresSelection(t *testing.T) {
	s := newQuizSession(t, 5)

	assert.False(t, s.Dispatch(SubmitAnswer{}))
	assert.False(t, s.Game.Locked)
	assert.Equal(t, 0, s.Game.Answered)
}

func TestQuiz_SubmitIdempotentOnceLocked(t *testing.T) {
	s := newQuizSession(t, 5)
	s.Dispatch(SelectOption{Index: 0})
	require.True(t, s.Dispatch(SubmitAnswer{}))
	assert.True(t, s.Game.LastCorrect())

	assert.False(t, s.Dispatch(SubmitAnswer{}))
	assert.False(t, s.Dispatch(SelectOption{Index: 2}))
	assert.Equal(t, 1, s.Game.Score)
	assert.Equal(t, 1, s.Game.Answered)
	assert.Equal(t, 0, s.Game.Selected)
}

func TestQuiz_AdvanceRequiresLock(t *testing.T) {
	s := newQuizSession(t, 5)
	s.Dispatch(SelectOption{Index: 0})

	assert.False(t, s.Dispatch(Advance{}))
	assert.Equal(t, 0, s.Game.Current)
}

func TestQuiz_AdvanceClearsSelection(t *testing.T) {
	s := newQuizSession(t, 5)
	answer(s, 1)

	assert.Equal(t, 1, s.Game.Current)
	assert.Equal(t, -1, s.Game.Selected)
	assert.False(t, s.Game.Locked)
}

func TestQuiz_TimeoutAtAnyQuestion(t *testing.T) {
	for locked := range 2 {
		s := newQuizSession(t, 5)
		answer(s, 0)
		answer(s, 0)
		s.Dispatch(SelectOption{Index: 0})
		if locked == 1 {
			s.Dispatch(SubmitAnswer{})
		}

		for s.Playing() {
			s.Dispatch(s.Tick())
		}

		assert.Equal(t, ReasonTimedOut, s.Reason)
		assert.Equal(t, 0, s.Remaining)
		assert.Equal(t, 2, s.Game.Current)
		assert.Equal(t, 0, s.Game.XP(s.Reason))
		assert.Equal(t, 2+locked, s.Game.Score)
	}
}

func TestQuiz_ScoreNeverExceedsAnswered(t *testing.T) {
	s := newQuizSession(t, 5)
	moves := []Msg{
		SubmitAnswer{}, SelectOption{Index: 0}, SubmitAnswer{}, SubmitAnswer{},
		Advance{}, Advance{}, SelectOption{Index: 3}, SubmitAnswer{}, Advance{},
		SelectOption{Index: 0}, s.Tick(), SubmitAnswer{}, Advance{},
		SelectOption{Index: 0}, SubmitAnswer{}, Advance{},
		SelectOption{Index: 1}, SubmitAnswer{}, Advance{}, Advance{},
	}
	for _, m := range moves {
		s.Dispatch(m)
		assert.LessOrEqual(t, s.Game.Score, s.Game.Answered)
		assert.LessOrEqual(t, s.Game.Answered, len(s.Game.Questions))
	}
	assert.Equal(t, ReasonCompleted, s.Reason)
	assert.Equal(t, 3, s.Game.Score)
}
