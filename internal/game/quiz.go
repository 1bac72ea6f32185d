package game

import "github.com/abhisek/eduquest/internal/content"

// XPPerCorrect is awarded for each correct answer on a quiz that was not
// timed out.
const XPPerCorrect = 100

// Quiz intents.
type (
	SelectOption struct{ Index int }
	SubmitAnswer struct{}
	Advance      struct{}
)

// Quiz walks a fixed list of multiple-choice questions one at a time.
type Quiz struct {
	Questions []content.Question

	// Current indexes Questions.
	Current int

	// Selected is the tentative option index, or -1.
	Selected int

	// Locked is set once the current question has been submitted.
	Locked bool

	Score    int
	Answered int
}

// NewQuiz creates a quiz over questions.
func NewQuiz(questions []content.Question) *Quiz {
	return &Quiz{Questions: questions, Selected: -1}
}

// Question returns the current question.
func (q *Quiz) Question() content.Question {
	return q.Questions[q.Current]
}

// Last reports whether the current question is the final one.
func (q *Quiz) Last() bool {
	return q.Current == len(q.Questions)-1
}

// LastCorrect reports whether the locked answer was right.
func (q *Quiz) LastCorrect() bool {
	return q.Locked && q.Selected == q.Question().Correct
}

func (q *Quiz) Apply(msg Msg) (bool, Reason) {
	switch m := msg.(type) {
	case SelectOption:
		if q.Locked || m.Index < 0 || m.Index >= len(q.Question().Options) {
			return false, ReasonNone
		}
		q.Selected = m.Index
		return true, ReasonNone

	case SubmitAnswer:
		if q.Locked || q.Selected < 0 {
			return false, ReasonNone
		}
		q.Locked = true
		q.Answered++
		if q.Selected == q.Question().Correct {
			q.Score++
		}
		return true, ReasonNone

	case Advance:
		if !q.Locked {
			return false, ReasonNone
		}
		if q.Last() {
			return true, ReasonCompleted
		}
		q.Current++
		q.Selected = -1
		q.Locked = false
		return true, ReasonNone
	}
	return false, ReasonNone
}

func (q *Quiz) Expire() Reason {
	return ReasonTimedOut
}

// XP returns the reward for a quiz that ended with reason.
func (q *Quiz) XP(reason Reason) int {
	if reason == ReasonTimedOut {
		return 0
	}
	return q.Score * XPPerCorrect
}
