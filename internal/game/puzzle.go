package game

import (
	"math/rand/v2"
	"strings"

	"github.com/samber/lo"

	"github.com/abhisek/eduquest/internal/content"
)

// CheckResult is the outcome of the last puzzle check.
type CheckResult int

const (
	CheckUnknown CheckResult = iota
	CheckCorrect
	CheckIncorrect
)

// Puzzle intents.
type (
	PlaceSegment     struct{ Segment string }
	UnplaceSegment   struct{ Segment string }
	CheckAnswer      struct{}
	ResetArrangement struct{}
)

// MinPlaced is the fewest placed segments that can be checked.
const MinPlaced = 2

// Puzzle rebuilds a definition from its shuffled word segments.
type Puzzle struct {
	Challenge content.PuzzleChallenge

	// Pool holds the unplaced segments; order is not meaningful.
	Pool []string

	// Placed holds the learner's arrangement in order.
	Placed []string

	Result CheckResult
}

// NewPuzzle creates a puzzle with the challenge segments shuffled by rng.
func NewPuzzle(ch content.PuzzleChallenge, rng *rand.Rand) *Puzzle {
	pool := append([]string(nil), ch.Segments...)
	rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	return &Puzzle{Challenge: ch, Pool: pool}
}

// Arrangement joins the placed segments with single spaces.
func (p *Puzzle) Arrangement() string {
	return strings.Join(p.Placed, " ")
}

// Checkable reports whether enough segments are placed to check.
func (p *Puzzle) Checkable() bool {
	return len(p.Placed) >= MinPlaced
}

func (p *Puzzle) Apply(msg Msg) (bool, Reason) {
	switch m := msg.(type) {
	case PlaceSegment:
		i := lo.IndexOf(p.Pool, m.Segment)
		if i < 0 {
			return false, ReasonNone
		}
		p.Pool = append(p.Pool[:i], p.Pool[i+1:]...)
		p.Placed = append(p.Placed, m.Segment)
		p.Result = CheckUnknown
		return true, ReasonNone

	case UnplaceSegment:
		i := lo.LastIndexOf(p.Placed, m.Segment)
		if i < 0 {
			return false, ReasonNone
		}
		p.Placed = append(p.Placed[:i], p.Placed[i+1:]...)
		p.Pool = append(p.Pool, m.Segment)
		p.Result = CheckUnknown
		return true, ReasonNone

	case CheckAnswer:
		if !p.Checkable() {
			return false, ReasonNone
		}
		if content.NormalizeSentence(p.Arrangement()) == content.NormalizeSentence(p.Challenge.Definition) {
			p.Result = CheckCorrect
			return true, ReasonSolved
		}
		p.Result = CheckIncorrect
		return true, ReasonNone

	case ResetArrangement:
		if len(p.Placed) == 0 && p.Result == CheckUnknown {
			return false, ReasonNone
		}
		p.Pool = append(p.Pool, p.Placed...)
		p.Placed = nil
		p.Result = CheckUnknown
		return true, ReasonNone
	}
	return false, ReasonNone
}

func (p *Puzzle) Expire() Reason {
	p.Result = CheckIncorrect
	return ReasonTimedOut
}
