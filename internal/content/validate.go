package content

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// NormalizeWord upper-cases s and removes all whitespace.
func NormalizeWord(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, s)
}

// NormalizeSentence lower-cases s, strips '.', ',' and '!' and collapses
// runs of whitespace to single spaces. Two arrangements of a puzzle are
// equal when their normalized forms are equal.
func NormalizeSentence(s string) string {
	s = strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!':
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// check is one named validation step. fn returns a description of the
// problem, or nil.
type check[T any] struct {
	name string
	fn   func(v T, cfg Config) error
}

// runChecks executes checks in order; the first failure stops the chain.
func runChecks[T any](kind string, v T, cfg Config, checks []check[T]) error {
	for _, c := range checks {
		if err := c.fn(v, cfg); err != nil {
			return &ContentError{Kind: kind, Check: c.name, Message: err.Error()}
		}
	}
	return nil
}

var quizChecks = []check[[]Question]{
	{"count", func(qs []Question, cfg Config) error {
		if len(qs) != cfg.QuizSize {
			return fmt.Errorf("got %d questions, want %d", len(qs), cfg.QuizSize)
		}
		return nil
	}},
	{"prompt", func(qs []Question, _ Config) error {
		for i, q := range qs {
			if strings.TrimSpace(q.Prompt) == "" {
				return fmt.Errorf("question %d has no text", i+1)
			}
		}
		return nil
	}},
	{"options", func(qs []Question, _ Config) error {
		for i, q := range qs {
			if len(q.Options) < 2 || len(q.Options) > 4 {
				return fmt.Errorf("question %d has %d options, want 2-4", i+1, len(q.Options))
			}
			if lo.ContainsBy(q.Options, func(o string) bool { return strings.TrimSpace(o) == "" }) {
				return fmt.Errorf("question %d has an empty option", i+1)
			}
			if len(lo.Uniq(q.Options)) != len(q.Options) {
				return fmt.Errorf("question %d repeats an option", i+1)
			}
		}
		return nil
	}},
	{"answer", func(qs []Question, _ Config) error {
		for i, q := range qs {
			if q.Correct < 0 || q.Correct >= len(q.Options) {
				return fmt.Errorf("question %d answer index %d out of range", i+1, q.Correct)
			}
		}
		return nil
	}},
	{"explanation", func(qs []Question, _ Config) error {
		for i, q := range qs {
			if strings.TrimSpace(q.Explanation) == "" {
				return fmt.Errorf("question %d has no explanation", i+1)
			}
		}
		return nil
	}},
}

var wordChecks = []check[WordChallenge]{
	{"word", func(w WordChallenge, _ Config) error {
		if len(w.Word) < 2 {
			return fmt.Errorf("word %q is too short", w.Word)
		}
		for _, r := range w.Word {
			if r < 'A' || r > 'Z' {
				return fmt.Errorf("word %q contains %q, want letters A-Z only", w.Word, r)
			}
		}
		return nil
	}},
	{"hint", func(w WordChallenge, _ Config) error {
		if strings.TrimSpace(w.Hint) == "" {
			return errors.New("hint is empty")
		}
		return nil
	}},
	{"explanation", func(w WordChallenge, _ Config) error {
		if strings.TrimSpace(w.Explanation) == "" {
			return errors.New("explanation is empty")
		}
		return nil
	}},
}

var puzzleChecks = []check[PuzzleChallenge]{
	{"definition", func(p PuzzleChallenge, cfg Config) error {
		n := len(strings.Fields(p.Definition))
		if n < cfg.PuzzleMinWords || n > cfg.PuzzleMaxWords {
			return fmt.Errorf("definition has %d words, want %d-%d", n, cfg.PuzzleMinWords, cfg.PuzzleMaxWords)
		}
		return nil
	}},
	{"segments", func(p PuzzleChallenge, _ Config) error {
		if len(p.Segments) < 2 {
			return fmt.Errorf("got %d segments, want at least 2", len(p.Segments))
		}
		if lo.ContainsBy(p.Segments, func(s string) bool { return NormalizeSentence(s) == "" }) {
			return errors.New("a segment is empty")
		}
		return nil
	}},
	{"solvable", func(p PuzzleChallenge, _ Config) error {
		if NormalizeSentence(strings.Join(p.Segments, " ")) != NormalizeSentence(p.Definition) {
			return errors.New("segments do not spell out the definition")
		}
		return nil
	}},
	{"explanation", func(p PuzzleChallenge, _ Config) error {
		if strings.TrimSpace(p.Explanation) == "" {
			return errors.New("explanation is empty")
		}
		return nil
	}},
}
