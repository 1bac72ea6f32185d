package game

import (
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/abhisek/eduquest/internal/content"
)

// GuessLetter guesses one letter of the secret word. Letters are
// case-folded; anything outside A-Z is ignored.
type GuessLetter struct {
	Letter rune
}

// Word is a hangman-style guess of one secret word.
type Word struct {
	Challenge content.WordChallenge

	// Guesses holds each guessed letter once, in guess order.
	Guesses []rune
	Lives   int

	revealed bool
}

// NewWord creates a word game with the given number of lives.
func NewWord(ch content.WordChallenge, lives int) *Word {
	return &Word{Challenge: ch, Lives: lives}
}

// Guessed reports whether r has been guessed.
func (w *Word) Guessed(r rune) bool {
	return lo.Contains(w.Guesses, unicode.ToUpper(r))
}

// Solved reports whether every letter of the word has been guessed.
func (w *Word) Solved() bool {
	return lo.Every(w.Guesses, lo.Uniq([]rune(w.Challenge.Word)))
}

// Misses returns the guessed letters that are not in the word.
func (w *Word) Misses() []rune {
	return lo.Filter(w.Guesses, func(r rune, _ int) bool {
		return !strings.ContainsRune(w.Challenge.Word, r)
	})
}

// Masked renders the word with unguessed letters as '_', separated by
// spaces. Once the game is over every letter is shown.
func (w *Word) Masked() string {
	letters := lo.Map([]rune(w.Challenge.Word), func(r rune, _ int) string {
		if w.revealed || w.Guessed(r) {
			return string(r)
		}
		return "_"
	})
	return strings.Join(letters, " ")
}

func (w *Word) Apply(msg Msg) (bool, Reason) {
	g, ok := msg.(GuessLetter)
	if !ok {
		return false, ReasonNone
	}

	letter := unicode.ToUpper(g.Letter)
	if letter < 'A' || letter > 'Z' || w.Guessed(letter) {
		return false, ReasonNone
	}
	w.Guesses = append(w.Guesses, letter)

	if strings.ContainsRune(w.Challenge.Word, letter) {
		if w.Solved() {
			return true, w.end(ReasonSolved)
		}
		return true, ReasonNone
	}

	w.Lives--
	if w.Lives <= 0 {
		w.Lives = 0
		return true, w.end(ReasonOutOfLives)
	}
	return true, ReasonNone
}

func (w *Word) Expire() Reason {
	return w.end(ReasonTimedOut)
}

func (w *Word) end(r Reason) Reason {
	w.revealed = true
	return r
}
