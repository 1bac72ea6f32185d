package game

// Kind names used in recorded game results.
const (
	KindQuiz   = "quiz"
	KindWord   = "word"
	KindPuzzle = "puzzle"
)

// KindLabel returns the display name for a recorded game kind.
func KindLabel(kind string) string {
	switch kind {
	case KindQuiz:
		return "Kuis"
	case KindWord:
		return "Tebak Kata"
	case KindPuzzle:
		return "Puzzle Konsep"
	default:
		return kind
	}
}

// ParseReason is the inverse of Reason.String. Unknown names map to
// ReasonNone.
func ParseReason(s string) Reason {
	for _, r := range []Reason{ReasonCompleted, ReasonSolved, ReasonOutOfLives, ReasonTimedOut} {
		if r.String() == s {
			return r
		}
	}
	return ReasonNone
}

// Label returns the Indonesian display text for r.
func (r Reason) Label() string {
	switch r {
	case ReasonCompleted:
		return "Selesai"
	case ReasonSolved:
		return "Berhasil"
	case ReasonOutOfLives:
		return "Nyawa habis"
	case ReasonTimedOut:
		return "Waktu habis"
	default:
		return "-"
	}
}

// Cleared reports whether r counts as a win.
func (r Reason) Cleared() bool {
	return r == ReasonCompleted || r == ReasonSolved
}
