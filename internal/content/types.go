package content

// Question is one multiple-choice quiz question.
type Question struct {
	ID int

	// Prompt is the question text shown to the learner.
	Prompt string

	// Options holds 2-4 answer choices in display order.
	Options []string

	// Correct is the index into Options of the right answer.
	Correct int

	// Explanation is revealed after the answer is locked.
	Explanation string
}

// WordChallenge is the secret word for one word-guess round.
type WordChallenge struct {
	Subject Subject

	// Word is upper case A-Z with no whitespace.
	Word string

	Hint        string
	Explanation string
}

// PuzzleChallenge is a concept definition split into word segments.
type PuzzleChallenge struct {
	Subject Subject

	// Concept names the idea being defined, e.g. "Fotosintesis".
	Concept string

	// Definition is the target sentence, 6-10 words.
	Definition string

	// Segments are the words of Definition in their original order.
	// The puzzle shuffles them; joined with spaces they normalize to
	// Definition.
	Segments []string

	Explanation string
}

// Author identifies who wrote a tutor conversation turn.
type Author string

const (
	AuthorLearner Author = "user"
	AuthorTutor   Author = "tutor"
)

// Turn is one message in a tutor conversation.
type Turn struct {
	Author Author
	Text   string
}
