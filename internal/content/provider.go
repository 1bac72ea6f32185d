package content

import "context"

// Provider produces game content and tutor replies on demand.
// Every method either returns a record that passed validation or fails;
// partial content is never returned.
type Provider interface {
	QuizQuestions(ctx context.Context, subject Subject) ([]Question, error)
	WordChallenge(ctx context.Context, subject Subject) (WordChallenge, error)
	PuzzleChallenge(ctx context.Context, subject Subject) (PuzzleChallenge, error)

	// TutorReply answers message given the prior conversation, oldest
	// first. history does not include message itself.
	TutorReply(ctx context.Context, message string, history []Turn) (string, error)
}
