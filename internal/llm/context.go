package llm

import "context"

type contextKey string

const purposeKey contextKey = "llm_purpose"

// Purpose labels recorded with each request event.
const (
	PurposeQuiz   = "quiz-gen"
	PurposeWord   = "word-gen"
	PurposePuzzle = "puzzle-gen"
	PurposeTutor  = "tutor"
)

// Purposes lists the known purpose labels.
func Purposes() []string {
	return []string{PurposeQuiz, PurposeWord, PurposePuzzle, PurposeTutor}
}

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok && v != "" {
		return v
	}
	return "unknown"
}
