package content

// Config controls content generation.
type Config struct {
	// QuizSize is the number of questions in one quiz.
	QuizSize int

	// PuzzleMinWords and PuzzleMaxWords bound the definition length.
	PuzzleMinWords int
	PuzzleMaxWords int

	// MaxTokens is the token budget for structured content responses.
	MaxTokens int

	// TutorMaxTokens is the token budget for a tutor reply.
	TutorMaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the standard round sizes and budgets.
func DefaultConfig() Config {
	return Config{
		QuizSize:       5,
		PuzzleMinWords: 6,
		PuzzleMaxWords: 10,
		MaxTokens:      2048,
		TutorMaxTokens: 1024,
		Temperature:    0.8,
	}
}
