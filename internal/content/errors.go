package content

import (
	"errors"
	"fmt"

	"github.com/abhisek/eduquest/internal/llm"
)

// ContentError reports generated content that arrived but cannot be used:
// malformed JSON, a schema violation, or a record that breaks a game
// invariant. It is distinct from a fetch failure, where nothing arrived.
type ContentError struct {
	Kind    string // quiz, word, puzzle
	Check   string // name of the failed check, e.g. "schema", "options"
	Message string
	Err     error
}

func (e *ContentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("corrupt %s content (%s): %s: %v", e.Kind, e.Check, e.Message, e.Err)
	}
	return fmt.Sprintf("corrupt %s content (%s): %s", e.Kind, e.Check, e.Message)
}

func (e *ContentError) Unwrap() error { return e.Err }

// IsCorrupt reports whether err is a ContentError.
func IsCorrupt(err error) bool {
	var ce *ContentError
	return errors.As(err, &ce)
}

// classify turns a provider failure into a ContentError when the provider
// did answer but with unusable content, and into a fetch error otherwise.
func classify(kind string, err error) error {
	var inv *llm.ErrInvalidResponse
	if errors.As(err, &inv) {
		return &ContentError{Kind: kind, Check: "schema", Message: "response does not match the expected shape", Err: err}
	}
	var maxTok *llm.ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return &ContentError{Kind: kind, Check: "length", Message: "response was cut off", Err: err}
	}
	return fmt.Errorf("fetch %s content: %w", kind, err)
}
