package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/eduquest/internal/llm"
)

// Generator implements Provider on top of an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

var _ Provider = (*Generator)(nil)

// NewGenerator creates a Generator with the given provider and config.
func NewGenerator(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

type quizOutput struct {
	Questions []struct {
		ID            int      `json:"id"`
		Question      string   `json:"question"`
		Options       []string `json:"options"`
		CorrectAnswer int      `json:"correctAnswer"`
		Explanation   string   `json:"explanation"`
	} `json:"questions"`
}

type wordOutput struct {
	Word        string `json:"word"`
	Hint        string `json:"hint"`
	Explanation string `json:"explanation"`
}

type puzzleOutput struct {
	Concept     string   `json:"concept"`
	Definition  string   `json:"definition"`
	Segments    []string `json:"segments"`
	Explanation string   `json:"explanation"`
}

// QuizQuestions generates one quiz for subject.
func (g *Generator) QuizQuestions(ctx context.Context, subject Subject) ([]Question, error) {
	var raw quizOutput
	if err := g.structured(llm.WithPurpose(ctx, llm.PurposeQuiz), "quiz", QuizSchema,
		quizPrompt(subject, g.config.QuizSize), &raw); err != nil {
		return nil, err
	}

	questions := make([]Question, len(raw.Questions))
	for i, q := range raw.Questions {
		questions[i] = Question{
			ID:          i + 1,
			Prompt:      strings.TrimSpace(q.Question),
			Options:     q.Options,
			Correct:     q.CorrectAnswer,
			Explanation: strings.TrimSpace(q.Explanation),
		}
	}

	if err := runChecks("quiz", questions, g.config, quizChecks); err != nil {
		return nil, err
	}
	return questions, nil
}

// WordChallenge generates one secret word for subject.
func (g *Generator) WordChallenge(ctx context.Context, subject Subject) (WordChallenge, error) {
	var raw wordOutput
	if err := g.structured(llm.WithPurpose(ctx, llm.PurposeWord), "word", WordSchema,
		wordPrompt(subject), &raw); err != nil {
		return WordChallenge{}, err
	}

	ch := WordChallenge{
		Subject:     subject,
		Word:        NormalizeWord(raw.Word),
		Hint:        strings.TrimSpace(raw.Hint),
		Explanation: strings.TrimSpace(raw.Explanation),
	}
	if err := runChecks("word", ch, g.config, wordChecks); err != nil {
		return WordChallenge{}, err
	}
	return ch, nil
}

// PuzzleChallenge generates one definition puzzle for subject.
func (g *Generator) PuzzleChallenge(ctx context.Context, subject Subject) (PuzzleChallenge, error) {
	var raw puzzleOutput
	if err := g.structured(llm.WithPurpose(ctx, llm.PurposePuzzle), "puzzle", PuzzleSchema,
		puzzlePrompt(subject, g.config.PuzzleMinWords, g.config.PuzzleMaxWords), &raw); err != nil {
		return PuzzleChallenge{}, err
	}

	segments := make([]string, 0, len(raw.Segments))
	for _, s := range raw.Segments {
		segments = append(segments, strings.TrimSpace(s))
	}

	ch := PuzzleChallenge{
		Subject:     subject,
		Concept:     strings.TrimSpace(raw.Concept),
		Definition:  strings.TrimSpace(raw.Definition),
		Segments:    segments,
		Explanation: strings.TrimSpace(raw.Explanation),
	}
	if err := runChecks("puzzle", ch, g.config, puzzleChecks); err != nil {
		return PuzzleChallenge{}, err
	}
	return ch, nil
}

// TutorReply asks the tutor model for a free-text answer. Leading
// tutor-authored turns (the greeting) are dropped because providers expect
// a conversation to open with a user turn.
func (g *Generator) TutorReply(ctx context.Context, message string, history []Turn) (string, error) {
	ctx = llm.WithPurpose(ctx, llm.PurposeTutor)

	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      TutorSystemPrompt,
		Messages:    tutorMessages(message, history),
		MaxTokens:   g.config.TutorMaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("tutor reply: %w", err)
	}
	return strings.TrimSpace(resp.Text()), nil
}

func tutorMessages(message string, history []Turn) []llm.Message {
	start := 0
	for start < len(history) && history[start].Author != AuthorLearner {
		start++
	}

	msgs := make([]llm.Message, 0, len(history)-start+1)
	for _, t := range history[start:] {
		role := llm.RoleUser
		if t.Author == AuthorTutor {
			role = llm.RoleAssistant
		}
		msgs = append(msgs, llm.Message{Role: role, Content: t.Text})
	}
	return append(msgs, llm.Message{Role: llm.RoleUser, Content: message})
}

// structured runs a schema-constrained request and decodes the result
// into out.
func (g *Generator) structured(ctx context.Context, kind string, schema *llm.Schema, prompt string, out any) error {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System:      contentSystemPrompt,
		Messages:    []llm.Message{{Role: llm.RoleUser, Content: prompt}},
		Schema:      schema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return classify(kind, err)
	}

	if err := json.Unmarshal(resp.Content, out); err != nil {
		return &ContentError{Kind: kind, Check: "decode", Message: "response cannot be decoded", Err: err}
	}
	return nil
}
