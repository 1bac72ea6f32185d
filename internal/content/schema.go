package content

import "github.com/abhisek/eduquest/internal/llm"

// Array bounds and index ranges are enforced by the validators rather than
// the schema; strict structured-output modes reject those keywords.

// QuizSchema defines the JSON returned for a quiz request.
var QuizSchema = &llm.Schema{
	Name:        "quiz-questions",
	Description: "A set of multiple-choice questions for middle-school students",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":        "array",
				"description": "Exactly 5 questions",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id": map[string]any{
							"type": "integer",
						},
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type":        "array",
							"items":       map[string]any{"type": "string"},
							"description": "2 to 4 answer options",
						},
						"correctAnswer": map[string]any{
							"type":        "integer",
							"description": "Index of the correct option (0-3)",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Short explanation of the correct answer",
						},
					},
					"required":             []any{"id", "question", "options", "correctAnswer", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}

// WordSchema defines the JSON returned for a word-guess request.
var WordSchema = &llm.Schema{
	Name:        "word-challenge",
	Description: "One key term to guess letter by letter",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{
				"type":        "string",
				"description": "The key term in capital letters, a single word without spaces",
			},
			"hint": map[string]any{
				"type":        "string",
				"description": "A clue or definition of the term",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "An educational explanation shown after the round",
			},
		},
		"required":             []any{"word", "hint", "explanation"},
		"additionalProperties": false,
	},
}

// PuzzleSchema defines the JSON returned for a puzzle request.
var PuzzleSchema = &llm.Schema{
	Name:        "puzzle-challenge",
	Description: "A short concept definition split into word segments",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"concept": map[string]any{
				"type":        "string",
				"description": "Name of the concept",
			},
			"definition": map[string]any{
				"type":        "string",
				"description": "The complete definition sentence, 6-10 words",
			},
			"segments": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "The words of the definition in order, one word per segment",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A deeper explanation of the concept",
			},
		},
		"required":             []any{"concept", "definition", "segments", "explanation"},
		"additionalProperties": false,
	},
}
