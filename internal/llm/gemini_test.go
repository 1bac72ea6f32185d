package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.5-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-3", "gemini-3-flash-preview"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word":  map[string]any{"type": "string"},
			"level": map[string]any{"type": "string", "enum": []any{"mudah", "sedang", "sulit"}},
			"segments": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 2,
				"maxItems": 6,
			},
			"correctIndex": map[string]any{"type": "integer", "minimum": 0, "maximum": 3},
		},
		"required": []any{"word", "segments"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["word"].Type != "STRING" {
		t.Fatalf("expected STRING for word, got %s", schema.Properties["word"].Type)
	}
	if len(schema.Properties["level"].Enum) != 3 {
		t.Fatalf("expected 3 enum values, got %d", len(schema.Properties["level"].Enum))
	}

	segments := schema.Properties["segments"]
	if segments.Type != "ARRAY" || segments.Items.Type != "STRING" {
		t.Fatalf("expected ARRAY of STRING for segments, got %s of %v", segments.Type, segments.Items)
	}
	if segments.MinItems == nil || *segments.MinItems != 2 {
		t.Fatalf("expected minItems 2, got %v", segments.MinItems)
	}
	if segments.MaxItems == nil || *segments.MaxItems != 6 {
		t.Fatalf("expected maxItems 6, got %v", segments.MaxItems)
	}

	idx := schema.Properties["correctIndex"]
	if idx.Type != "INTEGER" {
		t.Fatalf("expected INTEGER for correctIndex, got %s", idx.Type)
	}
	if idx.Minimum == nil || *idx.Minimum != 0 || idx.Maximum == nil || *idx.Maximum != 3 {
		t.Fatalf("expected bounds [0,3], got %v..%v", idx.Minimum, idx.Maximum)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
