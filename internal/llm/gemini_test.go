package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // exact IDs pass through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestGeminiSchemaConversion(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"comment":    map[string]any{"type": "string"},
			"word_count": map[string]any{"type": "integer"},
			"tone": map[string]any{
				"type": "string",
				"enum": []any{"praise", "encouragement", "guidance"},
			},
			"highlights": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required": []any{"comment", "tone"},
	}

	schema := geminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 4 {
		t.Fatalf("expected 4 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["comment"].Type != "STRING" {
		t.Fatalf("expected STRING for comment, got %s", schema.Properties["comment"].Type)
	}
	if schema.Properties["word_count"].Type != "INTEGER" {
		t.Fatalf("expected INTEGER for word_count, got %s", schema.Properties["word_count"].Type)
	}
	if len(schema.Properties["tone"].Enum) != 3 {
		t.Fatalf("expected 3 tone values, got %d", len(schema.Properties["tone"].Enum))
	}
	if schema.Properties["highlights"].Type != "ARRAY" {
		t.Fatalf("expected ARRAY for highlights, got %s", schema.Properties["highlights"].Type)
	}
	if schema.Properties["highlights"].Items.Type != "STRING" {
		t.Fatalf("expected STRING for highlights items, got %s", schema.Properties["highlights"].Items.Type)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
