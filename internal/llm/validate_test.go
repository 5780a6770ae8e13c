package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func commentTestSchema() *Schema {
	return &Schema{
		Name:        "feedback-comment",
		Description: "A teacher feedback comment",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"comment": map[string]any{"type": "string"},
				"tone": map[string]any{
					"type": "string",
					"enum": []any{"praise", "encouragement", "guidance"},
				},
				"word_count": map[string]any{"type": "integer", "minimum": 0},
			},
			"required": []any{"comment", "tone"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"comment":"Maya, strong work on Area models.","tone":"praise","word_count":6}`)
	if err := validateResponse(commentTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"comment":"Keep practicing, Omar.","tone":"guidance"}`)
	if err := validateResponse(commentTestSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"comment":"Nice work."}`)
	err := validateResponse(commentTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"comment":"Nice work.","tone":"praise","word_count":"six"}`)
	err := validateResponse(commentTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_InvalidEnum(t *testing.T) {
	raw := json.RawMessage(`{"comment":"Nice work.","tone":"sarcastic"}`)
	err := validateResponse(commentTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for invalid tone value")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json}`)
	err := validateResponse(commentTestSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_EmptyResponse(t *testing.T) {
	raw := json.RawMessage(``)
	if err := validateResponse(commentTestSchema(), raw); err == nil {
		t.Fatal("expected error for empty response")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`{"anything":"goes"}`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NestedObjects(t *testing.T) {
	schema := &Schema{
		Name:        "feedback-context",
		Description: "A comment with its lesson context",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"lesson": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{"type": "string"},
					},
					"required": []any{"title"},
				},
				"scores": map[string]any{
					"type":  "array",
					"items": map[string]any{"type": "number"},
				},
			},
			"required": []any{"lesson", "scores"},
		},
	}

	valid := json.RawMessage(`{"lesson":{"title":"Fractions on a number line"},"scores":[0.9,0.85,1.0]}`)
	if err := validateResponse(schema, valid); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	invalid := json.RawMessage(`{"lesson":{"title":"Fractions on a number line"},"scores":["high","low"]}`)
	if err := validateResponse(schema, invalid); err == nil {
		t.Fatal("expected error for wrong array item type")
	}
}
