package feedback

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/paceseed/internal/llm"
)

func TestToneBands(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{1.0, "praise"},
		{0.95, "praise"},
		{0.9, "praise"},
		{0.85, "encouragement"},
		{0.8, "encouragement"},
		{0.75, "guidance"},
		{0.0, "guidance"},
	}
	for _, tt := range tests {
		if got := ToneFor(tt.score); got != tt.want {
			t.Errorf("ToneFor(%v) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestCannedDeterministic(t *testing.T) {
	g := NewCanned()
	in := Input{StudentName: "Maya", LessonTitle: "Fractions on a number line", Score: 0.95}

	first, err := g.Comment(context.Background(), in)
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	second, err := g.Comment(context.Background(), in)
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("same input produced different comments:\n%q\n%q", first.Text, second.Text)
	}
	if first.Generator != "canned" {
		t.Errorf("generator = %q, want canned", first.Generator)
	}
	if !strings.Contains(first.Text, "Maya") {
		t.Errorf("comment does not mention the student: %q", first.Text)
	}
	if !strings.Contains(first.Text, "Fractions on a number line") {
		t.Errorf("comment does not mention the lesson: %q", first.Text)
	}
}

func TestCannedDelayedSuffix(t *testing.T) {
	g := NewCanned()
	in := Input{StudentName: "Omar", LessonTitle: "Long division", Score: 0.85, Delayed: true}

	c, err := g.Comment(context.Background(), in)
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	if !strings.Contains(c.Text, "late") {
		t.Errorf("delayed completion comment does not acknowledge the delay: %q", c.Text)
	}
}

func TestLLMGeneratorUsesProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"comment":"Great job on Long division, Omar."}`),
	})
	g := NewLLMGenerator(mock)

	c, err := g.Comment(context.Background(), Input{StudentName: "Omar", LessonTitle: "Long division", Score: 1.0})
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	if c.Generator != "llm" {
		t.Errorf("generator = %q, want llm", c.Generator)
	}
	if c.Tone != "praise" {
		t.Errorf("tone = %q, want praise", c.Tone)
	}
	if c.Text != "Great job on Long division, Omar." {
		t.Errorf("unexpected comment: %q", c.Text)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestLLMGeneratorFallsBackOnError(t *testing.T) {
	// Empty queue makes the mock return ErrProviderUnavailable.
	g := NewLLMGenerator(llm.NewMockProvider())

	c, err := g.Comment(context.Background(), Input{StudentName: "Ines", LessonTitle: "Area models", Score: 0.7})
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	if c.Generator != "canned" {
		t.Errorf("generator = %q, want canned fallback", c.Generator)
	}
	if c.Tone != "guidance" {
		t.Errorf("tone = %q, want guidance", c.Tone)
	}
}

func TestLLMGeneratorFallsBackOnMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{"comment":""}`)})
	g := NewLLMGenerator(mock)

	c, err := g.Comment(context.Background(), Input{StudentName: "Ines", LessonTitle: "Area models", Score: 0.95})
	if err != nil {
		t.Fatalf("Comment: %v", err)
	}
	if c.Generator != "canned" {
		t.Errorf("generator = %q, want canned fallback", c.Generator)
	}
}

func TestNewPicksGenerator(t *testing.T) {
	if _, ok := New(nil).(*CannedGenerator); !ok {
		t.Error("New(nil) should return the canned generator")
	}
	if _, ok := New(llm.NewMockProvider()).(*LLMGenerator); !ok {
		t.Error("New(provider) should return the LLM generator")
	}
}
