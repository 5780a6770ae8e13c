package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abhisek/paceseed/internal/llm"
)

const systemPrompt = `You are a teacher writing a short feedback comment for a student who just completed a lesson.

Rules:
- One or two sentences, under 40 words total.
- Address the student by first name.
- Mention the lesson by title.
- Match the requested tone: "praise" celebrates, "encouragement" notes small slips positively, "guidance" proposes a concrete next step.
- Plain text only. No emoji, no markdown.`

// commentSchema defines the JSON schema for feedback generation responses.
var commentSchema = &llm.Schema{
	Name:        "lesson-feedback",
	Description: "A short teacher feedback comment for a completed lesson",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"comment": map[string]any{
				"type":        "string",
				"description": "The feedback comment, one or two sentences of plain text",
			},
		},
		"required":             []any{"comment"},
		"additionalProperties": false,
	},
}

// LLMGenerator produces comments through an LLM provider, falling back
// to the canned pool when generation fails. A seeding run must not
// abort because an LLM endpoint is down.
type LLMGenerator struct {
	provider llm.Provider
	fallback *CannedGenerator
}

// NewLLMGenerator creates a generator backed by the given provider.
func NewLLMGenerator(provider llm.Provider) *LLMGenerator {
	return &LLMGenerator{provider: provider, fallback: NewCanned()}
}

type commentOutput struct {
	Comment string `json:"comment"`
}

func (g *LLMGenerator) Comment(ctx context.Context, in Input) (*Comment, error) {
	ctx = llm.WithPurpose(ctx, "lesson-feedback")
	tone := ToneFor(in.Score)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(in, tone)},
		},
		Schema:    commentSchema,
		MaxTokens: 200,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return g.fallback.Comment(ctx, in)
	}

	var out commentOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || strings.TrimSpace(out.Comment) == "" {
		return g.fallback.Comment(ctx, in)
	}

	return &Comment{Text: out.Comment, Tone: tone, Generator: "llm"}, nil
}

func buildUserMessage(in Input, tone string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Student: %s\n", in.StudentName)
	fmt.Fprintf(&b, "Lesson: %s\n", in.LessonTitle)
	fmt.Fprintf(&b, "Score: %.0f%%\n", in.Score*100)
	fmt.Fprintf(&b, "Tone: %s\n", tone)
	if in.Delayed {
		b.WriteString("Note: the mastery check was finished a few days after the lesson.\n")
	}
	return b.String()
}
