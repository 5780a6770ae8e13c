// Package feedback produces short teacher-voice comments attached to
// lesson completions, so the sandbox dashboard's feedback panel has
// believable content. Comments come from an LLM when one is configured
// and from a deterministic canned pool otherwise.
package feedback

import (
	"context"

	"github.com/abhisek/paceseed/internal/llm"
)

// Input describes the completion a comment is written about.
type Input struct {
	StudentName string
	LessonTitle string

	// Score is the mastery-check score in [0, 1].
	Score float64

	// Delayed marks a mastery check that landed days after the lesson.
	Delayed bool
}

// Comment is a generated feedback comment.
type Comment struct {
	Text string

	// Tone is "praise", "encouragement", or "guidance", derived from the
	// score band.
	Tone string

	// Generator records what produced the text: "llm" or "canned".
	Generator string
}

// Generator produces a feedback comment for a completion.
type Generator interface {
	Comment(ctx context.Context, in Input) (*Comment, error)
}

// New returns an LLM-backed generator when a provider is available and
// the canned generator otherwise.
func New(provider llm.Provider) Generator {
	if provider == nil {
		return NewCanned()
	}
	return NewLLMGenerator(provider)
}

// ToneFor maps a mastery score to a comment tone.
func ToneFor(score float64) string {
	switch {
	case score >= 0.9:
		return "praise"
	case score >= 0.8:
		return "encouragement"
	default:
		return "guidance"
	}
}
