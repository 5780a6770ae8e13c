package llm

import (
	"context"
	"encoding/json"
)

// Provider is the single abstraction the feedback generator talks to.
// Callers build a Request and get validated structured JSON back.
type Provider interface {
	// Generate sends the prompt and returns the model's response. When
	// the request carries a Schema the provider asks for structured
	// output and the returned Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured
	// to use.
	ModelID() string
}

// Request describes one generation call.
type Request struct {
	// System sets the model's role, e.g. the teacher-voice rules for
	// feedback comments.
	System string

	// Messages is the conversation. Feedback generation is single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, is the JSON Schema the response must conform
	// to; the provider uses its native structured-output mechanism.
	// When nil the raw text comes back as a json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness in [0, 1]. Zero (the default)
	// keeps generation as deterministic as the provider allows.
	Temperature float64
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "lesson-feedback".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model's output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, raw text wrapped as JSON otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
