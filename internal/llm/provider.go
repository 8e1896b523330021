// Package llm abstracts the chat-completion capability behind a single
// Provider interface with interchangeable backends (Anthropic, OpenAI,
// Gemini, mock). Structured-output requests carry a JSON schema that the
// provider both forwards to the model and enforces on the way back.
package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Provider is the single capability the rest of the service depends on:
// prompt in, text (or schema-validated JSON) out.
type Provider interface {
	// Generate sends one request and returns the model output. When
	// req.Schema is set the returned Content is JSON already validated
	// against that schema; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single chat-completion call.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation so far. Single-turn callers pass one
	// user message.
	Messages []Message

	// Schema, when set, requests structured JSON output conforming to the
	// definition. Nil means free-form text (the tutor chat path).
	Schema *Schema

	// MaxTokens bounds the response size.
	MaxTokens int

	// Temperature in [0.0, 1.0]. Zero means deterministic; quiz generation
	// runs low to keep exam questions factually consistent.
	Temperature float64
}

// Message is one turn of conversation.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to. The same
// definition is forwarded to the model (native structured output) and
// compiled for local validation, so the prompt contract and the validator
// cannot drift.
type Schema struct {
	// Name is a kebab-case identifier, e.g. "quiz-batch".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output for one request.
type Response struct {
	// Content is validated JSON when the request carried a schema,
	// otherwise the raw text bytes.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Text returns Content as a trimmed string, for free-form chat responses.
func (r *Response) Text() string {
	return strings.TrimSpace(string(r.Content))
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "llm_purpose"

// WithPurpose labels the context so the event log records what the call
// was for: "quiz-gen", "chat", "style-analysis", "context-analysis".
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
