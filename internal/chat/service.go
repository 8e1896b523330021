// Package chat drives the LLM-backed tutor conversation. Every inbound
// message passes the conversation gate before any model call; refusals are a
// normal product outcome, not an error.
package chat

import (
	"context"
	"errors"
	"fmt"

	"github.com/realnamesareboring/certifai/internal/analysis"
	"github.com/realnamesareboring/certifai/internal/gate"
	"github.com/realnamesareboring/certifai/internal/llm"
)

// RefusalMessage is the fixed reply for messages the gate rejects.
const RefusalMessage = "I'm here to help you study for cloud certifications. " +
	"Ask me about cloud concepts, Azure services, or your target exam and we can dig in."

// ErrNoMessages is returned when the request carries no user message.
var ErrNoMessages = errors.New("chat request has no user message")

// Config tunes the tutor LLM calls.
type Config struct {
	MaxTokens int

	// Temperature runs higher than generation paths; tutoring reads better
	// with some variation.
	Temperature float64
}

// DefaultConfig returns the standard chat configuration.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.7,
	}
}

// Input is one chat turn from the client.
type Input struct {
	// ConversationID scopes gate state. Empty falls back to a shared
	// default conversation.
	ConversationID string

	// Messages is the conversation so far; the last user message is the
	// one being classified and answered.
	Messages []llm.Message

	// CertificationID, when set, scopes tutor examples to that exam.
	CertificationID string

	// Style adapts the tutor's phrasing. Nil means no adaptation.
	Style *analysis.StyleProfile
}

// Result is the tutor's reply.
type Result struct {
	Message string `json:"message"`

	// Refused reports that the gate rejected the message and Message is
	// the fixed refusal text.
	Refused bool `json:"refused,omitempty"`
}

// Service is the gated tutor.
type Service struct {
	provider llm.Provider
	tracker  *gate.Tracker
	cfg      Config
}

// NewService creates a chat service. The tracker must be shared with any
// other component that inspects conversation state.
func NewService(provider llm.Provider, tracker *gate.Tracker, cfg Config) *Service {
	return &Service{provider: provider, tracker: tracker, cfg: cfg}
}

// Chat classifies the latest user message and, if allowed, asks the model
// for a reply. A missing provider surfaces llm.ErrNotConfigured so the
// transport layer can answer 503 instead of pretending the tutor works.
func (s *Service) Chat(ctx context.Context, in Input) (Result, error) {
	latest, ok := lastUserMessage(in.Messages)
	if !ok {
		return Result{}, ErrNoMessages
	}

	if !s.tracker.Allow(in.ConversationID, latest) {
		return Result{Message: RefusalMessage, Refused: true}, nil
	}

	if s.provider == nil {
		return Result{}, llm.ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "chat")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System:      buildChatSystemPrompt(in.CertificationID, in.Style),
		Messages:    in.Messages,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return Result{}, fmt.Errorf("tutor reply: %w", err)
	}

	return Result{Message: resp.Text()}, nil
}

func lastUserMessage(messages []llm.Message) (string, bool) {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == llm.RoleUser {
			return messages[i].Content, true
		}
	}
	return "", false
}
