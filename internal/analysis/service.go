// Package analysis infers learner attributes from text: a communication
// style profile from a writing sample, and a suggested certification from a
// study conversation. Both paths degrade deterministically when the model
// fails: style falls back to neutral defaults, context to a keyword
// classifier over the catalog's key terms.
package analysis

import (
	"context"
	"encoding/json"
	"log/slog"
	"unicode/utf8"

	"github.com/realnamesareboring/certifai/internal/llm"
)

// Service runs style and context analysis.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates an analysis service. A nil provider is valid and means
// every request takes the fallback path.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

type styleOutput struct {
	Style      StyleProfile `json:"style"`
	Confidence string       `json:"confidence"`
	Reasoning  string       `json:"reasoning"`
}

type contextOutput struct {
	SuggestedCertification string   `json:"suggestedCertification"`
	Confidence             string   `json:"confidence"`
	Reasoning              string   `json:"reasoning"`
	Topics                 []string `json:"topics"`
}

// AnalyzeStyle infers a style profile from a writing sample. Samples under
// MinSampleLength are rejected with ErrSampleTooShort; every other failure
// mode serves the neutral default profile with the fallback flag set.
func (s *Service) AnalyzeStyle(ctx context.Context, textSample string) (StyleResult, error) {
	if utf8.RuneCountInString(textSample) < MinSampleLength {
		return StyleResult{}, ErrSampleTooShort
	}

	result, err := s.analyzeStyleLLM(ctx, textSample)
	if err != nil {
		slog.Warn("style analysis failed, serving neutral defaults", "error", err)
		return StyleResult{
			Style:      NeutralStyle(),
			Confidence: "low",
			Reasoning:  "Style could not be inferred; using neutral defaults.",
			Fallback:   true,
		}, nil
	}
	return result, nil
}

func (s *Service) analyzeStyleLLM(ctx context.Context, textSample string) (StyleResult, error) {
	if s.provider == nil {
		return StyleResult{}, llm.ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "style-analysis")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: styleSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildStyleUserMessage(textSample)},
		},
		Schema:      StyleSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return StyleResult{}, err
	}

	var out styleOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return StyleResult{}, err
	}
	if err := validateStyle(out); err != nil {
		return StyleResult{}, err
	}

	return StyleResult{
		Style:      out.Style,
		Confidence: out.Confidence,
		Reasoning:  out.Reasoning,
	}, nil
}

// AnalyzeContext suggests a certification for the conversation. It never
// returns an error: any model failure routes to the keyword classifier.
func (s *Service) AnalyzeContext(ctx context.Context, messages []llm.Message) ContextResult {
	result, err := s.analyzeContextLLM(ctx, messages)
	if err != nil {
		slog.Warn("context analysis failed, using keyword classifier", "error", err)
		return classifyByKeywords(messages)
	}
	return result
}

func (s *Service) analyzeContextLLM(ctx context.Context, messages []llm.Message) (ContextResult, error) {
	if s.provider == nil {
		return ContextResult{}, llm.ErrNotConfigured
	}

	ctx = llm.WithPurpose(ctx, "context-analysis")

	resp, err := s.provider.Generate(ctx, llm.Request{
		System: contextSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildContextUserMessage(messages)},
		},
		Schema:      ContextSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		return ContextResult{}, err
	}

	var out contextOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return ContextResult{}, err
	}
	if err := validateContext(out); err != nil {
		return ContextResult{}, err
	}

	topics := out.Topics
	if topics == nil {
		topics = []string{}
	}

	return ContextResult{
		SuggestedCertification: out.SuggestedCertification,
		Confidence:             out.Confidence,
		Reasoning:              out.Reasoning,
		Topics:                 topics,
	}, nil
}
