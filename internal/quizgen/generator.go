// Package quizgen produces certification quiz batches: an LLM generation
// path validated in stages, with a static per-certification question bank
// behind it so a caller always gets a non-empty batch for a known
// certification and domain.
package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/realnamesareboring/certifai/internal/catalog"
	"github.com/realnamesareboring/certifai/internal/llm"
)

// Generator orchestrates quiz generation against an LLM provider.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator. A nil provider is allowed; every request then
// serves from the fallback bank.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// Generate produces a batch of count questions for (certID, domainName).
//
// Client errors (non-positive count, unknown certification or domain) are
// returned as errors before any LLM call. Upstream failures — provider
// errors, unparseable output, schema or structural rejection — are never
// errors: the batch is served from the static bank with UsedFallback set.
func (g *Generator) Generate(ctx context.Context, certID, domainName string, count int) (*Batch, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if count > g.config.MaxQuestions {
		count = g.config.MaxQuestions
	}

	cert, domain, err := catalog.GetDomain(certID, domainName)
	if err != nil {
		return nil, err
	}

	if g.provider == nil {
		return g.fallback(cert.ID, domain.Name, count, "no LLM provider configured"), nil
	}

	questions, err := g.generateLLM(ctx, cert, domain, count)
	if err != nil {
		slog.Warn("quiz generation fell back",
			"certification", cert.ID,
			"domain", domain.Name,
			"error", err,
		)
		return g.fallback(cert.ID, domain.Name, count, err.Error()), nil
	}

	return &Batch{Questions: questions}, nil
}

func (g *Generator) generateLLM(ctx context.Context, cert *catalog.Certification, domain *catalog.Domain, count int) ([]Question, error) {
	ctx = llm.WithPurpose(ctx, "quiz-gen")

	req := llm.Request{
		System: quizSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(cert, domain, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var out batchOutput
	if err := json.Unmarshal(stripCodeFence(resp.Content), &out); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	if err := validateBatch(out); err != nil {
		return nil, fmt.Errorf("batch validation failed: %w", err)
	}

	// A model that over-delivers is trimmed; under-delivery is passed
	// through, like a short fallback bank.
	if len(out.Questions) > count {
		out.Questions = out.Questions[:count]
	}

	now := time.Now().UTC()
	questions := make([]Question, len(out.Questions))
	for i, q := range out.Questions {
		questions[i] = Question{
			ID:              i + 1,
			Text:            q.Question,
			Options:         q.Options,
			Correct:         q.Correct,
			Explanation:     q.Explanation,
			Domain:          domain.Name,
			CertificationID: cert.ID,
			GeneratedAt:     now,
		}
	}
	return questions, nil
}

// fallback serves from the static bank. A bank smaller than the requested
// count returns what exists; the caller sees the shortfall through the
// batch size and UsedFallback.
func (g *Generator) fallback(certID, domainName string, count int, reason string) *Batch {
	bank, ok := fallbackBanks[certID]
	if !ok || len(bank) == 0 {
		bank = genericBank
	}
	if count > len(bank) {
		count = len(bank)
	}

	now := time.Now().UTC()
	questions := make([]Question, count)
	for i := 0; i < count; i++ {
		q := bank[i]
		q.ID = i + 1
		q.Domain = domainName
		q.CertificationID = certID
		q.GeneratedAt = now
		questions[i] = q
	}

	return &Batch{
		Questions:      questions,
		UsedFallback:   true,
		FallbackReason: reason,
	}
}

// stripCodeFence removes a markdown code-fence wrapper from raw model
// output. Providers asked for JSON sometimes wrap it anyway.
func stripCodeFence(raw []byte) []byte {
	s := strings.TrimSpace(string(raw))
	if !strings.HasPrefix(s, "```") {
		return raw
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return []byte(strings.TrimSpace(s))
}
