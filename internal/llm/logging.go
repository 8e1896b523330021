package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/realnamesareboring/certifai/internal/store"
)

// LoggingProvider records every LLM call as an audit event: purpose,
// latency, token counts, and outcome. A nil event repo degrades to
// slog-only logging so the service runs without a database.
type LoggingProvider struct {
	inner  Provider
	events store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, events store.EventRepo) Provider {
	return &LoggingProvider{inner: p, events: events}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	data := store.LLMRequestEventData{
		Model:     l.inner.ModelID(),
		Purpose:   purpose,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		data.Model = resp.Model
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Never fail the request because audit logging failed.
	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, data); logErr != nil {
			slog.Warn("llm event append failed", "error", logErr)
		}
	}

	slog.Debug("llm request",
		"purpose", purpose,
		"model", data.Model,
		"latency_ms", data.LatencyMs,
		"success", data.Success,
	)

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}
