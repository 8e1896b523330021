package llm

import (
	"context"
	"fmt"

	"github.com/realnamesareboring/certifai/internal/store"
)

// NewProvider creates a Provider from configuration, wrapped with the
// timeout, retry and event-logging decorators:
// caller → timeout → retry → logging → backend.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo) (Provider, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case "anthropic":
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case "openai":
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case "gemini":
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case "mock":
		return WithTimeout(NewMockProvider(), cfg.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	logged := WithLogging(base, events)
	retried := WithRetry(logged, cfg.Retry)
	return WithTimeout(retried, cfg.Timeout), nil
}

// resolveModel maps a friendly model name to a provider model ID, passing
// unknown names through so direct model IDs work too.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
