package llm

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mlutz/kartei/internal/store"
)

// NewProvider builds the configured provider wrapped with retry and
// event-logging middleware.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log logrus.FieldLogger) (Provider, error) {
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
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	// caller → retry → logging → base, so each attempt is logged.
	logged := WithLogging(base, events, log)
	return WithRetry(logged, cfg.Retry), nil
}
