package llm

import (
	"context"
	"fmt"
)

// NewProvider creates a Provider from configuration. An empty
// cfg.Provider is resolved from the configured model id prefix, so a
// single RENAISSANCE_MODEL setting is enough to switch backends.
func NewProvider(ctx context.Context, cfg Config) (Provider, error) {
	provider := cfg.Provider
	if provider == "" {
		provider = DetectProvider(cfg.modelForDetection())
	}

	switch provider {
	case "anthropic":
		p, err := NewAnthropicProvider(cfg.Anthropic)
		if err != nil {
			return nil, fmt.Errorf("initializing anthropic provider: %w", err)
		}
		return p, nil
	case "openai":
		p, err := NewOpenAIProvider(cfg.OpenAI)
		if err != nil {
			return nil, fmt.Errorf("initializing openai provider: %w", err)
		}
		return p, nil
	case "gemini":
		p, err := NewGeminiProvider(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("initializing gemini provider: %w", err)
		}
		return p, nil
	case "mock":
		return NewMockProvider(), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", provider)
	}
}

// modelForDetection picks the model id to sniff when no provider is set
// explicitly. The OpenAI slot doubles as the generic "model" setting, so
// it wins when populated.
func (c Config) modelForDetection() string {
	if c.OpenAI.Model != "" {
		return c.OpenAI.Model
	}
	if c.Anthropic.Model != "" {
		return c.Anthropic.Model
	}
	return c.Gemini.Model
}
