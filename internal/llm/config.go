package llm

import (
	"fmt"
	"strings"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which backend to use.
	// Values: "openai", "anthropic", "gemini", "mock".
	// Empty means derive from the configured model id prefix.
	Provider string

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Gemini    GeminiConfig
}

// OpenAIConfig holds OpenAI-specific configuration.
type OpenAIConfig struct {
	APIKey  string
	Model   string // Default: "gpt-4o-mini"
	BaseURL string // Optional override for OpenAI-compatible APIs.
}

// AnthropicConfig holds Anthropic-specific configuration.
type AnthropicConfig struct {
	APIKey string
	Model  string // Default: "claude-haiku"
}

// GeminiConfig holds Gemini-specific configuration.
type GeminiConfig struct {
	APIKey string
	Model  string // Default: "gemini-flash"
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Provider: "openai",
		OpenAI: OpenAIConfig{
			Model: "gpt-4o-mini",
		},
		Anthropic: AnthropicConfig{
			Model: "claude-haiku",
		},
		Gemini: GeminiConfig{
			Model: "gemini-flash",
		},
	}
}

// structuredInputPrefixes lists model-id prefixes served over the
// single-structured-input wire shape (one input of role-tagged content
// blocks) rather than the flat conversational turn list. The prefix
// decides only the request encoding the remote service expects; there is
// no behavioral difference beyond the adapter.
var structuredInputPrefixes = map[string]string{
	"claude-": "anthropic",
	"claude.": "anthropic",
	"gemini-": "gemini",
	"models/": "gemini",
}

// DetectProvider maps a model identifier to a backend name by prefix.
// Unrecognized models fall through to the conversational-turns shape
// ("openai"), which also covers OpenAI-compatible gateways.
func DetectProvider(model string) string {
	normalized := strings.ToLower(model)
	for prefix, provider := range structuredInputPrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return provider
		}
	}
	return "openai"
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "openai":
		if c.OpenAI.APIKey == "" {
			return fmt.Errorf("an OpenAI API key is required for the openai provider")
		}
	case "anthropic":
		if c.Anthropic.APIKey == "" {
			return fmt.Errorf("an Anthropic API key is required for the anthropic provider")
		}
	case "gemini":
		if c.Gemini.APIKey == "" {
			return fmt.Errorf("a Gemini API key is required for the gemini provider")
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
