// Package config loads application settings from the environment.
// A local .env file is folded in first (the app is demo-oriented and
// keys usually live there), then RENAISSANCE_-prefixed variables, then
// defaults. Bare provider key variables (OPENAI_API_KEY and friends)
// are honored as a last resort so the app works with nothing but a key
// exported in the shell.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"github.com/pushpullleg/renaissance/internal/llm"
)

const envPrefix = "RENAISSANCE_"

// Config is the full application configuration.
type Config struct {
	User   User   `koanf:"user"`
	Events string `koanf:"events"` // event log path override

	// Model is the generic model id; its prefix also selects the
	// provider when llm.provider is not set explicitly.
	Model string `koanf:"model"`

	LLM       LLM      `koanf:"llm"`
	OpenAI    Provider `koanf:"openai"`
	Anthropic Provider `koanf:"anthropic"`
	Gemini    Provider `koanf:"gemini"`
}

// User identifies the learner profile events are logged under.
type User struct {
	ID   string `koanf:"id"`
	Name string `koanf:"name"`
}

// LLM holds backend selection.
type LLM struct {
	Provider string `koanf:"provider"` // "openai", "anthropic", "gemini", "mock" or ""
}

// Provider holds one backend's credentials and model override.
type Provider struct {
	Key     string `koanf:"key"`
	Model   string `koanf:"model"`
	BaseURL string `koanf:"baseurl"`
}

// Load builds the Config from .env and environment variables.
func Load() (*Config, error) {
	// Missing .env is the normal case.
	_ = godotenv.Load()

	k := koanf.New(".")

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil); err != nil {
		return nil, err
	}

	if !k.Exists("user.id") {
		k.Set("user.id", "demo-mukesh")
	}
	if !k.Exists("user.name") {
		k.Set("user.name", "Mukesh")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, err
	}

	cfg.discoverBareKeys()
	return &cfg, nil
}

// discoverBareKeys fills unset credentials from the conventional
// un-prefixed variables and, when nothing selects a backend, picks one
// from whichever key is present.
func (c *Config) discoverBareKeys() {
	if c.Gemini.Key == "" {
		c.Gemini.Key = os.Getenv("GEMINI_API_KEY")
	}
	if c.OpenAI.Key == "" {
		c.OpenAI.Key = os.Getenv("OPENAI_API_KEY")
	}
	if c.Anthropic.Key == "" {
		c.Anthropic.Key = os.Getenv("ANTHROPIC_API_KEY")
	}

	if c.LLM.Provider != "" || c.Model != "" {
		return
	}
	switch {
	case c.Gemini.Key != "":
		c.LLM.Provider = "gemini"
	case c.OpenAI.Key != "":
		c.LLM.Provider = "openai"
	case c.Anthropic.Key != "":
		c.LLM.Provider = "anthropic"
	}
}

// HasAnyKey reports whether at least one backend has a credential. With
// no key at all the app runs without a provider and the tutor answers
// with its fixed no-client fallback.
func (c *Config) HasAnyKey() bool {
	return c.OpenAI.Key != "" || c.Anthropic.Key != "" || c.Gemini.Key != "" ||
		c.LLM.Provider == "mock"
}

// LLMConfig translates the app config into the provider package's form.
func (c *Config) LLMConfig() llm.Config {
	cfg := llm.DefaultConfig()
	cfg.Provider = c.LLM.Provider

	cfg.OpenAI.APIKey = c.OpenAI.Key
	if c.OpenAI.Model != "" {
		cfg.OpenAI.Model = c.OpenAI.Model
	}
	cfg.OpenAI.BaseURL = c.OpenAI.BaseURL

	cfg.Anthropic.APIKey = c.Anthropic.Key
	if c.Anthropic.Model != "" {
		cfg.Anthropic.Model = c.Anthropic.Model
	}

	cfg.Gemini.APIKey = c.Gemini.Key
	if c.Gemini.Model != "" {
		cfg.Gemini.Model = c.Gemini.Model
	}

	// The generic model id lands in every slot so whichever backend the
	// prefix selects uses it.
	if c.Model != "" {
		cfg.OpenAI.Model = c.Model
		cfg.Anthropic.Model = c.Model
		cfg.Gemini.Model = c.Model
	}

	return cfg
}
