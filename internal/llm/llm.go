package llm

import (
	"context"
	"errors"

	"naukriedge/internal/config"
)

// ErrNotConfigured means no provider credential is present. The orchestrator
// treats this as "generate nothing" and publishes the placeholder article.
var ErrNotConfigured = errors.New("llm: no provider configured")

// Generation budget shared by both providers. Untyped so it fits each SDK.
const (
	defaultMaxTokens   = 3072
	defaultTemperature = 0.7
)

// Generator is the single capability both providers implement: one prompt in,
// raw text out. No retry or backoff lives behind it; a failed call is an
// error the caller absorbs into the fallback path.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
	Name() string
}

// FromConfig selects a provider by static preference: Gemini when its key is
// configured, otherwise OpenAI. This is not a failure-chain; if the chosen
// provider errors at request time the other one is not tried.
func FromConfig(cfg *config.Config) (Generator, error) {
	if cfg.GeminiAPIKey != "" {
		return NewGemini(cfg.GeminiAPIKey, cfg.GeminiModel)
	}
	if cfg.OpenAIAPIKey != "" {
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	}
	return nil, ErrNotConfigured
}
