// Package narrative turns a computed financial plan into a short
// explanation in natural language via an LLM provider (Anthropic or
// OpenAI). Narrative generation is strictly best-effort: callers fall
// back to Fallback when a provider is unreachable or misconfigured.
package narrative

import (
	"context"
	"errors"
)

// Provider names for configuration.
const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// Fallback is returned to clients whenever no narrative could be generated.
const Fallback = "A narrative explanation is not available right now. The figures in this analysis are complete and can be used on their own."

// Common errors returned by narrative generators.
var (
	ErrNoAPIKey        = errors.New("narrative: API key not configured")
	ErrProviderDown    = errors.New("narrative: provider unavailable")
	ErrUnknownProvider = errors.New("narrative: unknown provider")
)

// Generator produces a narrative explanation for a prompt.
type Generator interface {
	// Name returns the provider identifier (e.g. "anthropic", "openai").
	Name() string

	// Generate returns the narrative text for the prompt.
	Generate(ctx context.Context, prompt string) (string, error)
}

// New creates the generator for the configured provider name.
func New(provider, apiKey string) (Generator, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicGenerator(apiKey)
	case ProviderOpenAI:
		return NewOpenAIGenerator(apiKey)
	}

	return nil, ErrUnknownProvider
}
