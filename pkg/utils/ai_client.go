package utils

import (
	"fmt"
	"strings"

	"context"
)

// GenerationConfig is the optional tuning passed through to the provider.
// Zero values mean "provider default".
type GenerationConfig struct {
	Temperature     float32
	TopK            int32
	MaxOutputTokens int32
}

// AIClientInterface is the model-invocation boundary: one prompt in, one raw
// text response out. Callers must not assume the text is well-formed JSON;
// any client failure is surfaced to users as ErrModelUnavailable.
type AIClientInterface interface {
	GenerateText(ctx context.Context, prompt string, cfg GenerationConfig) (string, error)
	Close() error
}

// NewAIClient creates a Gemini or OpenAI client based on config.
func NewAIClient(provider, apiKey, model string) (AIClientInterface, error) {
	switch strings.ToLower(provider) {
	case "gemini", "":
		return NewGeminiClient(apiKey, model)
	case "openai":
		return NewOpenAIClient(apiKey, model), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s", provider)
	}
}
