// Package narrative turns a computed assessment into natural-language
// commentary through an LLM provider. The engine's status values stay
// authoritative; everything produced here is display-only text.
package narrative

import (
	"context"
	"os"
	"strings"
)

// Provider is the interface for all LLM backends.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// NewProviderFromEnv picks a provider by the NARRATIVE_PROVIDER variable
// (gemini, gemini-legacy, deepseek). Returns nil when unset so callers
// can degrade to reports without commentary.
func NewProviderFromEnv() Provider {
	switch strings.ToLower(os.Getenv("NARRATIVE_PROVIDER")) {
	case "gemini":
		return &GeminiProvider{}
	case "gemini-legacy":
		return &GeminiLegacyProvider{}
	case "deepseek":
		return &DeepSeekProvider{}
	default:
		return nil
	}
}
