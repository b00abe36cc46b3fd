package factory

import (
	"ai-shopassist-be/pkg/llm"
	"ai-shopassist-be/pkg/llm/ollama"
	"fmt"
)

// NewLLMProvider returns nil (no error) for "none" so callers can run
// without a model and fall back to template replies.
func NewLLMProvider(providerType, modelName, baseURL string) (llm.LLMProvider, error) {
	switch providerType {
	case "none", "":
		return nil, nil
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.New(baseURL, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
