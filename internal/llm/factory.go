package llm

import (
	"fmt"
	"scribe/internal/config"
	"strings"
)

const (
	DriverOpenAI     = "openai"
	DriverVolcengine = "volcengine"
)

// NewCompleter instantiates the configured completion driver.
// It returns (nil, nil) when no API key is configured.
func NewCompleter(cfg config.Config) (Completer, error) {
	if strings.TrimSpace(cfg.LLMAPIKey) == "" {
		return nil, nil
	}

	driver := strings.ToLower(strings.TrimSpace(cfg.LLMDriver))
	switch driver {
	case "", DriverOpenAI:
		return NewOpenAICompatible(cfg.LLMAPIKey, cfg.LLMBaseURL, cfg.LLMModel, cfg.LLMTimeout())
	case DriverVolcengine:
		return NewVolcengine(cfg.LLMAPIKey, cfg.LLMModel)
	default:
		return nil, fmt.Errorf("unsupported llm driver: %s", cfg.LLMDriver)
	}
}
