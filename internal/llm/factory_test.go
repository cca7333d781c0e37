package llm

import (
	"scribe/internal/config"
	"testing"
)

func TestNewCompleter(t *testing.T) {
	tests := []struct {
		name     string
		cfg      config.Config
		wantNil  bool
		wantErr  bool
		wantName string
	}{
		{name: "no api key", cfg: config.Config{LLMDriver: DriverOpenAI}, wantNil: true},
		{name: "default driver", cfg: config.Config{LLMAPIKey: "k"}, wantName: "openai"},
		{name: "openai", cfg: config.Config{LLMAPIKey: "k", LLMDriver: "OpenAI"}, wantName: "openai"},
		{name: "volcengine", cfg: config.Config{LLMAPIKey: "k", LLMDriver: DriverVolcengine}, wantName: "volcengine"},
		{name: "unknown", cfg: config.Config{LLMAPIKey: "k", LLMDriver: "gemini"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completer, err := NewCompleter(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantNil {
				if completer != nil {
					t.Fatalf("expected nil completer, got %T", completer)
				}
				return
			}
			if completer == nil || completer.Name() != tt.wantName {
				t.Fatalf("expected %s completer, got %#v", tt.wantName, completer)
			}
		})
	}
}
