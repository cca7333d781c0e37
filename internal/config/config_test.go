package config

import (
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Setenv("DBType", "sqlite")
	t.Setenv("LLM_DRIVER", "")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Errorf("expected default port 8080, got %q", cfg.HTTPPort)
	}
	if cfg.StorageType != "local" {
		t.Errorf("expected local storage by default, got %q", cfg.StorageType)
	}
	if !cfg.SeedTemplates {
		t.Error("expected template seeding to be enabled by default")
	}
	if cfg.SessionTTL() != 24*time.Hour {
		t.Errorf("expected a one day session by default, got %s", cfg.SessionTTL())
	}
	if len(cfg.CORSAllowedOrigins) != 0 {
		t.Errorf("expected no credentialed origins by default, got %v", cfg.CORSAllowedOrigins)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LLM_TIMEOUT_SECONDS", "30")
	t.Setenv("OWNER_OPEN_ID", "owner-1")
	t.Setenv("SESSION_COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173,https://app.example.com")

	cfg, err := ParseConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Errorf("expected port 9090, got %q", cfg.HTTPPort)
	}
	if cfg.LLMTimeout() != 30*time.Second {
		t.Errorf("expected 30s timeout, got %s", cfg.LLMTimeout())
	}
	if cfg.OwnerOpenID != "owner-1" {
		t.Errorf("expected owner open id, got %q", cfg.OwnerOpenID)
	}
	if !cfg.SessionCookieSecure {
		t.Error("expected secure cookie flag")
	}
	if len(cfg.CORSAllowedOrigins) != 2 || cfg.CORSAllowedOrigins[1] != "https://app.example.com" {
		t.Errorf("unexpected allowed origins %v", cfg.CORSAllowedOrigins)
	}
}

func TestLLMTimeoutFallback(t *testing.T) {
	cfg := Config{LLMTimeoutSeconds: 0}
	if cfg.LLMTimeout() != 2*time.Minute {
		t.Errorf("expected fallback of 2m, got %s", cfg.LLMTimeout())
	}
}
