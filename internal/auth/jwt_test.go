package auth

import (
	"scribe/internal/entity"
	"testing"
	"time"
)

func TestNewManagerAndTokenLifecycle(t *testing.T) {
	mgr, err := NewManager("test-secret", "issuer", time.Minute*30)
	if err != nil {
		t.Fatalf("unexpected error creating manager: %v", err)
	}

	user := &entity.DbUser{ID: 42, OpenID: "open-42", Name: "Ada"}
	token, expiresAt, err := mgr.GenerateToken(user)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}
	if expiresAt.Before(time.Now()) {
		t.Fatal("expected future expiry time")
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if claims.OpenID != user.OpenID || claims.Subject != user.OpenID {
		t.Fatalf("expected open id %s, got %s / %s", user.OpenID, claims.OpenID, claims.Subject)
	}
	if claims.Name != user.Name {
		t.Fatalf("expected name %s, got %s", user.Name, claims.Name)
	}
}

func TestParseTokenRejectsForeignTokens(t *testing.T) {
	mgr, _ := NewManager("secret-a", "scribe", time.Hour)
	other, _ := NewManager("secret-b", "scribe", time.Hour)
	otherIssuer, _ := NewManager("secret-a", "someone-else", time.Hour)

	user := &entity.DbUser{OpenID: "open-1"}
	tests := []struct {
		name string
		mgr  *Manager
	}{
		{name: "不同密钥", mgr: other},
		{name: "不同签发者", mgr: otherIssuer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, _, err := tt.mgr.GenerateToken(user)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if _, err := mgr.ParseToken(token); err == nil {
				t.Fatal("expected token to be rejected")
			}
		})
	}

	if _, err := mgr.ParseToken("not-a-token"); err == nil {
		t.Fatal("expected malformed token to be rejected")
	}
}

func TestGenerateTokenRequiresOpenID(t *testing.T) {
	mgr, _ := NewManager("secret", "", time.Hour)
	if _, _, err := mgr.GenerateToken(&entity.DbUser{ID: 1}); err == nil {
		t.Fatal("expected error without open id")
	}
}

func TestNewManagerRequiresSecret(t *testing.T) {
	if _, err := NewManager("   ", "", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}

func TestNewManagerDefaultExpiry(t *testing.T) {
	mgr, err := NewManager("secret", "", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mgr.Expiry() != 24*time.Hour {
		t.Fatalf("expected a one day default, got %s", mgr.Expiry())
	}
}
