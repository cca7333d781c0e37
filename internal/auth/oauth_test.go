package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newIdentityServer(t *testing.T, tokenStatus int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		var req tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode token request: %v", err)
		}
		if req.Code != "good-code" || req.ClientID != "app-1" || req.GrantType != "authorization_code" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if tokenStatus != http.StatusOK {
			w.WriteHeader(tokenStatus)
			_, _ = w.Write([]byte("denied"))
			return
		}
		_ = json.NewEncoder(w).Encode(tokenResponse{AccessToken: "access-1", TokenType: "Bearer"})
	})
	mux.HandleFunc("/oauth/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer access-1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(Identity{OpenID: "open-1", Name: "Ada", Email: "ada@example.com", LoginMethod: "github"})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestOAuthAuthenticate(t *testing.T) {
	server := newIdentityServer(t, http.StatusOK)
	client := NewOAuthClient(server.URL+"/", "app-1", "http://localhost/api/oauth/callback")

	identity, err := client.Authenticate(context.Background(), "good-code")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if identity.OpenID != "open-1" || identity.Name != "Ada" || identity.LoginMethod != "github" {
		t.Fatalf("unexpected identity %#v", identity)
	}
}

func TestOAuthAuthenticateFailures(t *testing.T) {
	tests := []struct {
		name        string
		tokenStatus int
		code        string
	}{
		{name: "授权码无效", tokenStatus: http.StatusOK, code: "bad-code"},
		{name: "身份服务拒绝", tokenStatus: http.StatusForbidden, code: "good-code"},
		{name: "授权码为空", tokenStatus: http.StatusOK, code: "  "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newIdentityServer(t, tt.tokenStatus)
			client := NewOAuthClient(server.URL, "app-1", "")
			if _, err := client.Authenticate(context.Background(), tt.code); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestNewOAuthClientDisabled(t *testing.T) {
	client := NewOAuthClient(" ", "app", "")
	if client != nil {
		t.Fatal("expected nil client without base url")
	}
	if _, err := client.Authenticate(context.Background(), "code"); err == nil {
		t.Fatal("expected error from unconfigured client")
	}
}
