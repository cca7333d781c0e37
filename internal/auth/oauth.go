package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const maxOAuthErrorBody = 2 << 10

// Identity 身份服务返回的用户信息
type Identity struct {
	OpenID      string `json:"open_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	LoginMethod string `json:"login_method"`
}

// OAuthClient exchanges authorization codes with the external identity server.
type OAuthClient struct {
	baseURL     string
	appID       string
	redirectURL string
	httpClient  *http.Client
}

// NewOAuthClient returns nil when the identity server is not configured.
func NewOAuthClient(baseURL, appID, redirectURL string) *OAuthClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil
	}
	return &OAuthClient{
		baseURL:     baseURL,
		appID:       strings.TrimSpace(appID),
		redirectURL: strings.TrimSpace(redirectURL),
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

type tokenRequest struct {
	ClientID    string `json:"client_id"`
	GrantType   string `json:"grant_type"`
	Code        string `json:"code"`
	RedirectURI string `json:"redirect_uri"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Authenticate 用授权码换取 access token，再读取用户信息
func (c *OAuthClient) Authenticate(ctx context.Context, code string) (*Identity, error) {
	if c == nil {
		return nil, errors.New("oauth is not configured")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, errors.New("authorization code is required")
	}

	accessToken, err := c.exchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}
	identity, err := c.userInfo(ctx, accessToken)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"open_id":      identity.OpenID,
		"login_method": identity.LoginMethod,
	}).Info("oauth identity resolved")
	return identity, nil
}

func (c *OAuthClient) exchangeCode(ctx context.Context, code string) (string, error) {
	body, err := json.Marshal(tokenRequest{
		ClientID:    c.appID,
		GrantType:   "authorization_code",
		Code:        code,
		RedirectURI: c.redirectURL,
	})
	if err != nil {
		return "", fmt.Errorf("encode token request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/oauth/token", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var decoded tokenResponse
	if err := c.do(req, &decoded); err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}
	if strings.TrimSpace(decoded.AccessToken) == "" {
		return "", errors.New("exchange code: empty access token")
	}
	return decoded.AccessToken, nil
}

func (c *OAuthClient) userInfo(ctx context.Context, accessToken string) (*Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/oauth/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	var identity Identity
	if err := c.do(req, &identity); err != nil {
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	identity.OpenID = strings.TrimSpace(identity.OpenID)
	if identity.OpenID == "" {
		return nil, errors.New("fetch userinfo: missing open_id")
	}
	return &identity, nil
}

func (c *OAuthClient) do(req *http.Request, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxOAuthErrorBody))
		return fmt.Errorf("identity server http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
