package dandomain

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// refreshMargin is subtracted from the token lifetime so a token is never
// used within five minutes of expiring.
const refreshMargin = 5 * time.Minute

// Auth obtains and refreshes DanDomain OAuth2 client-credentials tokens.
// The token and its expiry live on the struct, guarded by a mutex; there is
// no package-level state.
type Auth struct {
	tokenURL     string
	clientID     string
	clientSecret string
	client       *http.Client

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

// NewAuth creates a token source for the given token endpoint and credentials.
func NewAuth(tokenURL, clientID, clientSecret string) *Auth {
	return &Auth{
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	Error       string `json:"error"`
}

// Token returns a valid access token, requesting a fresh one when the cached
// token is missing or within a minute of its refresh deadline. The form-body
// grant is tried first; an invalid_client answer triggers the Basic Auth
// variant, which some shop configurations require.
func (a *Auth) Token(ctx context.Context) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.token != "" && time.Now().Before(a.expiresAt.Add(-time.Minute)) {
		return a.token, nil
	}

	tok, err := a.requestToken(ctx, false)
	if err == nil && tok.AccessToken == "" && strings.Contains(tok.Error, "invalid_client") {
		zlog.Logger.Warn().Str("token_url", a.tokenURL).Msg("form grant returned invalid_client, falling back to Basic Auth")
		tok, err = a.requestToken(ctx, true)
	}
	if err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("token response invalid: error=%q", tok.Error)
	}

	ttl := time.Duration(tok.ExpiresIn) * time.Second
	if tok.ExpiresIn <= 0 {
		ttl = 24 * time.Hour
	}

	a.token = tok.AccessToken
	a.expiresAt = time.Now().Add(ttl - refreshMargin)

	zlog.Logger.Info().Str("token_url", a.tokenURL).Msg("fetched DanDomain access token")
	return a.token, nil
}

// Invalidate drops the cached token so the next Token call fetches a new one.
func (a *Auth) Invalidate() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.token = ""
	a.expiresAt = time.Time{}
}

func (a *Auth) requestToken(ctx context.Context, basicAuth bool) (tokenResponse, error) {
	form := url.Values{"grant_type": {"client_credentials"}}
	if !basicAuth {
		form.Set("client_id", a.clientID)
		form.Set("client_secret", a.clientSecret)
		form.Set("scope", "")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return tokenResponse{}, fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if basicAuth {
		pair := base64.StdEncoding.EncodeToString([]byte(a.clientID + ":" + a.clientSecret))
		req.Header.Set("Authorization", "Basic "+pair)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return tokenResponse{}, fmt.Errorf("token request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return tokenResponse{}, fmt.Errorf("token endpoint error: %s", resp.Status)
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return tokenResponse{}, fmt.Errorf("decode token response: %w", err)
	}

	return tok, nil
}
