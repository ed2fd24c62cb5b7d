// internal/pkg/oidc/provider.go
package oidc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	xerrors "portfolio-service/internal/pkg/errors"
)

// ProviderConfig configures the identity provider client. The URL fields
// exist so tests can point at a local server.
type ProviderConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Audience     string

	AuthorizeURL string
	TokenURL     string
	UserInfoURL  string

	// Outbound call budget. Defaults to 10s.
	Timeout time.Duration
}

// Provider performs the authorization-code and refresh-token exchanges
// against the identity provider.
type Provider struct {
	config ProviderConfig
	client *http.Client
}

func NewProvider(config ProviderConfig) *Provider {
	if config.Timeout == 0 {
		config.Timeout = 10 * time.Second
	}
	return &Provider{
		config: config,
		client: &http.Client{Timeout: config.Timeout},
	}
}

// TokenSet is the provider's answer to a successful exchange. RefreshToken
// is empty when the provider chose not to rotate or issue one.
type TokenSet struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	IDToken      string `json:"id_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

// providerError is the OAuth2 error body (error / error_description).
type providerError struct {
	Code        string `json:"error"`
	Description string `json:"error_description"`
}

// AuthorizeURL builds the provider's authorize redirect target.
func (p *Provider) AuthorizeURL(state string) string {
	params := url.Values{
		"client_id":     {p.config.ClientID},
		"redirect_uri":  {p.config.RedirectURI},
		"response_type": {"code"},
		"scope":         {"openid email profile offline_access"},
		"state":         {state},
	}
	if p.config.Audience != "" {
		params.Set("audience", p.config.Audience)
	}
	return p.config.AuthorizeURL + "?" + params.Encode()
}

// Exchange trades an authorization code for tokens.
func (p *Provider) Exchange(ctx context.Context, code string) (*TokenSet, error) {
	return p.token(ctx, url.Values{
		"grant_type":    {"authorization_code"},
		"code":          {code},
		"client_id":     {p.config.ClientID},
		"client_secret": {p.config.ClientSecret},
		"redirect_uri":  {p.config.RedirectURI},
	})
}

// Refresh trades a refresh token for a new access token. The provider may
// or may not rotate the refresh token; callers must check.
func (p *Provider) Refresh(ctx context.Context, refreshToken string) (*TokenSet, error) {
	return p.token(ctx, url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
		"client_id":     {p.config.ClientID},
		"client_secret": {p.config.ClientSecret},
	})
}

func (p *Provider) token(ctx context.Context, data url.Values) (*TokenSet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.config.TokenURL, strings.NewReader(data.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read token response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, rejectionError(resp.StatusCode, body)
	}

	var tokens TokenSet
	if err := json.Unmarshal(body, &tokens); err != nil {
		return nil, fmt.Errorf("failed to parse token response: %w", err)
	}
	if tokens.AccessToken == "" {
		return nil, fmt.Errorf("%w: empty access token in response", xerrors.ErrUpstreamRejected)
	}

	return &tokens, nil
}

// UserInfo resolves the authenticated user's claims with a fresh access
// token.
func (p *Provider) UserInfo(ctx context.Context, accessToken string) (*Claims, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.config.UserInfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user info request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read user info response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, rejectionError(resp.StatusCode, body)
	}

	var claims Claims
	if err := json.Unmarshal(body, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse user info response: %w", err)
	}
	if err := claims.RequireSubject(); err != nil {
		return nil, err
	}

	return &claims, nil
}

// classifyTransportError surfaces provider-side timeouts as a distinct
// error so callers can tell a transient outage from a rejection.
func classifyTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return fmt.Errorf("%w: %v", xerrors.ErrUpstreamTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", xerrors.ErrUpstreamTimeout, err)
	}
	return fmt.Errorf("provider request failed: %w", err)
}

func rejectionError(status int, body []byte) error {
	var perr providerError
	if err := json.Unmarshal(body, &perr); err == nil && perr.Code != "" {
		return fmt.Errorf("%w: %s (%s)", xerrors.ErrUpstreamRejected, perr.Code, perr.Description)
	}
	return fmt.Errorf("%w: status %d", xerrors.ErrUpstreamRejected, status)
}
