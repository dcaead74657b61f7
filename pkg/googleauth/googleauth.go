package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const revokeEndpoint = "https://oauth2.googleapis.com/revoke"

// Config holds the OAuth client credentials and token storage location.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	Scopes       []string

	// TokenFile is where the obtained token is cached between runs.
	TokenFile string

	// Fs defaults to the OS filesystem when nil.
	Fs afero.Fs
}

// TokenProvider yields Google access tokens for API clients.
type TokenProvider interface {
	IsAuthenticated(ctx context.Context) bool
	AccessToken(ctx context.Context) (string, error)
	InvalidateToken()
	Revoke(ctx context.Context) error
}

// Provider implements TokenProvider on top of a stored oauth2 token.
// The interactive authorization flow is driven externally via AuthURL
// and Exchange; everything else runs off the cached refresh token.
type Provider struct {
	oauth     *oauth2.Config
	fs        afero.Fs
	tokenFile string

	mu    sync.Mutex
	token *oauth2.Token
}

func New(cfg Config) (*Provider, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("googleauth: client id and secret are required")
	}
	if cfg.TokenFile == "" {
		return nil, fmt.Errorf("googleauth: token file path is required")
	}

	fs := cfg.Fs
	if fs == nil {
		fs = afero.NewOsFs()
	}

	p := &Provider{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       cfg.Scopes,
			Endpoint:     google.Endpoint,
		},
		fs:        fs,
		tokenFile: cfg.TokenFile,
	}
	p.token, _ = p.loadToken()
	return p, nil
}

// AuthURL returns the consent-screen URL for the interactive flow.
// AccessTypeOffline makes Google return a refresh token.
func (p *Provider) AuthURL(state string) string {
	return p.oauth.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

// Exchange trades an authorization code for a token and persists it.
func (p *Provider) Exchange(ctx context.Context, code string) error {
	tok, err := p.oauth.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("googleauth: code exchange failed: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = tok
	return p.saveToken(tok)
}

func (p *Provider) IsAuthenticated(ctx context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.token == nil {
		return false
	}
	return p.token.Valid() || p.token.RefreshToken != ""
}

// AccessToken returns a usable access token, refreshing the stored one
// when expired. Refreshed tokens are re-persisted so restarts keep the
// newest refresh token.
func (p *Provider) AccessToken(ctx context.Context) (string, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.token == nil {
		return "", ErrNotAuthenticated
	}
	if p.token.Valid() {
		return p.token.AccessToken, nil
	}
	if p.token.RefreshToken == "" {
		return "", ErrNotAuthenticated
	}

	fresh, err := p.oauth.TokenSource(ctx, p.token).Token()
	if err != nil {
		return "", fmt.Errorf("googleauth: token refresh failed: %w", err)
	}
	if fresh.RefreshToken == "" {
		fresh.RefreshToken = p.token.RefreshToken
	}
	p.token = fresh
	if err := p.saveToken(fresh); err != nil {
		return "", err
	}
	return fresh.AccessToken, nil
}

// InvalidateToken drops the cached access token but keeps the refresh
// token, forcing the next AccessToken call to mint a new one. Used when
// a Google API rejects the current token with 401.
func (p *Provider) InvalidateToken() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.token == nil {
		return
	}
	p.token.AccessToken = ""
	p.token.Expiry = time.Now().Add(-time.Minute)
}

// Revoke tells Google to revoke the credential and removes the local
// token cache. Local state is cleared even when the remote call fails.
func (p *Provider) Revoke(ctx context.Context) error {
	p.mu.Lock()
	tok := p.token
	p.token = nil
	p.mu.Unlock()

	_ = p.fs.Remove(p.tokenFile)

	if tok == nil {
		return nil
	}
	revoke := tok.RefreshToken
	if revoke == "" {
		revoke = tok.AccessToken
	}
	if revoke == "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, revokeEndpoint,
		strings.NewReader(url.Values{"token": {revoke}}.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("googleauth: revoke request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("googleauth: revoke returned status %d", resp.StatusCode)
	}
	return nil
}

func (p *Provider) loadToken() (*oauth2.Token, error) {
	b, err := afero.ReadFile(p.fs, p.tokenFile)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(b, &tok); err != nil {
		return nil, fmt.Errorf("googleauth: corrupt token file: %w", err)
	}
	return &tok, nil
}

func (p *Provider) saveToken(tok *oauth2.Token) error {
	if dir := filepath.Dir(p.tokenFile); dir != "." {
		if err := p.fs.MkdirAll(dir, 0o700); err != nil {
			return err
		}
	}
	b, err := json.Marshal(tok)
	if err != nil {
		return err
	}
	return afero.WriteFile(p.fs, p.tokenFile, b, 0o600)
}
