package auth

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

// DefaultTokenURL is Strava's OAuth token endpoint
const DefaultTokenURL = "https://www.strava.com/oauth/token"

// refreshSkew refreshes tokens slightly before their actual expiry so
// an in-flight request never carries a token that dies mid-call
const refreshSkew = 60 * time.Second

// ErrAuthentication wraps any failure to refresh the access token
var ErrAuthentication = errors.New("strava authentication failed")

// Credentials are the three values required to talk to the Strava API
// on behalf of the athlete. The refresh token is the long-lived
// credential issued once; access tokens are minted from it as needed.
type Credentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// TokenSource mints and caches Strava access tokens. The cache lives
// for the process only and is never persisted. It implements
// oauth2.TokenSource so it can back an oauth2 HTTP client directly.
//
// Safe for concurrent use; the mutex also collapses concurrent
// refreshes into one so parallel requests don't race the token
// endpoint.
type TokenSource struct {
	cfg *oauth2.Config

	mu      sync.Mutex
	refresh string
	token   *oauth2.Token
}

// Option customizes a TokenSource
type Option func(*TokenSource)

// WithTokenURL points the token exchange at a different endpoint.
// Used by tests to stand in a stub server.
func WithTokenURL(url string) Option {
	return func(ts *TokenSource) {
		ts.cfg.Endpoint.TokenURL = url
	}
}

// NewTokenSource creates a token source seeded with the long-lived
// refresh token. No network call happens until the first Token().
func NewTokenSource(creds Credentials, opts ...Option) *TokenSource {
	ts := &TokenSource{
		cfg: &oauth2.Config{
			ClientID:     creds.ClientID,
			ClientSecret: creds.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: DefaultTokenURL,
				// Strava wants client_id/client_secret in the form body
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		refresh: creds.RefreshToken,
	}
	for _, opt := range opts {
		opt(ts)
	}
	return ts
}

// Token returns a valid access token, performing a refresh-token
// exchange when the cached one is missing or within refreshSkew of
// expiry. On success the cached token is replaced in one step; on
// failure the cache is left exactly as it was.
func (ts *TokenSource) Token() (*oauth2.Token, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != nil && time.Until(ts.token.Expiry) > refreshSkew {
		return ts.token, nil
	}

	seed := &oauth2.Token{RefreshToken: ts.refresh}
	tok, err := ts.cfg.TokenSource(context.Background(), seed).Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAuthentication, err)
	}

	// Strava rotates refresh tokens on each exchange
	if tok.RefreshToken != "" {
		ts.refresh = tok.RefreshToken
	}
	ts.token = tok
	return tok, nil
}

// Valid reports whether the cached token would be served as-is by the
// next Token() call
func (ts *TokenSource) Valid() bool {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	return ts.token != nil && time.Until(ts.token.Expiry) > refreshSkew
}
