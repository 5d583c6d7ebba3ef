// Package auth supplies bearer tokens to the HTTP transport.
package auth

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Static errors for err113 compliance.
var (
	ErrStaticTokenCannotRefresh = errors.New("static token cannot be refreshed")
	ErrNoValidToken             = errors.New("no valid access token")
)

// TokenManager provides the bearer token attached to every request.
type TokenManager interface {
	GetToken(ctx context.Context) (string, error)
	RefreshToken(ctx context.Context) error
	SetToken(token string, expiresAt time.Time)
}

// Token is an access token with an optional expiry.
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
}

// Valid reports whether the token can be sent. A zero ExpiresAt never expires.
func (t *Token) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}

	if t.ExpiresAt.IsZero() {
		return true
	}

	return time.Now().Before(t.ExpiresAt)
}

// StaticTokenManager hands out a fixed token. Tictail access tokens are
// issued out of band, so there is nothing to refresh.
type StaticTokenManager struct {
	mu    sync.RWMutex
	token *Token
}

// NewStaticTokenManager creates a token manager for a fixed access token.
func NewStaticTokenManager(accessToken string) *StaticTokenManager {
	return &StaticTokenManager{token: &Token{AccessToken: accessToken}}
}

// GetToken returns the configured token.
func (m *StaticTokenManager) GetToken(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if !m.token.Valid() {
		return "", ErrNoValidToken
	}

	return m.token.AccessToken, nil
}

// RefreshToken always fails.
func (m *StaticTokenManager) RefreshToken(ctx context.Context) error {
	return ErrStaticTokenCannotRefresh
}

// SetToken replaces the token.
func (m *StaticTokenManager) SetToken(token string, expiresAt time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.token = &Token{AccessToken: token, ExpiresAt: expiresAt}
}
