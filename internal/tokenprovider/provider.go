// Package tokenprovider caches the upstream OAuth2 bearer token obtained with the
// client-credentials grant and refreshes it lazily.
package tokenprovider

import (
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"genpact-relay/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/sync/singleflight"
)

const (
	// SafetyMargin is how long before expiry a cached token stops being served.
	SafetyMargin = 60 * time.Second
	// DefaultExpiresIn applies only when the token response has no expires_in field.
	DefaultExpiresIn = 3600 * time.Second

	defaultRefreshTimeout = 10 * time.Second
	bearerPrefix          = "Bearer "
)

// Provider returns a value ready for an Authorization header.
type Provider interface {
	BearerToken(ctx context.Context) (string, error)
}

// cachedToken is immutable once stored.
type cachedToken struct {
	value     string
	expiresAt time.Time
}

func (t *cachedToken) usable(now time.Time) bool {
	return t != nil && now.Before(t.expiresAt.Add(-SafetyMargin))
}

// Config holds the upstream client credentials.
type Config struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
	Scopes       []string
	// RefreshTimeout bounds a single token endpoint call. Zero means 10s.
	RefreshTimeout time.Duration
}

// Option customizes an OAuth2Provider.
type Option func(*OAuth2Provider)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *OAuth2Provider) { p.now = now }
}

// WithHTTPClient sets the client used to reach the token endpoint.
func WithHTTPClient(c *http.Client) Option {
	return func(p *OAuth2Provider) { p.httpClient = c }
}

func WithLogger(l *zap.Logger) Option {
	return func(p *OAuth2Provider) { p.logger = l }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(p *OAuth2Provider) { p.metrics = m }
}

// OAuth2Provider is safe for concurrent use. Cache hits never block; concurrent
// misses share a single token endpoint call.
type OAuth2Provider struct {
	oauth          clientcredentials.Config
	refreshTimeout time.Duration
	httpClient     *http.Client
	now            func() time.Time
	logger         *zap.Logger
	metrics        *metrics.Metrics

	current atomic.Pointer[cachedToken]
	flight  singleflight.Group
}

func New(cfg Config, opts ...Option) *OAuth2Provider {
	p := &OAuth2Provider{
		oauth: clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
			Scopes:       cfg.Scopes,
			AuthStyle:    oauth2.AuthStyleInParams,
		},
		refreshTimeout: cfg.RefreshTimeout,
		httpClient:     &http.Client{},
		now:            time.Now,
		logger:         zap.NewNop(),
	}
	if p.refreshTimeout <= 0 {
		p.refreshTimeout = defaultRefreshTimeout
	}
	for _, opt := range opts {
		opt(p)
	}
	p.httpClient = withJSONTokenBodies(p.httpClient)
	return p
}

// BearerToken returns "Bearer <token>", fetching a new token when the cached one
// is missing or within SafetyMargin of expiry. Failures are *AuthError.
//
// If ctx ends while a refresh is in flight, BearerToken returns ctx.Err() and the
// refresh still completes and fills the cache.
func (p *OAuth2Provider) BearerToken(ctx context.Context) (string, error) {
	if tok := p.current.Load(); tok.usable(p.now()) {
		p.metrics.TokenCacheHit()
		return bearerPrefix + tok.value, nil
	}

	ch := p.flight.DoChan("token", func() (any, error) {
		return p.refresh(context.WithoutCancel(ctx))
	})
	select {
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return bearerPrefix + res.Val.(*cachedToken).value, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// CachedUntil reports the expiry of the cached token, if any.
func (p *OAuth2Provider) CachedUntil() (time.Time, bool) {
	tok := p.current.Load()
	if tok == nil {
		return time.Time{}, false
	}
	return tok.expiresAt, true
}

func (p *OAuth2Provider) refresh(ctx context.Context) (*cachedToken, error) {
	now := p.now()
	// another flight may have finished between the caller's check and this one
	if tok := p.current.Load(); tok.usable(now) {
		return tok, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.refreshTimeout)
	defer cancel()
	ctx = context.WithValue(ctx, oauth2.HTTPClient, p.httpClient)

	resp, err := p.oauth.Token(ctx)
	p.metrics.TokenRefresh(err)
	if err != nil {
		authErr := newAuthError(err)
		p.logger.Warn("token refresh failed",
			zap.String("token_url", p.oauth.TokenURL),
			zap.Int("status", authErr.StatusCode),
			zap.Error(authErr.Err),
		)
		return nil, authErr
	}

	next := &cachedToken{
		value:     resp.AccessToken,
		expiresAt: now.Add(lifetime(resp, now)),
	}
	if exp, ok := jwtExpiry(resp.AccessToken); ok && exp.Before(next.expiresAt) {
		next.expiresAt = exp
	}
	p.current.Store(next)

	p.logger.Info("token refreshed", zap.Time("expires_at", next.expiresAt))
	return next, nil
}

// lifetime 以 expires_in 為準；明確給 0 或負值代表 token 已不可用，
// 只有欄位缺漏時才套用 DefaultExpiresIn。
func lifetime(tok *oauth2.Token, now time.Time) time.Duration {
	if tok.ExpiresIn != 0 {
		return time.Duration(tok.ExpiresIn) * time.Second
	}
	if hasExpiresIn(tok) {
		return 0
	}
	if !tok.Expiry.IsZero() {
		return tok.Expiry.Sub(now).Round(time.Second)
	}
	return DefaultExpiresIn
}

// hasExpiresIn 區分 expires_in 缺漏與值為 0。
// JSON 回應缺漏時 Extra 為 nil，表單回應缺漏時為空字串。
func hasExpiresIn(tok *oauth2.Token) bool {
	v := tok.Extra("expires_in")
	return v != nil && v != ""
}
