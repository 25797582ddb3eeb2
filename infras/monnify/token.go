package monnify

import (
	"context"
	"sync"
	"time"
)

const tokenRefreshBuffer = 30 * time.Second

// TokenCache holds the current bearer token. The mutex is held across a
// login so only one refresh is ever in flight.
type TokenCache struct {
	mu        sync.Mutex
	token     string
	expiresAt time.Time
	now       func() time.Time
}

func NewTokenCache(now func() time.Time) *TokenCache {
	if now == nil {
		now = time.Now
	}

	return &TokenCache{now: now}
}

// Get returns the cached token unless it expires within the refresh buffer,
// in which case login is called and its result stored.
func (c *TokenCache) Get(ctx context.Context, login func(ctx context.Context) (string, time.Duration, error)) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	if c.token != "" && c.expiresAt.After(now.Add(tokenRefreshBuffer)) {
		return c.token, nil
	}

	token, ttl, err := login(ctx)
	if err != nil {
		return "", err
	}

	c.token = token
	c.expiresAt = now.Add(max(0, ttl))

	return c.token, nil
}

func (c *TokenCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiresAt = time.Time{}
}
