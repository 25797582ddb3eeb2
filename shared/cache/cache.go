package cache

//go:generate go run go.uber.org/mock/mockgen -source=./cache.go -destination=./mocks/cache_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"salon/infras/otel"
)

const (
	scopeName    = "cache"
	keyAttribute = "cache.key"
)

// Nil is returned (wrapped) by Get on a cache miss.
const Nil = redis.Nil

// RedisCache stores JSON values and fixed-window counters. TTLs and windows
// are in seconds.
type RedisCache interface {
	Save(ctx context.Context, key string, value any, ttl int) error
	Get(ctx context.Context, key string, dest any) error
	Increment(ctx context.Context, key string, window int) (int64, error)
}

type redisCache struct {
	client *redis.Client
	otel   otel.Otel
}

func NewRedisCache(client *redis.Client, otl otel.Otel) RedisCache {
	return &redisCache{client: client, otel: otl}
}

func (c *redisCache) scope(ctx context.Context, op, key string) (context.Context, otel.Scope) {
	ctx, scope := c.otel.NewScope(ctx, scopeName, scopeName+"."+op)
	scope.SetAttribute(keyAttribute, key)

	return ctx, scope
}

// Save stores value under key. Strings are stored as-is, anything else as JSON.
func (c *redisCache) Save(ctx context.Context, key string, value any, ttl int) (err error) {
	ctx, scope := c.scope(ctx, "Save", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payload, ok := value.(string)
	if !ok {
		raw, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("failed to encode %q: %w", key, err)
		}

		payload = string(raw)
	}

	if err = c.client.Set(ctx, key, payload, seconds(ttl)).Err(); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache: save failed")

		return fmt.Errorf("failed to save %q: %w", key, err)
	}

	return nil
}

// Get decodes the value under key into dest, which may be a *string for raw
// values.
func (c *redisCache) Get(ctx context.Context, key string, dest any) error {
	ctx, scope := c.scope(ctx, "Get", key)
	defer scope.End()

	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("failed to read %q: %w", key, err)
	}

	if s, ok := dest.(*string); ok {
		*s = raw

		return nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Str("key", key).Msg("cache: stale or corrupt entry")

		return fmt.Errorf("failed to decode %q: %w", key, err)
	}

	return nil
}

// Increment bumps the counter under key and starts its window on the first hit.
func (c *redisCache) Increment(ctx context.Context, key string, window int) (count int64, err error) {
	ctx, scope := c.scope(ctx, "Increment", key)
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.ExpireNX(ctx, key, seconds(window))

	if _, err = pipe.Exec(ctx); err != nil {
		log.Error().Err(err).Str("key", key).Msg("cache: increment failed")

		return 0, fmt.Errorf("failed to increment %q: %w", key, err)
	}

	return incr.Val(), nil
}

func seconds(n int) time.Duration {
	return time.Duration(n) * time.Second
}
