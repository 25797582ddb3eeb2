package lock

//go:generate go run go.uber.org/mock/mockgen -source=./lock.go -destination=./mocks/lock_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/shared/failure"
)

const (
	keyPrefix     = "lock:"
	retryInterval = 50 * time.Millisecond
	otelScopeName = "lock"
)

var ErrNotAcquired = failure.Conflict("Resource is busy, please retry")

// Locker serializes read-modify-write sequences on a single aggregate across
// every process sharing the Redis instance.
type Locker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

type redisLocker struct {
	client *redis.Client
	otel   otel.Otel
	ttl    time.Duration
}

func New(client *redis.Client, ot otel.Otel, cfg *config.Config) Locker {
	ttl := time.Duration(cfg.Lock.TTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 10 * time.Second
	}

	return &redisLocker{
		client: client,
		otel:   ot,
		ttl:    ttl,
	}
}

// WithLock waits up to the lock TTL for key, runs fn while holding it and
// releases it only if the token still matches.
func (l *redisLocker) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) (err error) {
	ctx, scope := l.otel.NewScope(ctx, otelScopeName, otelScopeName+".WithLock")
	defer scope.End()

	scope.SetAttribute("lock.key", key)

	lockKey := keyPrefix + key
	token := uuid.NewString()

	if err = l.acquire(ctx, lockKey, token); err != nil {
		scope.TraceError(err)

		return err
	}

	defer func() {
		if releaseErr := l.release(context.WithoutCancel(ctx), lockKey, token); releaseErr != nil {
			log.Error().Err(releaseErr).Str("key", lockKey).Msg("failed to release lock")
		}
	}()

	ctxWithTimeout, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(ctxWithTimeout)
}

func (l *redisLocker) acquire(ctx context.Context, key, token string) error {
	deadline := time.NewTimer(l.ttl)
	defer deadline.Stop()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			return fmt.Errorf("failed to acquire lock: %w", err)
		}

		if ok {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("failed to acquire lock: %w", ctx.Err())
		case <-deadline.C:
			return ErrNotAcquired
		case <-ticker.C:
		}
	}
}

var unlockScript = redis.NewScript(`
local val = redis.call("GET", KEYS[1])
if val == ARGV[1] then
  return redis.call("DEL", KEYS[1])
else
  return 0
end
`)

func (l *redisLocker) release(ctx context.Context, key, token string) error {
	_, err := unlockScript.Run(ctx, l.client, []string{key}, token).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to release lock: %w", err)
	}

	return nil
}
