package lock

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"shopscore/internal/domain/service"
	"shopscore/internal/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	redisKeyPrefix     = "shopscore:lock:"
	defaultLockTTL     = 10 * time.Second
	defaultPollBackoff = 20 * time.Millisecond
	unlockTimeout      = 2 * time.Second
)

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// redisLocker serializes a key across service instances with SET NX PX.
type redisLocker struct {
	client  *redis.Client
	ttl     time.Duration
	backoff time.Duration
	logger  *slog.Logger
}

// Connect initializes a Redis client from URL or host:port input.
func Connect(redisURL string) (*redis.Client, error) {
	if strings.HasPrefix(redisURL, "redis://") || strings.HasPrefix(redisURL, "rediss://") {
		opt, err := redis.ParseURL(redisURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse redis url")
		}

		return redis.NewClient(opt), nil
	}

	return redis.NewClient(&redis.Options{Addr: redisURL}), nil
}

// NewRedisLocker creates a distributed KeyLocker. ttl bounds how long a crashed holder blocks a key.
func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.KeyLocker {
	if ttl <= 0 {
		ttl = defaultLockTTL
	}

	return &redisLocker{
		client:  client,
		ttl:     ttl,
		backoff: defaultPollBackoff,
		logger:  logger,
	}
}

// Lock polls SET NX until the key is acquired or ctx is done.
func (l *redisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(l.backoff)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, errors.WithStack(ctx.Err())
			}

			return nil, errors.Wrap(err, "redis SETNX")
		}
		if ok {
			return func() { l.unlock(redisKey, token) }, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.WithStack(ctx.Err())
		case <-ticker.C:
		}
	}
}

func (l *redisLocker) unlock(redisKey, token string) {
	ctx, cancel := context.WithTimeout(context.Background(), unlockTimeout)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{redisKey}, token).Err(); err != nil {
		l.logger.Warn("Failed to release redis lock",
			slog.String("key", redisKey),
			slog.Any("error", err),
		)
	}
}
