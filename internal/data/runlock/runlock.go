package runlock

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/workload-backend/internal/domain/aggregates"
	"github.com/yungbote/workload-backend/internal/platform/logger"
)

// Release gives the lock back. It only deletes the key while it still holds
// the token written by Acquire.
type Release func(ctx context.Context) error

// Locker serializes ingestion runs against one schema.
type Locker interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error)
}

type noopLocker struct{}

func (noopLocker) Acquire(context.Context, string, time.Duration) (Release, error) {
	return func(context.Context) error { return nil }, nil
}

// Noop is used when no Redis is configured; a single CLI process is then the
// only writer.
func Noop() Locker { return noopLocker{} }

var releaseScript = goredis.NewScript(`
if redis.call("get", KEYS[1]) == ARGV[1] then
	return redis.call("del", KEYS[1])
end
return 0
`)

type redisLocker struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewRedisLocker(rdb *goredis.Client, baseLog *logger.Logger) Locker {
	return &redisLocker{rdb: rdb, log: baseLog.With("service", "RedisRunLock")}
}

// Acquire sets key with a fresh token. A held key yields a conflict error.
func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (Release, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, aggregates.Validation("runlock.acquire", "lock key is required")
	}
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, key, token, ttl).Result()
	if err != nil {
		return nil, aggregates.Wrap(aggregates.CodeRetryable, "runlock.acquire", err)
	}
	if !ok {
		return nil, aggregates.Conflict("runlock.acquire", "%s is held by another run", key)
	}
	l.log.Debug("Run lock acquired", "key", key, "ttl", ttl)

	return func(ctx context.Context) error {
		n, err := releaseScript.Run(ctx, l.rdb, []string{key}, token).Int()
		if err != nil {
			return fmt.Errorf("release %s: %w", key, err)
		}
		if n == 0 {
			l.log.Warn("Run lock expired before release", "key", key)
		}
		return nil
	}, nil
}

type Options struct {
	Addr     string
	Password string
	DB       int
}

// Connect opens a client and pings it.
func Connect(ctx context.Context, opts Options) (*goredis.Client, error) {
	addr := strings.TrimSpace(opts.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: 5 * time.Second,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}
