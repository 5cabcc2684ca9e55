package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// KEYS[1] = counter key, ARGV[1] = window in milliseconds.
var fixedWindow = redis.NewScript(`
local n = redis.call('INCR', KEYS[1])
if n == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return n
`)

// RedisLimiter counts requests per client in fixed windows shared by every
// instance using the same Redis. When Redis is unreachable requests are
// allowed.
type RedisLimiter struct {
	rdb    *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter allows limit requests per window for each client.
func NewRedisLimiter(rdb *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		rdb:    rdb,
		limit:  int64(limit),
		window: window,
		prefix: "vaultpass:rl:",
	}
}

// Allow increments the client's counter for the current window.
func (l *RedisLimiter) Allow(ctx context.Context, key string) bool {
	n, err := fixedWindow.Run(ctx, l.rdb, []string{l.prefix + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		slog.Warn("rate limit store unavailable, allowing request", "error", err)
		return true
	}
	return n <= l.limit
}
