package httpx

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Fixed window counter. Returns {allowed, remaining window in ms}.
const redisRateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if current > tonumber(ARGV[2]) then
  return {0, ttl}
end
return {1, ttl}
`

// RedisLimiter is a fixed window limiter shared by every replica pointing at
// the same Redis. Burst is ignored; RequestsPerWindow is the hard cap.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	prefix string
	limit  int
	window time.Duration
}

// NewRedisLimiter counts under keys "<prefix>:<request key>".
func NewRedisLimiter(client *redis.Client, prefix string, config RateLimitConfig) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(redisRateLimitScript),
		prefix: prefix,
		limit:  config.RequestsPerWindow,
		window: config.Window,
	}
}

// RedisLimiterFactory returns a LimiterFactory whose limiters share client.
func RedisLimiterFactory(client *redis.Client) LimiterFactory {
	return func(name string, config RateLimitConfig) Limiter {
		return NewRedisLimiter(client, "ratelimit:"+name, config)
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	if l.limit <= 0 || l.window <= 0 {
		return Decision{Allowed: true}, nil
	}

	ttl := max(l.window.Milliseconds(), 1)

	ctx, cancel := context.WithTimeout(ctx, 250*time.Millisecond)
	defer cancel()

	res, err := l.script.Run(ctx, l.client, []string{l.prefix + ":" + key}, ttl, l.limit).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("redis rate limit: %w", err)
	}
	if len(res) != 2 {
		return Decision{}, fmt.Errorf("redis rate limit: unexpected reply %v", res)
	}

	return Decision{
		Allowed:    res[0] == 1,
		RetryAfter: time.Duration(max(res[1], 0)) * time.Millisecond,
	}, nil
}
