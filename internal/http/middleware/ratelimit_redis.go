package middleware

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// rateLimitKeyPrefix namespaces the gateway's counters so they never collide
// with the candidate cache keys on a shared Redis.
const rateLimitKeyPrefix = "talentboard:ratelimit:"

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

// RedisLimiter shares the fixed window across gateway instances. It fails
// open: a Redis error never blocks a request.
type RedisLimiter struct {
	client *redis.Client
	script *redis.Script
	logger zerolog.Logger
}

func NewRedisLimiter(client *redis.Client, logger zerolog.Logger) *RedisLimiter {
	if client == nil {
		return nil
	}
	return &RedisLimiter{
		client: client,
		script: redis.NewScript(rateLimitScript),
		logger: logger,
	}
}

func (l *RedisLimiter) Allow(key string, limit int, window time.Duration) bool {
	if l == nil || l.client == nil {
		return true
	}
	if key == "" || limit <= 0 || window <= 0 {
		return true
	}
	ttl := window.Milliseconds()
	if ttl <= 0 {
		ttl = 1
	}
	ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
	defer cancel()
	allowed, err := l.script.Run(ctx, l.client, []string{rateLimitKeyPrefix + key}, ttl, limit).Int64()
	if err != nil {
		l.logger.Debug().Err(err).Str("key", key).Msg("rate limit check failed, allowing")
		return true
	}
	return allowed == 1
}
