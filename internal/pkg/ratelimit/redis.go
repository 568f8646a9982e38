package ratelimit

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

// Decision is the result of consuming one slot of a window.
type Decision struct {
	Allowed    bool
	Count      int
	RetryAfter time.Duration
}

// RedisLimiter is a fixed-window counter shared by every API instance.
type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.UniversalClient, prefix string, limit int, window time.Duration) *RedisLimiter {
	trimmed := strings.TrimSuffix(strings.TrimSpace(prefix), ":")
	if trimmed == "" {
		trimmed = "evento:rate_limit"
	}

	return &RedisLimiter{
		client: client,
		prefix: trimmed,
		limit:  limit,
		window: window,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, scope, subject string) (Decision, error) {
	if l == nil || l.client == nil || l.limit <= 0 || l.window <= 0 {
		return Decision{Allowed: true}, nil
	}

	scope = strings.TrimSpace(scope)
	subject = strings.TrimSpace(subject)
	if scope == "" || subject == "" {
		return Decision{Allowed: true}, nil
	}

	windowMs := l.window.Milliseconds()
	if windowMs < 1000 {
		windowMs = 1000
	}

	key := fmt.Sprintf("%s:%s:%s", l.prefix, scope, subject)
	raw, err := fixedWindowScript.Run(ctx, l.client, []string{key}, windowMs).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("fixedWindowScript.Run -> %w", err)
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) != 2 {
		return Decision{}, fmt.Errorf("unexpected limiter response shape: %T", raw)
	}

	count, ok := values[0].(int64)
	if !ok {
		return Decision{}, fmt.Errorf("unexpected limiter count type: %T", values[0])
	}

	ttlMs, ok := values[1].(int64)
	if !ok || ttlMs < 0 {
		ttlMs = windowMs
	}

	retryAfter := time.Duration(math.Ceil(float64(ttlMs)/1000.0)) * time.Second
	if retryAfter < time.Second {
		retryAfter = time.Second
	}

	return Decision{
		Allowed:    int(count) <= l.limit,
		Count:      int(count),
		RetryAfter: retryAfter,
	}, nil
}
