// Package ratelimit throttles requests per client IP with a token bucket kept
// in Redis, so several faucet replicas share one budget.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/chainsafe/rbt-faucet/internal/metrics"
	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
	apphttp "github.com/chainsafe/rbt-faucet/pkg/app/http"
	"github.com/chainsafe/rbt-faucet/pkg/config"
)

// tokenBucket refills one token every interval_ms up to capacity and takes
// one token per call. Returns {allowed, remaining, retry_after_ms}.
var tokenBucket = redis.NewScript(`
local key = KEYS[1]
local now_ms = tonumber(ARGV[1])
local capacity = tonumber(ARGV[2])
local interval_ms = tonumber(ARGV[3])
local ttl_seconds = tonumber(ARGV[4])

local state = redis.call('HMGET', key, 'tokens', 'last_refill_ms')
local tokens = tonumber(state[1])
local last_refill = tonumber(state[2])

if tokens == nil or last_refill == nil then
	tokens = capacity
	last_refill = now_ms
end

local elapsed = math.max(0, now_ms - last_refill)
local intervals = math.floor(elapsed / interval_ms)
if intervals > 0 then
	tokens = math.min(capacity, tokens + intervals)
	last_refill = last_refill + (intervals * interval_ms)
end

local allowed = 0
local retry_after_ms = 0
if tokens > 0 then
	allowed = 1
	tokens = tokens - 1
else
	retry_after_ms = math.max(0, interval_ms - (now_ms - last_refill))
end

redis.call('HSET', key, 'tokens', tokens, 'last_refill_ms', last_refill)
redis.call('EXPIRE', key, ttl_seconds)

return { allowed, tokens, retry_after_ms }
`)

var errUnexpectedReply = errors.New("unexpected rate limit script reply")

// Result is the outcome of taking one token.
type Result struct {
	Allowed    bool
	Remaining  int64
	RetryAfter time.Duration
}

// Limiter takes a token from the bucket named key.
type Limiter interface {
	Take(ctx context.Context, key string) (Result, error)
}

// RedisLimiter implements Limiter with a Lua script, making the
// read-refill-take sequence atomic on the Redis side.
type RedisLimiter struct {
	client   redis.Scripter
	capacity int
	interval time.Duration
	ttl      time.Duration
	now      func() time.Time
}

// NewRedisLimiter creates a limiter allowing cfg.Requests per cfg.Window,
// refilled one token at a time.
func NewRedisLimiter(client redis.Scripter, cfg *config.RateLimitConfig) *RedisLimiter {
	interval := cfg.Window / time.Duration(cfg.Requests)
	if interval < time.Millisecond {
		interval = time.Millisecond
	}
	ttl := 2 * cfg.Window
	if ttl < time.Second {
		ttl = time.Second
	}
	return &RedisLimiter{
		client:   client,
		capacity: cfg.Requests,
		interval: interval,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (l *RedisLimiter) Take(ctx context.Context, key string) (Result, error) {
	vals, err := tokenBucket.Run(ctx, l.client, []string{key},
		l.now().UnixMilli(),
		l.capacity,
		l.interval.Milliseconds(),
		int64(l.ttl/time.Second),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("run token bucket for %s: %w", key, err)
	}
	if len(vals) != 3 {
		return Result{}, fmt.Errorf("%w: %v", errUnexpectedReply, vals)
	}
	return Result{
		Allowed:    vals[0] == 1,
		Remaining:  vals[1],
		RetryAfter: time.Duration(vals[2]) * time.Millisecond,
	}, nil
}

// NewRedisClient connects to the configured Redis and pings it.
func NewRedisClient(ctx context.Context, cfg *config.RateLimitConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// Key returns the bucket name for the client at remoteAddr.
func Key(prefix, remoteAddr string) string {
	ip := remoteAddr
	if host, _, err := net.SplitHostPort(remoteAddr); err == nil {
		ip = host
	}
	if ip == "" {
		ip = "unknown"
	}
	return prefix + ":ip:" + ip
}

// Middleware rejects requests whose IP bucket is empty with 429.
// Limiter errors let the request through.
func Middleware(limiter Limiter, capacity int, prefix string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := Key(prefix, r.RemoteAddr)

			res, err := limiter.Take(r.Context(), key)
			if err != nil {
				logger.Warn("Rate limiter unavailable, allowing request", zap.String("key", key), zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(capacity))
			w.Header().Set("X-RateLimit-Remaining", strconv.FormatInt(res.Remaining, 10))

			if !res.Allowed {
				metrics.RateLimitedTotal.Inc()
				logger.Debug("Request rate limited", zap.String("key", key), zap.Duration("retry_after", res.RetryAfter))
				apphttp.DefaultErrorHandler(w, apperrors.AsPlainText(apperrors.TooManyRequestsError(
					nil, "Too many requests. Slow down and try again shortly.", res.RetryAfter,
				)))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
