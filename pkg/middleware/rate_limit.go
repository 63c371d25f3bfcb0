package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travelwise/travelwise-api/pkg/logger"
)

// RateLimitConfig defines rate limiting parameters.
type RateLimitConfig struct {
	Requests int                            // max requests per window
	Window   time.Duration                  // time window duration
	KeyFunc  func(r *http.Request) []string // generates rate limit keys
}

// RateLimiter counts requests per key in Redis using a fixed window.
type RateLimiter struct {
	client *redis.Client
	config RateLimitConfig
}

func NewRateLimiter(client *redis.Client, config RateLimitConfig) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = IPKey
	}
	return &RateLimiter{client: client, config: config}
}

// IPKey limits by client IP.
func IPKey(r *http.Request) []string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return []string{"ip:" + host}
}

// Middleware returns the rate limiting middleware.
func (rl *RateLimiter) Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, key := range rl.config.KeyFunc(r) {
				allowed, err := rl.allow(r.Context(), key)
				if err != nil {
					// Redis trouble should not take the API down.
					logger.WarnContext(r.Context(), "rate limit check failed", "error", err)
					break
				}
				if !allowed {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusTooManyRequests)
					w.Write([]byte(`{"error":"Too many requests. Try again later.","code":"RATE_LIMIT_EXCEEDED"}`))
					return
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) allow(ctx context.Context, key string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	// Hash the key for privacy.
	hashed := fmt.Sprintf("ratelimit:%x", sha256.Sum256([]byte(key)))

	count, err := rl.client.Incr(ctx, hashed).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := rl.client.Expire(ctx, hashed, rl.config.Window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(rl.config.Requests), nil
}
