package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	domainerror "github.com/pocket-ledger/backend/internal/domain/error"
	"github.com/pocket-ledger/backend/internal/integration/entrypoint/dto"
)

const (
	DefaultLoginAttempts = 5
	DefaultLoginWindow   = time.Minute

	rateLimitKeyPrefix = "ledger:ratelimit:"

	// sweepThreshold bounds the in-memory table before expired windows are
	// dropped.
	sweepThreshold = 1024
)

type fixedWindow struct {
	hits    int
	resetAt time.Time
}

// RateLimiter counts attempts per route and client IP in fixed windows.
// Counters live in process memory unless a Redis client is attached, in
// which case every API instance shares them. A limit of zero or less
// disables it.
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time
	redis  *redis.Client

	mu      sync.Mutex
	windows map[string]*fixedWindow
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:   limit,
		window:  window,
		now:     time.Now,
		windows: make(map[string]*fixedWindow),
	}
}

// WithRedis moves the counters into Redis.
func (rl *RateLimiter) WithRedis(client *redis.Client) *RateLimiter {
	rl.redis = client
	return rl
}

// Middleware answers 429 with a Retry-After header once a client exceeds
// the limit on the route.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rl.limit <= 0 {
			c.Next()
			return
		}

		key := c.FullPath() + "|" + c.ClientIP()
		allowed, retryAfter := rl.hit(c.Request.Context(), key)
		if !allowed {
			seconds := int(math.Ceil(retryAfter.Seconds()))
			c.Header("Retry-After", strconv.Itoa(max(seconds, 1)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.ErrorResponse{
				Error: "Too many requests. Please try again later.",
				Code:  string(domainerror.ErrCodeRateLimited),
			})
			return
		}
		c.Next()
	}
}

// hit records one attempt and reports whether it is within the limit and,
// if not, how long until the window resets.
func (rl *RateLimiter) hit(ctx context.Context, key string) (bool, time.Duration) {
	if rl.redis != nil {
		allowed, retryAfter, err := rl.hitRedis(ctx, key)
		if err == nil {
			return allowed, retryAfter
		}
		slog.Warn("Rate limiter falling back to memory", "error", err)
	}
	return rl.hitMemory(key)
}

func (rl *RateLimiter) hitRedis(ctx context.Context, key string) (bool, time.Duration, error) {
	redisKey := rateLimitKeyPrefix + key

	var (
		incr *redis.IntCmd
		ttl  *redis.DurationCmd
	)
	if _, err := rl.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, redisKey)
		ttl = pipe.PTTL(ctx, redisKey)
		return nil
	}); err != nil {
		return false, 0, err
	}

	remaining := ttl.Val()
	if remaining < 0 {
		// First hit of the window: the key has no expiry yet.
		if err := rl.redis.PExpire(ctx, redisKey, rl.window).Err(); err != nil {
			return false, 0, err
		}
		remaining = rl.window
	}
	return incr.Val() <= int64(rl.limit), remaining, nil
}

func (rl *RateLimiter) hitMemory(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if len(rl.windows) >= sweepThreshold {
		for k, w := range rl.windows {
			if !now.Before(w.resetAt) {
				delete(rl.windows, k)
			}
		}
	}

	w, ok := rl.windows[key]
	if !ok || !now.Before(w.resetAt) {
		w = &fixedWindow{resetAt: now.Add(rl.window)}
		rl.windows[key] = w
	}
	w.hits++
	return w.hits <= rl.limit, w.resetAt.Sub(now)
}
