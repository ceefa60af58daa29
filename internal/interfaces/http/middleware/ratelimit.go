package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pos/backend/internal/infrastructure/logger"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimiter counts requests per key in fixed windows
type RateLimiter interface {
	// Allow consumes one request for key and reports what is left of the window
	Allow(ctx context.Context, key string) (allowed bool, remaining int, err error)
	// Limit returns the number of requests allowed per window
	Limit() int
}

// MemoryRateLimiter is a single-process RateLimiter
type MemoryRateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window
	limit   int
	window  time.Duration
	stop    chan struct{}
	once    sync.Once
}

type window struct {
	used    int
	started time.Time
}

// NewMemoryRateLimiter creates a limiter and starts evicting idle keys.
// Call Stop to end the eviction goroutine.
func NewMemoryRateLimiter(limit int, period time.Duration) *MemoryRateLimiter {
	rl := &MemoryRateLimiter{
		clients: make(map[string]*window),
		limit:   limit,
		window:  period,
		stop:    make(chan struct{}),
	}
	go rl.evict()
	return rl
}

func (rl *MemoryRateLimiter) evict() {
	ticker := time.NewTicker(rl.window * 2)
	defer ticker.Stop()
	for {
		select {
		case <-rl.stop:
			return
		case now := <-ticker.C:
			rl.mu.Lock()
			for key, w := range rl.clients {
				if now.Sub(w.started) > rl.window*2 {
					delete(rl.clients, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

// Stop ends the eviction goroutine
func (rl *MemoryRateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit implements RateLimiter
func (rl *MemoryRateLimiter) Limit() int {
	return rl.limit
}

// Allow implements RateLimiter
func (rl *MemoryRateLimiter) Allow(_ context.Context, key string) (bool, int, error) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.clients[key]
	if !ok || now.Sub(w.started) >= rl.window {
		w = &window{started: now}
		rl.clients[key] = w
	}
	if w.used >= rl.limit {
		return false, 0, nil
	}
	w.used++
	return true, rl.limit - w.used, nil
}

// RedisRateLimiter shares windows between server instances through Redis
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
}

const rateLimitKeyPrefix = "pos:ratelimit:"

// NewRedisRateLimiter creates a limiter on an existing Redis client
func NewRedisRateLimiter(client *redis.Client, limit int, period time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{client: client, limit: limit, window: period}
}

// Limit implements RateLimiter
func (rl *RedisRateLimiter) Limit() int {
	return rl.limit
}

// Allow implements RateLimiter. The window key expires with the window.
func (rl *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, int, error) {
	slot := time.Now().UnixNano() / int64(rl.window)
	redisKey := rateLimitKeyPrefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := rl.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.limit, fmt.Errorf("rate limit counter: %w", err)
	}

	used := int(incr.Val())
	if used > rl.limit {
		return false, 0, nil
	}
	return true, rl.limit - used, nil
}

// RateLimit limits requests per authenticated user, or per client IP for
// anonymous requests. Limiter failures let the request through.
func RateLimit(limiter RateLimiter, log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if userID := c.GetString(logger.GinUserIDKey); userID != "" {
			key = "user:" + userID
		}

		allowed, remaining, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warn("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(limiter.Limit()))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		if !allowed {
			abortWithError(c, http.StatusTooManyRequests, dto.ErrCodeRateLimited,
				"Too many requests. Please try again later.")
			return
		}
		c.Next()
	}
}
