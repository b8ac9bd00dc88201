package middleware

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go-pestcontrol-web/internal/delivery/http/response"
	"go-pestcontrol-web/pkg/redis"

	"github.com/gin-gonic/gin"
)

// RateLimitConfig holds configuration for the contact endpoint limiter
type RateLimitConfig struct {
	// Requests per window per client IP
	Limit int
	// Time window duration
	Window time.Duration
	// Key prefix for Redis
	KeyPrefix string
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	mu      sync.Mutex
	count   int
	resetAt time.Time
}

var (
	rateLimitStore = sync.Map{}
	cleanupOnce    sync.Once
)

// Lua script for atomic increment with TTL on first set.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns the current count.
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// startCleanup runs a background goroutine to clean up expired entries
func startCleanup() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			rateLimitStore.Range(func(key, value interface{}) bool {
				entry := value.(*rateLimitEntry)
				entry.mu.Lock()
				if now.After(entry.resetAt) {
					rateLimitStore.Delete(key)
				}
				entry.mu.Unlock()
				return true
			})
		}
	}()
}

// RateLimit limits contact submissions per client IP: redis counter
// when available, in-memory fixed window otherwise. Fails open on
// redis errors; a lost submission hurts more than a duplicate.
func RateLimit(cfg RateLimitConfig) gin.HandlerFunc {
	if cfg.Limit <= 0 {
		cfg.Limit = 5
	}
	if cfg.Window <= 0 {
		cfg.Window = 5 * time.Minute
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:contact:"
	}
	cleanupOnce.Do(startCleanup)

	return func(c *gin.Context) {
		key := cfg.KeyPrefix + c.ClientIP()

		count, ok := redisCount(c.Request.Context(), key, cfg.Window)
		if !ok {
			count = memoryCount(key, cfg.Window)
		}

		remaining := cfg.Limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > cfg.Limit {
			c.Header("Retry-After", strconv.Itoa(int(cfg.Window.Seconds())))
			response.Error(c, 429, "Too many requests. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// redisCount increments the counter in redis. ok is false when redis
// is unavailable and the caller should fall back to memory.
func redisCount(ctx context.Context, key string, window time.Duration) (int, bool) {
	client := redis.Client()
	if client == nil {
		return 0, false
	}
	result, err := client.Eval(ctx, rateLimitLuaScript, []string{key}, int(window.Seconds())).Result()
	if err != nil {
		return 0, false
	}
	count, ok := result.(int64)
	if !ok {
		return 0, false
	}
	return int(count), true
}

func memoryCount(key string, window time.Duration) int {
	val, _ := rateLimitStore.LoadOrStore(key, &rateLimitEntry{resetAt: time.Now().Add(window)})
	entry := val.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()
	now := time.Now()
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(window)
	}
	entry.count++
	return entry.count
}
