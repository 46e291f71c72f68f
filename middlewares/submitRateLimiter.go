package middlewares

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const submitWindow = 24 * time.Hour

// LimitExceededHandler answers a request over the limit. retryAfter is zero
// when the remaining window is unknown. It must abort the context.
type LimitExceededHandler func(c *gin.Context, retryAfter time.Duration)

// JSONLimitExceeded replies 429 with the seconds left in the window.
func JSONLimitExceeded(c *gin.Context, retryAfter time.Duration) {
	body := gin.H{"error": "rate limit exceeded"}
	if retryAfter > 0 {
		body["retry_after"] = retryAfter.Seconds()
	}
	c.AbortWithStatusJSON(http.StatusTooManyRequests, body)
}

// SubmitRateLimiter caps complaint submissions per client IP per day using a
// Redis counter. A nil client or non-positive limit disables it; a nil
// onLimited falls back to JSONLimitExceeded.
func SubmitRateLimiter(client *redis.Client, queuePrefix string, limit int, onLimited LimitExceededHandler) gin.HandlerFunc {
	if onLimited == nil {
		onLimited = JSONLimitExceeded
	}

	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		// Create individual key for each client
		clientKey := queuePrefix + ":" + c.ClientIP()

		count, err := client.Incr(ctx, clientKey).Result()
		if err != nil {
			slog.Error("rate limiter increment failed", "key", clientKey, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "redis error incrementing count"})
			return
		}

		// Set TTL only for the first increment
		if count == 1 {
			if err := client.Expire(ctx, clientKey, submitWindow).Err(); err != nil {
				slog.Error("rate limiter expire failed", "key", clientKey, "error", err)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "redis error setting TTL"})
				return
			}
		}

		if count > int64(limit) {
			retryAfter, err := client.TTL(ctx, clientKey).Result()
			if err != nil {
				slog.Warn("rate limiter TTL lookup failed", "key", clientKey, "error", err)
				retryAfter = 0
			}
			// -1 (no expiry) and -2 (missing key) carry no usable window
			if retryAfter < 0 {
				retryAfter = 0
			}
			onLimited(c, retryAfter)
			return
		}

		c.Next()
	}
}
