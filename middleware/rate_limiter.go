// api/middleware/rate_limiter.go

package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/folio/api/db"
	logger "github.com/dev-mohitbeniwal/folio/api/logging"
)

// RateLimiter limits requests per client IP using a Redis sliding
// window. When Redis is unavailable or errors, requests are allowed
// through: rate limiting degrades along with the cache.
func RateLimiter(cache *db.RedisCache, limit int, per time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cache.Available() {
			c.Next()
			return
		}

		key := c.ClientIP()
		allowed, err := cache.RateLimit(c, key, limit, per)
		if err != nil {
			logger.Warn("Rate limiting failed, allowing request", zap.Error(err), zap.String("ip", key))
			c.Next()
			return
		}

		// Set rate limit headers
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Duration", per.String())

		if !allowed {
			logger.Warn("Rate limit exceeded",
				zap.String("ip", key),
				zap.Int("limit", limit),
				zap.Duration("per", per))
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
