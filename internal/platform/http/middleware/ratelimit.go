package middleware

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// RateLimit はクライアントIPごとにリクエスト数を制限するミドルウェアを返します。
// 上限に達したリクエストは429で打ち切ります。ストアの障害時は制限せずに通します。
func RateLimit(l *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		lc, err := l.Get(c.Request.Context(), ip)
		if err != nil {
			LoggerFrom(c).Error("rate limit store unavailable", slog.String("ip", ip), slog.String("error", err.Error()))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(lc.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(lc.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(lc.Reset, 10))

		if lc.Reached {
			retry := time.Until(time.Unix(lc.Reset, 0))
			if retry < 0 {
				retry = 0
			}
			c.Header("Retry-After", strconv.FormatInt(int64(retry.Seconds()), 10))
			LoggerFrom(c).Warn("rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", lc.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
