package redis

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"social-im/pkg/response"

	"github.com/gin-gonic/gin"
)

const rateLimitPrefix = "ratelimit:"

// RateLimiter 基于Redis计数的固定窗口限流中间件，按客户端IP计数
// Redis不可用时放行
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if client == nil || limit <= 0 {
			c.Next()
			return
		}

		key := rateLimitKey(c.ClientIP(), window, time.Now())
		pipe := client.TxPipeline()
		incr := pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, window)
		if _, err := pipe.Exec(ctx); err != nil {
			c.Next()
			return
		}

		count := int(incr.Val())
		remaining := limit - count
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if count > limit {
			response.Error(c, http.StatusTooManyRequests, "请求过于频繁，请稍后再试")
			c.Abort()
			return
		}
		c.Next()
	}
}

// rateLimitKey 同一窗口内的请求落在同一个key上
func rateLimitKey(ip string, window time.Duration, now time.Time) string {
	bucket := now.Unix()
	if secs := int64(window / time.Second); secs > 0 {
		bucket /= secs
	}
	return fmt.Sprintf("%s%s%s:%d", KeyPrefix, rateLimitPrefix, ip, bucket)
}
