package middleware

import (
	"Faceoff/internal/api/dto"
	"Faceoff/internal/pkg/consts"
	"Faceoff/internal/pkg/metrics"
	"Faceoff/internal/pkg/ratelimit"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware 投票入口的进程内限流。
// key 由调用方指定（IP、caller id 等）；多实例部署下为每实例近似值。
func RateLimitMiddleware(limiter ratelimit.Limiter, keyFn func(c *gin.Context) string) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now()
		result := limiter.Allow(keyFn(c), now)

		c.Header(consts.HeaderRateLimitLimit, strconv.Itoa(result.Limit))
		c.Header(consts.HeaderRateLimitRemaining, strconv.Itoa(result.Remaining))
		c.Header(consts.HeaderRateLimitReset, strconv.FormatInt(result.ResetAt.Unix(), 10))

		if !result.Allowed {
			metrics.VoteErrors.WithLabelValues("rate_limited").Inc()
			c.Header(consts.HeaderRetryAfter, strconv.Itoa(result.RetryAfter(now)))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.VoteErrorDTO{
				Error:   "Too many requests",
				Message: "Rate limit exceeded, slow down",
			})
			return
		}

		c.Next()
	}
}

// KeyByCallerOrIP 已识别身份按 caller 限流，匿名流量退回按源 IP 限流
func KeyByCallerOrIP(c *gin.Context) string {
	callerID := CallerID(c)
	if !IsAnonymous(callerID) {
		return callerID
	}
	return c.ClientIP()
}
