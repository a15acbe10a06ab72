package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/thumbgate/internal/infrastructure/config"
	"github.com/marcos-nsantos/thumbgate/internal/pkg/httputil"
)

// RateLimiter is a per-client sliding window limiter backed by a redis
// sorted set. Redis errors let the request through.
type RateLimiter struct {
	client     *redis.Client
	limit      int
	windowSize time.Duration
	keyPrefix  string
	logger     *zap.Logger
}

func NewRateLimiter(client *redis.Client, cfg config.RateLimitConfig, keyPrefix string, logger *zap.Logger) *RateLimiter {
	return &RateLimiter{
		client:     client,
		limit:      cfg.RequestsPerMin + cfg.BurstSize,
		windowSize: time.Minute,
		keyPrefix:  keyPrefix,
		logger:     logger,
	}
}

func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := fmt.Sprintf("ratelimit:%s:%s", rl.keyPrefix, c.ClientIP())

		allowed, remaining, err := rl.isAllowed(ctx, key)
		if err != nil {
			rl.logger.Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if !allowed {
			c.Header("Retry-After", strconv.Itoa(int(rl.windowSize.Seconds())))
			httputil.ErrorWithCode(c, http.StatusTooManyRequests, "RATE_LIMITED", "too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}

func (rl *RateLimiter) isAllowed(ctx context.Context, key string) (bool, int, error) {
	now := time.Now()
	windowStart := now.Add(-rl.windowSize).UnixNano()

	pipe := rl.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))
	pipe.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: now.UnixNano(),
	})
	countCmd := pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, rl.windowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return true, rl.limit, err
	}

	count := int(countCmd.Val())
	remaining := max(rl.limit-count, 0)

	return count <= rl.limit, remaining, nil
}
