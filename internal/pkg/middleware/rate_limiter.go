package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/piresc/evoting/internal/pkg/logger"
	"github.com/piresc/evoting/internal/utils"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // key prefix in Redis
	Limit       int           // maximum requests per period
	Period      time.Duration // fixed window length
}

// RateLimiterMiddleware limits requests per route and client using a fixed
// Redis window
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if adminID := AdminID(c); adminID != "" {
				identifier = adminID
			}

			key := fmt.Sprintf("%s:%s:%s", config.Key, c.Path(), identifier)
			ctx := c.Request().Context()

			count64, err := config.RedisClient.Incr(ctx, key).Result()
			if err == nil && count64 == 1 {
				err = config.RedisClient.Expire(ctx, key, config.Period).Err()
			}
			if err != nil {
				logger.Error("Rate limiter unavailable", logger.String("key", key), logger.Err(err))
				return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Rate limiter error")
			}

			count := int(count64)
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}

			h := c.Response().Header()
			h.Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			h.Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				reset, ttlErr := config.RedisClient.TTL(ctx, key).Result()
				if ttlErr != nil || reset < 0 {
					reset = config.Period
				}
				h.Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(reset).Unix(), 10))
				h.Set("Retry-After", strconv.FormatInt(int64(reset.Seconds()), 10))
				return utils.ErrorResponseHandler(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "rate:ip",
		Limit:       limit,
		Period:      period,
	})
}
