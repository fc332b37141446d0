package middleware

import (
	"fmt"
	"strconv"
	"time"

	"github.com/alshuail/authnotify/internal/pkg/constants"
	"github.com/alshuail/authnotify/internal/pkg/logger"
	"github.com/alshuail/authnotify/internal/utils"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
)

// RateLimiterConfig contains configuration for the rate limiter
type RateLimiterConfig struct {
	RedisClient *redis.Client
	Key         string        // Key prefix for Redis
	Limit       int           // Maximum number of requests
	Period      time.Duration // Time period for the limit
}

// incrWindow counts one hit and starts the window on the first one
var incrWindow = redis.NewScript(`
local count = redis.call("INCR", KEYS[1])
if count == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {count, redis.call("PTTL", KEYS[1])}
`)

// RateLimiterMiddleware creates a middleware for fixed-window rate limiting using
// Redis. The counter update is a single script, so concurrent requests never lose
// a hit. A Redis outage lets requests through.
func RateLimiterMiddleware(config RateLimiterConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identifier := c.RealIP()
			if userID, ok := c.Get("user_id").(string); ok && userID != "" {
				identifier = userID
			}

			key := fmt.Sprintf(constants.KeyRateLimit, config.Key, c.Path()+":"+identifier)

			res, err := incrWindow.Run(c.Request().Context(), config.RedisClient,
				[]string{key}, config.Period.Milliseconds()).Int64Slice()
			if err != nil {
				logger.WarnCtx(c.Request().Context(), "Rate limiter unavailable",
					logger.String("key", config.Key),
					logger.Err(err))
				return next(c)
			}

			count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
			remaining := config.Limit - count
			if remaining < 0 {
				remaining = 0
			}
			c.Response().Header().Set("X-RateLimit-Limit", strconv.Itoa(config.Limit))
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))

			if count > config.Limit {
				retryAfter := int((ttl + time.Second - 1) / time.Second)
				if retryAfter < 1 {
					retryAfter = 1
				}
				c.Response().Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(ttl).Unix(), 10))
				return utils.TooManyRequestsResponse(c, "Too many requests, please try again later", retryAfter)
			}

			return next(c)
		}
	}
}

// IPRateLimiter creates a simple IP-based rate limiter
func IPRateLimiter(limit int, period time.Duration, redisClient *redis.Client) echo.MiddlewareFunc {
	return RateLimiterMiddleware(RateLimiterConfig{
		RedisClient: redisClient,
		Key:         "ip",
		Limit:       limit,
		Period:      period,
	})
}
