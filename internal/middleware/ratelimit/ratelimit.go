package ratelimit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Config holds rate limiter settings.
type Config struct {
	Redis  *redis.Client
	Logger *zap.Logger
	// Limit is the number of requests allowed per Window per client.
	Limit  int
	Window time.Duration
}

// Middleware returns a fixed-window rate limiter keyed by client IP. Counters
// live in Redis so the limit holds across replicas. When Redis is unreachable
// the request is let through; availability wins over strictness here.
func Middleware(cfg Config) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.RealIP())
			ctx := c.Request().Context()

			count, err := cfg.Redis.Incr(ctx, key).Result()
			if err != nil {
				cfg.Logger.Warn("Rate limiter unavailable, allowing request",
					zap.String("key", key),
					zap.Error(err))
				return next(c)
			}

			if count == 1 {
				if err := cfg.Redis.Expire(ctx, key, cfg.Window).Err(); err != nil {
					cfg.Logger.Warn("Failed to set rate limit window",
						zap.String("key", key),
						zap.Error(err))
				}
			}

			if count > int64(cfg.Limit) {
				cfg.Logger.Warn("Rate limit exceeded",
					zap.String("ip", c.RealIP()),
					zap.String("path", c.Path()),
					zap.Int64("count", count))
				return c.JSON(http.StatusTooManyRequests, echo.Map{
					"error": "Too many requests, please retry later",
					"code":  "RATE_LIMITED",
				})
			}

			return next(c)
		}
	}
}
