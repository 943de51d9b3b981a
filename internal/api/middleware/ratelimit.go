package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Limiter is the throttling decision interface (Redis-backed in production).
type Limiter interface {
	Allow(ctx context.Context, scope, key string, limit int, window time.Duration) bool
}

// RateLimit throttles requests per client IP using a fixed window. Intended
// for the unauthenticated auth endpoints where credential stuffing is the
// concern; a limit of zero disables throttling.
func RateLimit(limiter Limiter, scope string, limit int, window time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !limiter.Allow(c.Request().Context(), scope, c.RealIP(), limit, window) {
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests")
			}
			return next(c)
		}
	}
}
