package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gamegestor/catalog-api/internal/api/metrics"
)

// HitCounter counts requests per caller within the current window.
type HitCounter interface {
	Hit(ctx context.Context, key string) (int64, error)
}

// RateLimit throttles by client IP in fixed windows. When the counter backend
// is unavailable the request is allowed through: availability wins over
// strictness for a public endpoint, and the failure is logged.
func RateLimit(store HitCounter, max int, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			count, err := store.Hit(c.Request().Context(), c.RealIP())
			if err != nil {
				log.Warn().Err(err).Msg("rate limit check failed, allowing request")
				return next(c)
			}
			if count > int64(max) {
				metrics.RateLimitedTotal.Inc()
				return echo.NewHTTPError(http.StatusTooManyRequests, "too many requests, please try again later")
			}
			return next(c)
		}
	}
}
