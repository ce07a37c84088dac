package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gamegestor/catalog-api/internal/core/auth"
)

// identityKey is the echo context key holding the verified *auth.Claims.
const identityKey = "identity"

// Auth verifies the session token and injects the identity claim into the
// request context. A "Bearer " prefix on the header is stripped when present
// and tolerated when absent. All verification failures collapse to one 401;
// the specific kind (malformed, bad signature, expired) is only logged.
func Auth(tokens *auth.TokenService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
			claims, err := tokens.Verify(raw)
			if err != nil {
				log.Debug().Err(err).Str("path", c.Path()).Msg("token rejected")
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set(identityKey, claims)
			return next(c)
		}
	}
}

// Identity returns the claim set by Auth, if any.
func Identity(c echo.Context) (*auth.Claims, bool) {
	claims, ok := c.Get(identityKey).(*auth.Claims)
	return claims, ok
}
