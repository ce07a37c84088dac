package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireRole gates a route on an exact role match. It must be registered
// after Auth: a request that never went through authentication carries no
// claim and is rejected with 401, not 403.
func RequireRole(role string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := Identity(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if claims.Role != role {
				return echo.NewHTTPError(http.StatusForbidden, "access denied: requires "+role+" role")
			}
			return next(c)
		}
	}
}
