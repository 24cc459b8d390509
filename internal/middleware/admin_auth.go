package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

type TokenValidator interface {
	ValidateToken(tokenString string) error
}

// AdminAuth guards the admin surface with a bearer token issued by the
// admin login endpoint.
func AdminAuth(validator TokenValidator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			if err := validator.ValidateToken(token); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			return next(c)
		}
	}
}
