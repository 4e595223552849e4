// Package middleware provides the request-level guards and
// instrumentation shared by all HTTP routes.
package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/billkeeper/internal/auth"
)

const (
	// EmailKey is the request-context key holding the authenticated
	// user's email claim.
	EmailKey = "userEmail"

	bearerPrefix = "Bearer "
)

// GetEmail extracts the authenticated email from the request context.
// Returns empty string if the request did not pass the auth gate.
func GetEmail(c echo.Context) string {
	email, _ := c.Get(EmailKey).(string)
	return email
}

// RequireAuth returns a middleware that guards protected routes.
//
// A missing Authorization header is 401; a present but invalid or
// expired bearer token is 403. On success the email claim is attached
// to the request context — no store lookup happens here, only
// signature and expiry are checked.
func RequireAuth(jwtManager *auth.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized access"})
			}

			token := strings.TrimPrefix(header, bearerPrefix)
			if token == header {
				// Not a bearer header at all.
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden access"})
			}

			claims, err := jwtManager.Validate(token)
			if err != nil {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "Forbidden access"})
			}

			c.Set(EmailKey, claims.Email)
			return next(c)
		}
	}
}
