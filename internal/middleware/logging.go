package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestLogger returns a middleware that logs every HTTP request.
// It logs the method, route, status, authenticated user (empty
// pre-auth) and duration.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"user", GetEmail(c),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			if err != nil {
				slog.Error("request failed", append(attrs, "error", err)...)
			} else {
				slog.Info("request completed", attrs...)
			}

			return err
		}
	}
}
