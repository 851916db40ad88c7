package http

import (
	"log/slog"
	"strconv"
	"time"

	"marketplace/internal/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latencies per route.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			path := ctx.Path()
			if path == "" {
				path = ctx.Request().URL.Path
			}
			method := ctx.Request().Method
			status := strconv.Itoa(ctx.Response().Status)

			metrics.HTTPRequests.WithLabelValues(method, path, status).Inc()
			metrics.HTTPDuration.WithLabelValues(method, path, status).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// RequestLogger logs one line per request with method, path, status, and
// duration. Server errors are logged at error level.
func RequestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	logger = logger.With("component", "http")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			start := time.Now()
			err := next(ctx)

			req := ctx.Request()
			status := ctx.Response().Status

			attrs := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"duration", time.Since(start),
			}
			if status >= 500 {
				logger.ErrorContext(req.Context(), "Request failed", attrs...)
			} else {
				logger.InfoContext(req.Context(), "Request handled", attrs...)
			}

			return err
		}
	}
}
