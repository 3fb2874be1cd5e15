package middleware

import (
	"log/slog"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// quietPrefixes are request paths logged at debug level when they succeed.
var quietPrefixes = []string{"/static/", "/health"}

// Logger returns a gin middleware that logs one line per request.
//
// Level follows the status: 5xx Error, 4xx Warn, otherwise Info. Successful
// requests for static assets and health probes drop to Debug. Page
// navigations made by htmx are tagged with htmx=true so in-page navigation
// can be told apart from full loads.
//
// Context-aware logging lets the logger's context middleware attach the
// request_id set by RequestID.
func Logger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		path := c.Request.URL.Path

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.String("route", c.FullPath()),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("client_ip", c.ClientIP()),
		}
		if IsHTMX(c) {
			attrs = append(attrs, slog.Bool("htmx", true))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		case isQuiet(path):
			level = slog.LevelDebug
		}
		logger.LogAttrs(c.Request.Context(), level, "request", attrs...)
	}
}

func isQuiet(path string) bool {
	for _, p := range quietPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}
