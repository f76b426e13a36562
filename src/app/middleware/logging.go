package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"registration/src/core/validation"
	"registration/src/infra/logger"
)

// Logging emits one structured line per request. Bodies are not logged:
// registration payloads carry personal data.
func Logging(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency", time.Since(start),
		}
		if err := c.Errors.Last(); err != nil {
			if code, ok := validation.CodeOf(err.Err); ok {
				attrs = append(attrs, "code", code)
			} else {
				attrs = append(attrs, "error", err.Err)
			}
		}

		logger.WithRequestID(log, GetRequestID(c)).Log(c.Request.Context(), levelFor(status), "http request", attrs...)
	}
}

func levelFor(status int) slog.Level {
	switch {
	case status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}
