package middleware

import (
	"log/slog"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"registration/src/app/http/response"
)

// Recovery turns a panic into a 500 INTERNAL_ERROR response and logs it with
// its stack. Register it first so it wraps every other middleware.
func Recovery(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				requestID := GetRequestID(c)

				log.Error("panic recovered",
					"request_id", requestID,
					"error", rec,
					"path", c.Request.URL.Path,
					"method", c.Request.Method,
					"stack", string(debug.Stack()),
				)

				c.Abort()
				response.InternalError(c, requestID)
			}
		}()

		c.Next()
	}
}
