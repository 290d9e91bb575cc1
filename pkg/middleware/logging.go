package middleware

import (
	"time"

	"github.com/aziendachimica/website/backend/content-api/pkg/logger"
	"github.com/gin-gonic/gin"
)

// Logging writes one line per request after it completes.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		kv := []interface{}{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start).Round(time.Microsecond),
			"ip", c.ClientIP(),
			"request_id", GetRequestID(c),
		}
		switch {
		case status >= 500:
			logger.Errorw("request", kv...)
		case status >= 400:
			logger.Warnw("request", kv...)
		default:
			logger.Infow("request", kv...)
		}
	}
}
