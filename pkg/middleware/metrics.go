package middleware

import (
	"strconv"
	"time"

	"github.com/aziendachimica/website/backend/content-api/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latency per route template, so that
// /api/products/:slug is one series regardless of slug.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request.Method
		metrics.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
