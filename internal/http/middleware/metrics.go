package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"wishlist/internal/metrics"
)

// Metrics records request latency per route pattern. Unmatched routes are
// grouped under "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
