package middleware

import (
	"strconv" // Status code formatting
	"time"    // Request timing

	"lunvee/internal/metrics" // Prometheus collectors

	"github.com/gin-gonic/gin" // Gin web framework
)

// MetricsMiddleware records request count and duration per route
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start timing
		c.Next()            // Run the handler chain

		path := c.FullPath() // Route template, e.g. /manager/events/:id
		if path == "" {
			path = "unmatched" // Requests that hit no route
		}
		metrics.ObserveHTTPRequest(c.Request.Method, path, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
