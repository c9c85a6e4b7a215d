package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bimcat/catalog-api/internal/service"
)

// unmatchedRoute is the path label for requests that hit no registered
// route. Folding them into one label keeps scanners probing random URLs
// from growing the metric label space unbounded.
const unmatchedRoute = "unmatched"

// Metrics times each request for Prometheus, labeled by the route pattern
// rather than the concrete URL. Scrapes of /metrics itself are not counted.
func Metrics(metricsSvc *service.MetricsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if metricsSvc == nil || c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
