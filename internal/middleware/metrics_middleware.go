package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/varunm/batchswap/internal/pkg/metrics"
)

// Metrics records request count and latency per route. Unmatched routes are
// collapsed under a single label to keep cardinality bounded.
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.ObserveRequest(c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
