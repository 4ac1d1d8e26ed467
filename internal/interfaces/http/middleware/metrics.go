// internal/interfaces/http/middleware/metrics.go
package middleware

import (
	"time"

	"github.com/beammart/backend/internal/pkg/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records request counts and latencies into the metrics service
func Metrics(svc *metrics.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		svc.Record(c.Writer.Status(), time.Since(start))
	}
}
