package middleware

import (
	"strconv"

	"github.com/emre/classpulse/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics counts handled requests by method and status
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
