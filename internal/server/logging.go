package server

import (
	"time"

	"github.com/BryanJericho/courtly-web-sub000/internal/logger"

	"github.com/gin-gonic/gin"
)

// RequestLoggingMiddleware logs every HTTP request with latency and status.
func RequestLoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		if raw != "" {
			path = path + "?" + raw
		}

		logger.Infof("%s %s %d %dms ip=%s",
			c.Request.Method,
			path,
			status,
			latency.Milliseconds(),
			c.ClientIP(),
		)
	}
}
