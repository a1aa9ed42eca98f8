package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// slowRequestThreshold flags requests that took unusually long.
const slowRequestThreshold = time.Second

// RequestLogger logs one structured line per request, regardless of outcome.
// Error statuses and slow responses are raised to warnings so they stand out
// in the log stream. Logging never affects control flow.
func RequestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		entry := logger.WithFields(logrus.Fields{
			"request_id":     requestID,
			"method":         c.Request.Method,
			"path":           c.Request.URL.Path,
			"status":         status,
			"duration_ms":    duration.Milliseconds(),
			"client_ip":      c.ClientIP(),
			"user_agent":     c.Request.UserAgent(),
			"content_length": c.Request.ContentLength,
		})

		switch {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400 || duration > slowRequestThreshold:
			entry.Warn("Request flagged")
		default:
			entry.Info("Request completed")
		}
	}
}
