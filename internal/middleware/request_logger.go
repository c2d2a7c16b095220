package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiftline/shiftline/pkg/logger"
	"github.com/sirupsen/logrus"
)

// RequestLogger logs every request with its status and duration
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		entry := logger.WithFields(logrus.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
			"client":   c.ClientIP(),
		})

		if len(c.Errors) > 0 {
			entry.Error(c.Errors.String())
			return
		}

		entry.Info("request completed")
	}
}
