package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorLogger logs failed requests with the full error chain and recovers
// from panics.
func ErrorLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					append(requestFields(c, start),
						zap.Any("panic", recovered),
						zap.ByteString("stack", debug.Stack()),
					)...,
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"success": false,
					"error": gin.H{
						"code":    "INTERNAL_ERROR",
						"message": "internal server error",
					},
				})
				return
			}

			status := c.Writer.Status()
			if len(c.Errors) == 0 {
				if status >= http.StatusInternalServerError {
					log.Error("request failed", append(requestFields(c, start), zap.Int("status", status))...)
				}
				return
			}

			for _, err := range c.Errors {
				fields := append(requestFields(c, start),
					zap.Int("status", status),
					zap.String("type", fmt.Sprintf("%v", err.Type)),
					zap.Error(err.Err),
				)
				if status >= http.StatusInternalServerError {
					log.Error("request error", fields...)
				} else {
					log.Info("request rejected", fields...)
				}
			}
		}()

		c.Next()
	}
}

// AccessLog writes one line per request at debug level.
func AccessLog(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request", append(requestFields(c, start), zap.Int("status", c.Writer.Status()))...)
	}
}

func requestFields(c *gin.Context, start time.Time) []zap.Field {
	return []zap.Field{
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.String("query", c.Request.URL.RawQuery),
		zap.String("client_ip", c.ClientIP()),
		zap.String("request_id", requestID(c)),
		zap.Duration("latency", time.Since(start)),
	}
}
