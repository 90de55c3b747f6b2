package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"courtbooking/internal/pkg/response"
)

// AdminTokenAuth protects the admin API with a static bearer token. An empty
// token disables the admin API entirely.
func AdminTokenAuth(token string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token == "" {
			logAuthFailure(log, c, http.StatusForbidden, "token_not_configured")
			response.Error(c, http.StatusForbidden, "AUTH_DISABLED", "admin API is disabled")
			c.Abort()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logAuthFailure(log, c, http.StatusUnauthorized, "missing_auth")
			response.Error(c, http.StatusUnauthorized, "AUTH_MISSING", "Authorization header is required")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logAuthFailure(log, c, http.StatusUnauthorized, "invalid_auth_format")
			response.Error(c, http.StatusUnauthorized, "AUTH_INVALID", "Authorization header must be 'Bearer <token>'")
			c.Abort()
			return
		}

		if subtle.ConstantTimeCompare([]byte(parts[1]), []byte(token)) != 1 {
			logAuthFailure(log, c, http.StatusForbidden, "invalid_token")
			response.Error(c, http.StatusForbidden, "AUTH_INVALID", "invalid admin token")
			c.Abort()
			return
		}

		c.Next()
	}
}

func logAuthFailure(log *zap.Logger, c *gin.Context, status int, reason string) {
	log.Warn("admin auth failed",
		zap.Int("status", status),
		zap.String("reason", reason),
		zap.String("client_ip", c.ClientIP()),
		zap.String("request_id", requestID(c)),
	)
}
