package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"task-assistant/internal/model"
	"task-assistant/pkg/log"
)

const headerRequestID = "X-Request-ID"

// RequestLogger tags the request context with a request id and logs one line per request.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Writer.Header().Set(headerRequestID, requestID)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), requestID))

		c.Next()

		ctx := c.Request.Context()
		userID := ""
		if sc, ok := model.GetScopeFromContext(ctx); ok {
			userID = sc.UserID
		}
		status := c.Writer.Status()
		latency := time.Since(start)

		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s %d %s user=%s errors=%s", c.Request.Method, c.FullPath(), status, latency, userID, c.Errors.String())
		case status >= 400:
			m.l.Warnf(ctx, "%s %s %d %s user=%s", c.Request.Method, c.FullPath(), status, latency, userID)
		default:
			m.l.Infof(ctx, "%s %s %d %s user=%s", c.Request.Method, c.FullPath(), status, latency, userID)
		}
	}
}
