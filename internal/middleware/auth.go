package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"task-assistant/internal/model"
	"task-assistant/pkg/log"
	"task-assistant/pkg/response"
)

// TokenFromRequest reads the session token from the Authorization bearer header,
// falling back to the session cookie.
func TokenFromRequest(c *gin.Context, cookieName string) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			return strings.TrimSpace(parts[1])
		}
	}
	if cookieName != "" {
		if token, err := c.Cookie(cookieName); err == nil {
			return token
		}
	}
	return ""
}

// Auth rejects requests without a live session and stores the Scope in the request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token := TokenFromRequest(c, m.cookieName)
		if token == "" {
			response.Unauthorized(c)
			return
		}

		sc, err := m.sessions.ResolveSession(ctx, token)
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth ResolveSession: %v", err)
			response.Unauthorized(c)
			return
		}

		ctx = model.SetScopeToContext(ctx, sc)
		ctx = log.WithUserID(ctx, sc.UserID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
