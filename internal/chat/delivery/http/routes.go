package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes mounts the chat routes under rg. Sending is rate limited per user.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	c := rg.Group("/chat", mw.Auth())
	{
		c.POST("", mw.RateLimit(), h.Send)
		c.GET("/sessions", h.ListSessions)
		c.GET("/sessions/:id/messages", h.ListMessages)
	}
}
