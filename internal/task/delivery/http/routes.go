package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes mounts the task routes under rg. Every route requires a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.Auth())
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Create)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.PATCH("/:id/complete", h.Complete)
	}
}
