package http

import (
	"github.com/gin-gonic/gin"

	"task-assistant/internal/middleware"
)

// RegisterRoutes mounts the auth routes under rg.
// Sign-out and get-session read the token themselves so they never answer 401.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/sign-up/email", mw.RateLimit(), h.SignUp)
		a.POST("/sign-in/email", mw.RateLimit(), h.SignIn)
		a.POST("/sign-out", h.SignOut)
		a.GET("/get-session", h.GetSession)
	}
}
