package httpserver

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	pkgErrors "task-assistant/pkg/errors"
	"task-assistant/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Task assistant API v1"
	HealthVersion = "1.0.0"
	ServiceName   = "task-assistant"

	readyTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck reports ready only when every storage backend answers a ping.
// @Summary Readiness Check
// @Description Check if the API and its storage are ready to serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "Storage unreachable"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyTimeout)
	defer cancel()

	for _, ping := range srv.readiness {
		if err := ping(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: storage ping failed: %v", err)
			response.Error(c, pkgErrors.ErrServiceUnavailable)
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"storage": srv.cfg.Storage.Driver,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
