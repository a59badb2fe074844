package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-assistant/config"
	"task-assistant/internal/middleware"
	"task-assistant/internal/task"
	taskHTTP "task-assistant/internal/task/delivery/http"
	"task-assistant/internal/task/repository"
	taskMemory "task-assistant/internal/task/repository/memory"
	taskPostgre "task-assistant/internal/task/repository/postgre"
	taskUC "task-assistant/internal/task/usecase"
)

// setupTaskDomain registers /api/tasks and returns the usecase for the assistant tools.
func (srv *HTTPServer) setupTaskDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) task.UseCase {
	// 1. Repository
	var repo repository.Repository
	if srv.cfg.Storage.Driver == config.StoragePostgres {
		repo = taskPostgre.New(srv.postgresDB, srv.l)
	} else {
		repo = taskMemory.New()
	}
	srv.readiness = append(srv.readiness, repo.Ping)

	// 2. UseCase
	uc := taskUC.New(srv.l, repo, srv.taskCache, srv.cfg.Cache.TTL, srv.publisher)

	// 3. HTTP Handler
	h := taskHTTP.New(srv.l, uc)

	// 4. Routes: /api/tasks
	taskHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Task domain registered (cache enabled: %t)", srv.cfg.Cache.Enabled)
	return uc
}
