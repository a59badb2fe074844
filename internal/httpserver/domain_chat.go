package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"task-assistant/config"
	"task-assistant/internal/agent"
	"task-assistant/internal/agent/intent"
	"task-assistant/internal/agent/orchestrator"
	"task-assistant/internal/agent/tools"
	chatHTTP "task-assistant/internal/chat/delivery/http"
	"task-assistant/internal/chat/repository"
	chatMemory "task-assistant/internal/chat/repository/memory"
	chatPostgre "task-assistant/internal/chat/repository/postgre"
	chatUC "task-assistant/internal/chat/usecase"
	"task-assistant/internal/middleware"
	"task-assistant/internal/task"
)

// setupChatDomain wires the assistant tools to the task usecase and registers /api/chat.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup, taskUC task.UseCase, mw middleware.Middleware) {
	// 1. Repository
	var repo repository.Repository
	if srv.cfg.Storage.Driver == config.StoragePostgres {
		repo = chatPostgre.New(srv.postgresDB, srv.l)
	} else {
		repo = chatMemory.New()
	}

	// 2. Tools + responders
	registry := agent.NewToolRegistry()
	tools.Register(registry, taskUC)
	exec := agent.NewExecutor(registry, srv.l)

	fallback := intent.NewResponder(exec, srv.l)
	var primary agent.Responder
	if srv.llm != nil {
		primary = orchestrator.New(srv.llm, exec, srv.l, srv.cfg.LLM.Timezone)
		srv.l.Infof(ctx, "Chat assistant: LLM orchestrator with %d tool(s), intent parser as fallback", len(registry.List()))
	} else {
		srv.l.Warn(ctx, "Chat assistant: no LLM provider enabled, using the intent parser only")
	}

	// 3. UseCase
	uc := chatUC.New(srv.l, repo, primary, fallback, srv.publisher)

	// 4. HTTP Handler + routes: /api/chat
	h := chatHTTP.New(srv.l, uc)
	chatHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Chat domain registered")
}
