package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"task-assistant/internal/auth"
	"task-assistant/internal/middleware"
)

func (srv *HTTPServer) mapHandlers() error {
	ctx := context.Background()

	// Auth comes first: the middleware resolves sessions through it.
	authUC, err := srv.newAuthUseCase()
	if err != nil {
		return err
	}
	mw := middleware.New(srv.l, authUC, srv.cfg)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	srv.registerDomainRoutes(ctx, authUC, mw)
	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLogger())
	srv.gin.Use(mw.CORS())

	srv.l.Infof(context.Background(), "CORS mode: %s, allowed origins: %v", srv.environment, srv.cfg.CORS.AllowedOrigins)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api.
func (srv *HTTPServer) registerDomainRoutes(ctx context.Context, authUC auth.UseCase, mw middleware.Middleware) {
	api := srv.gin.Group("/api")

	srv.setupAuthDomain(ctx, api, authUC, mw)

	taskUC := srv.setupTaskDomain(ctx, api, mw)
	srv.setupChatDomain(ctx, api, taskUC, mw)
}
