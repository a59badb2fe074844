package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"

	"task-assistant/config"
	"task-assistant/internal/auth"
	authHTTP "task-assistant/internal/auth/delivery/http"
	"task-assistant/internal/auth/repository"
	authMemory "task-assistant/internal/auth/repository/memory"
	authPostgre "task-assistant/internal/auth/repository/postgre"
	authUC "task-assistant/internal/auth/usecase"
	"task-assistant/internal/middleware"
	"task-assistant/pkg/encrypter"
	"task-assistant/pkg/scope"
)

// newAuthUseCase builds the auth domain up to its usecase.
// The middleware needs it before any route is registered.
func (srv *HTTPServer) newAuthUseCase() (auth.UseCase, error) {
	// 1. Repository
	var repo repository.Repository
	if srv.cfg.Storage.Driver == config.StoragePostgres {
		repo = authPostgre.New(srv.postgresDB, srv.l)
	} else {
		repo = authMemory.New()
	}

	// 2. Token manager + password hashing
	tokens, err := scope.New(srv.cfg.Auth.JWTSecret)
	if err != nil {
		return nil, fmt.Errorf("auth tokens: %w", err)
	}
	enc := encrypter.New(srv.cfg.Auth.BcryptCost)

	// 3. UseCase
	return authUC.New(srv.l, repo, tokens, enc, srv.cfg.Auth.SessionTTL), nil
}

// setupAuthDomain registers /api/auth/*.
func (srv *HTTPServer) setupAuthDomain(ctx context.Context, api *gin.RouterGroup, uc auth.UseCase, mw middleware.Middleware) {
	h := authHTTP.New(srv.l, uc, srv.cfg.Auth)
	authHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Auth domain registered (storage: %s)", srv.cfg.Storage.Driver)
}
