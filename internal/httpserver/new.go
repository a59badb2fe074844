package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/config"
	"task-assistant/internal/model"
	"task-assistant/pkg/cache"
	"task-assistant/pkg/events"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
)

const shutdownTimeout = 10 * time.Second

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	cfg         *config.Config

	// Storage: postgresDB is nil when storage.driver is memory.
	postgresDB *pgxpool.Pool
	taskCache  cache.Cache[[]model.Task]

	// Assistant: llm is nil when no provider is enabled.
	llm       llmprovider.Generator
	publisher events.Publisher

	// Filled by registerDomainRoutes; /ready calls each one.
	readiness []func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Config *config.Config

	PostgresDB *pgxpool.Pool
	TaskCache  cache.Cache[[]model.Task]
	LLM        llmprovider.Generator
	Publisher  events.Publisher
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Config == nil {
		return nil, errors.New("config is required")
	}
	gin.SetMode(cfg.Config.HTTPServer.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Config.HTTPServer.Port,
		mode:        cfg.Config.HTTPServer.Mode,
		environment: cfg.Config.Environment.Name,
		cfg:         cfg.Config,
		postgresDB:  cfg.PostgresDB,
		taskCache:   cfg.TaskCache,
		llm:         cfg.LLM,
		publisher:   cfg.Publisher,
	}
	if srv.taskCache == nil {
		srv.taskCache = cache.NewNop[[]model.Task]()
	}
	if srv.publisher == nil {
		srv.publisher = events.NewNop()
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}
	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.cfg.Storage.Driver == config.StoragePostgres && srv.postgresDB == nil {
		return errors.New("postgres pool is required for the postgres storage driver")
	}
	return nil
}

// Handler exposes the engine, mainly for tests.
func (srv *HTTPServer) Handler() http.Handler {
	return srv.gin
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (srv *HTTPServer) Run(ctx context.Context) error {
	httpSrv := &http.Server{
		Addr:              fmt.Sprintf(":%d", srv.port),
		Handler:           srv.gin,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		srv.l.Infof(ctx, "HTTP server listening on %s", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	srv.l.Info(context.Background(), "Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}
