package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"task-assistant/config"
	"task-assistant/config/postgre"
	_ "task-assistant/docs" // Swagger docs
	"task-assistant/internal/httpserver"
	"task-assistant/internal/model"
	"task-assistant/pkg/cache"
	"task-assistant/pkg/events"
	"task-assistant/pkg/llmprovider"
	"task-assistant/pkg/log"
)

// @title       Task Assistant API
// @description Personal task manager with a natural-language chat assistant.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.FilePath,
		MaxSizeMB:    cfg.Logger.MaxSizeMB,
		MaxAgeDays:   cfg.Logger.MaxAgeDays,
		MaxBackups:   cfg.Logger.MaxBackups,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Assistant API...")
	logger.Infof(ctx, "Environment: %s, storage: %s", cfg.Environment.Name, cfg.Storage.Driver)

	// 3. Storage
	var postgresDB *pgxpool.Pool
	if cfg.Storage.Driver == config.StoragePostgres {
		postgresDB, err = postgre.Connect(ctx, cfg.Postgres)
		if err != nil {
			logger.Error(ctx, "Failed to connect to PostgreSQL: ", err)
			return
		}
		defer postgresDB.Close()

		if cfg.Postgres.AutoMigrate {
			if err := postgre.Migrate(ctx, cfg.Postgres.DSN); err != nil {
				logger.Error(ctx, "Failed to run migrations: ", err)
				return
			}
			logger.Info(ctx, "✅ Database migrations applied")
		}
	}

	// 4. Task list cache (optional)
	taskCache := cache.NewNop[[]model.Task]()
	if cfg.Cache.Enabled {
		c, cacheErr := cache.New[[]model.Task](cache.Config{
			NumCounters: cfg.Cache.NumCounters,
			MaxCost:     cfg.Cache.MaxCost,
		})
		if cacheErr != nil {
			logger.Warnf(ctx, "Task cache not available, continuing without it: %v", cacheErr)
		} else {
			taskCache = c
		}
	}
	defer taskCache.Close()

	// 5. Activity events (optional)
	publisher := events.NewNop()
	if cfg.NATS.Enabled {
		bus, busErr := events.Connect(ctx, events.Config{
			URL:           cfg.NATS.URL,
			Stream:        cfg.NATS.Stream,
			SubjectPrefix: cfg.NATS.SubjectPrefix,
		}, logger)
		if busErr != nil {
			logger.Warnf(ctx, "NATS not available, events disabled: %v", busErr)
		} else {
			publisher = bus
			logger.Info(ctx, "✅ NATS JetStream initialized")
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warnf(context.Background(), "Failed to close event publisher: %v", err)
		}
	}()

	// 6. LLM providers (optional)
	var llm llmprovider.Generator
	if cfg.LLM.HasEnabledProvider() {
		manager, llmErr := llmprovider.NewManagerFromConfig(ctx, &cfg.LLM, logger)
		switch {
		case errors.Is(llmErr, llmprovider.ErrNoProvidersConfigured):
			logger.Warn(ctx, "No LLM provider could be initialized, chat uses the intent parser")
		case llmErr != nil:
			logger.Warnf(ctx, "LLM providers not available, chat uses the intent parser: %v", llmErr)
		default:
			llm = manager
			logger.Infof(ctx, "✅ LLM manager initialized with %d provider(s)", len(manager.Providers()))
		}
	} else {
		logger.Info(ctx, "No LLM provider enabled, chat uses the intent parser")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Config:     cfg,
		PostgresDB: postgresDB,
		TaskCache:  taskCache,
		LLM:        llm,
		Publisher:  publisher,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}
