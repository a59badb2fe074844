package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"task-assistant/config"
	"task-assistant/pkg/events"
	"task-assistant/pkg/log"
)

// main runs the activity consumer: it attaches a durable JetStream consumer
// to the task and chat events published by the API and logs each one.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

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

	logger.Info(ctx, "Starting activity consumer...")

	if !cfg.NATS.Enabled {
		logger.Error(ctx, "nats.enabled is false; nothing to consume")
		return
	}

	bus, err := events.Connect(ctx, events.Config{
		URL:           cfg.NATS.URL,
		Stream:        cfg.NATS.Stream,
		SubjectPrefix: cfg.NATS.SubjectPrefix,
	}, logger)
	if err != nil {
		logger.Error(ctx, "Failed to connect to NATS: ", err)
		return
	}
	defer func() {
		if err := bus.Close(); err != nil {
			logger.Warnf(context.Background(), "Failed to drain NATS connection: %v", err)
		}
	}()

	stopConsume, err := bus.Subscribe(ctx, cfg.NATS.ConsumerName, logActivity(logger))
	if err != nil {
		logger.Error(ctx, "Failed to subscribe: ", err)
		return
	}
	defer stopConsume()

	logger.Infof(ctx, "Consumer %q running on stream %s. Waiting for shutdown signal...", cfg.NATS.ConsumerName, cfg.NATS.Stream)
	<-ctx.Done()
	logger.Info(context.Background(), "Consumer stopped gracefully")
}

// logActivity writes one structured line per event.
func logActivity(l log.Logger) events.Handler {
	return func(ctx context.Context, evt events.Event) error {
		ctx = log.WithUserID(ctx, evt.UserID)
		switch evt.Type {
		case events.ChatMessage:
			l.Infof(ctx, "activity %s session=%s tool=%s at=%s", evt.Type, evt.SessionID, evt.Tool, evt.OccurredAt.Format(time.RFC3339))
		default:
			l.Infof(ctx, "activity %s task=%s at=%s", evt.Type, evt.TaskID, evt.OccurredAt.Format(time.RFC3339))
		}
		return nil
	}
}
