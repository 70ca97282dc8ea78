package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/srikanthreddy78/SkillSwapApp/internal/config"
	"github.com/srikanthreddy78/SkillSwapApp/internal/infrastructure/container"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := container.SetupLogger(cfg.Server.Env)

	// Initialize dependency injection container
	app, err := container.NewContainer(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("error closing application", slog.Any("error", err))
		}
	}()

	// Consume the live location feed for the life of the process
	feedCtx, stopFeed := context.WithCancel(context.Background())
	defer stopFeed()
	go app.LocationHolder.Run(feedCtx)

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		if err := app.Server.Start(); err != nil {
			logger.Error("server error", slog.Any("error", err))
			quit <- syscall.SIGTERM
		}
	}()

	logger.Info("server started",
		slog.String("host", cfg.Server.Host),
		slog.Int("port", cfg.Server.Port))

	// Wait for interrupt signal
	<-quit

	// Graceful shutdown
	stopFeed()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("server exited properly")
}
