package main

import (
	"camonk/internal/config"
	"camonk/pkg/redis"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	logger := config.NewLogger()

	fiberApp := config.NewFiber(logger, "CA Monk Portal")
	validator := config.NewValidator()

	options := []config.ServerOption{
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDefaultPort("3000"),
		config.WithMiddleware(),
		config.WithUtils(),
		config.WithTextGenerator(),
		config.WithBlogAPIClient(),
		config.WithQueryCache(),
	}
	if os.Getenv("LOCAL_STORE_DRIVER") == "redis" {
		options = append(options, config.WithRedisServer(redis.New()))
	}
	options = append(options, config.WithLocalStore())

	server, err := config.NewServer(options...)
	if err != nil {
		logger.Fatal(err)
	}

	if err := server.RegisterPortalHandler(); err != nil {
		logger.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Portal started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
