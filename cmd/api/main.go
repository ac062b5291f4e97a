package main

import (
	"camonk/internal/config"
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	logger := config.NewLogger()

	fiberApp := config.NewFiber(logger, "CA Monk Blog API")
	validator := config.NewValidator()

	server, err := config.NewServer(
		config.WithFiber(fiberApp),
		config.WithLogger(logger),
		config.WithValidator(validator),
		config.WithDefaultPort("3001"),
		config.WithDatabase(),
		config.WithMiddleware(),
		config.WithUtils(),
	)
	if err != nil {
		logger.Fatal(err)
	}

	if err := server.RegisterAPIHandler(); err != nil {
		logger.Fatal(err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Run(); err != nil {
			logger.Fatalf("Error starting server: %v", err)
		}
	}()

	logger.Info("Blog API started successfully")

	<-sigChan
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Error during shutdown: %v", err)
	}
}
