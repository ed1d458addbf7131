package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/abdulazeezumaruba/az-media-transcripts/config"
	"github.com/abdulazeezumaruba/az-media-transcripts/handlers/api"
	"github.com/abdulazeezumaruba/az-media-transcripts/logger"
	"github.com/abdulazeezumaruba/az-media-transcripts/services/transcripts"
	"github.com/abdulazeezumaruba/az-media-transcripts/youtube"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.LogDir, cfg.Debug)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Initialize transcript provider
	provider := youtube.NewClient(youtube.Config{
		HTTPTimeout: cfg.Transcripts.HTTPTimeout,
		Logger:      appLogger,
	})

	// Initialize transcript service
	service := transcripts.NewService(provider, transcripts.Config{
		Languages:    cfg.Transcripts.Languages,
		FetchTimeout: cfg.Transcripts.FetchTimeout,
		Logger:       appLogger,
	})

	// Initialize API server
	server := api.NewServer(cfg,
		api.WithService(service),
		api.WithLogger(appLogger),
	)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Fatal("Server shutdown failed")
	}

	appLogger.Info("Server stopped")
}
