package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"chat-api/internal/config"
	"chat-api/internal/infrastructure/logger"
	"chat-api/internal/infrastructure/metrics"
	"chat-api/internal/infrastructure/observability"
	"chat-api/internal/interfaces/httpserver"
)

type Application struct {
	httpServer *httpserver.HTTPServer
	config     *config.Config
	logger     zerolog.Logger
}

// Start runs the HTTP and metrics listeners until one fails or the
// process receives a termination signal.
func (application *Application) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return application.httpServer.Start(ctx)
	})
	eg.Go(func() error {
		application.logger.Info().Int("port", application.config.MetricsPort).Msg("metrics server listening")
		return metrics.Serve(application.config.MetricsPort)
	})

	return eg.Wait()
}

func main() {
	ctx := context.Background()

	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	log := logger.GetLogger()

	application, err := CreateApplication()
	if err != nil {
		log.Fatal().Err(err).Msg("create application")
	}

	otelShutdown, err := observability.Setup(ctx, application.config, application.logger)
	if err != nil {
		log.Error().Err(err).Msg("initialize observability")
	} else {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := otelShutdown(shutdownCtx); err != nil {
				log.Error().Err(err).Msg("shutdown telemetry")
			}
		}()
	}

	if err := application.Start(); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
