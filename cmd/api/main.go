// The api command runs the marketing-site backend: quote requests, the CBM
// calculator archive, contact forms, newsletter signups and the admin
// dashboard, served over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/gracelogistics/backend/internal/config"
	"github.com/gracelogistics/backend/internal/handler"
	"github.com/gracelogistics/backend/internal/logger"
	"github.com/gracelogistics/backend/internal/middleware"
	"github.com/gracelogistics/backend/internal/repository"
	"github.com/gracelogistics/backend/internal/router"
	"github.com/gracelogistics/backend/internal/server"
	"github.com/gracelogistics/backend/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Load logs the cause itself before returning.
		os.Exit(1)
	}

	// Bootstrap logger for the window before the real one exists.
	bootLog := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	loggerService := logger.NewLoggerService(cfg, &bootLog)
	log := logger.New(cfg, loggerService)

	srv, err := server.New(cfg, &log, loggerService)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize server")
	}

	// Index creation is best effort: when the store is down at boot the
	// service still starts, and Mongo applies these on first reconnect
	// attempt at the next boot.
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := srv.DB.EnsureIndexes(indexCtx); err != nil {
		log.Warn().Err(err).Msg("could not ensure indexes")
	}
	cancelIndex()

	middlewares := middleware.NewMiddlewares(srv)
	repos := repository.NewRepositories(srv)

	services, err := service.NewServices(srv, repos)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize services")
	}

	handlers := handler.NewHandlers(srv, services)

	e := router.New(srv, handlers, middlewares)
	srv.SetupHTTPServer(e)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
