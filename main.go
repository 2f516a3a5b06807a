package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"

	"jobs-service/bootstrap"
	"jobs-service/config"
	"jobs-service/db"
	"jobs-service/events"
	"jobs-service/handlers"
	"jobs-service/logging"
	"jobs-service/service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	logger := logging.New().Level(cfg.LogLevel).Pretty(cfg.LogPretty).Make()
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := db.Connect(ctx, cfg.AtlasURI, cfg.DatabaseName, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	publisher, err := events.Connect(cfg.NatsURL, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to NATS")
	}

	clients := service.NewClientService(store)
	jobs := service.NewJobService(store, publisher, logger)
	sections := service.NewSectionService(store)
	catalog := service.NewCatalogService(store)
	users := service.NewUserService(store)

	if err := bootstrap.Run(ctx, cfg, catalog, users, logger); err != nil {
		logger.Error().Err(err).Msg("bootstrap failed")
	}

	router := handlers.NewRouter(logger,
		handlers.NewClientHandler(clients),
		handlers.NewJobHandler(jobs),
		handlers.NewSectionHandler(sections),
		handlers.NewServiceHandler(catalog),
		handlers.NewUserHandler(users),
		handlers.NewHealthHandler(store),
	)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", handlers.RequestIDHeader},
		ExposedHeaders: []string{handlers.RequestIDHeader},
	})

	handler := gorillaHandlers.RecoveryHandler(gorillaHandlers.PrintRecoveryStack(true))(router)
	handler = gorillaHandlers.CombinedLoggingHandler(os.Stdout, handler)

	server := &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.ServerPort),
		Handler:      corsHandler.Handler(handler),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.ServerPort).Msg("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("could not gracefully shut down the server")
	}
	publisher.Close()
	if err := store.Disconnect(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("could not disconnect from MongoDB")
	}
	logger.Info().Msg("server stopped gracefully")
}
