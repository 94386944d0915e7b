package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/contra-ai/contra/backend/internal/config"
	"github.com/contra-ai/contra/backend/internal/handler"
	"github.com/contra-ai/contra/backend/internal/logging"
	"github.com/contra-ai/contra/backend/internal/model/persona"
	"github.com/contra-ai/contra/backend/internal/service/chat"
	"github.com/contra-ai/contra/backend/internal/service/responder"
	"github.com/contra-ai/contra/backend/internal/storage/interactionlog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.Logging)

	if envErr != nil {
		log.Warn().Err(envErr).Msg("failed to load .env file, continuing with system environment variables only")
	}

	personas, err := persona.Load(cfg.Personas.CatalogPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load persona catalog")
	}
	personaStore := persona.NewMemoryStore(personas)
	log.Info().Int("count", len(personas)).Msg("persona catalog loaded")

	store, err := interactionlog.Open(ctx, cfg.Store)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.Store.Backend).Msg("failed to open interaction log")
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close interaction log")
		}
	}()
	log.Info().Str("backend", cfg.Store.Backend).Msg("interaction log ready")

	chatService := chat.NewService(responder.New(), store)
	router := handler.NewRouter(cfg.Server, personaStore, chatService)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	addr := serverCfg.Addr
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Info().Str("addr", addr).Msgf("%s listening", serverCfg.ServiceName)
	if err := runServer(ctx, srv); err != nil {
		log.Error().Err(err).Msg("server error")
		return
	}
	log.Info().Msg("server stopped")
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
