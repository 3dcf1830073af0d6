package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/dravidKumar007/hair-Cut-Model/internal/auth"
	"github.com/dravidKumar007/hair-Cut-Model/internal/domain"
	"github.com/dravidKumar007/hair-Cut-Model/internal/http/handlers"
	"github.com/dravidKumar007/hair-Cut-Model/internal/http/httpapi"
	"github.com/dravidKumar007/hair-Cut-Model/internal/infra"
	"github.com/dravidKumar007/hair-Cut-Model/internal/providers/genai"
	"github.com/dravidKumar007/hair-Cut-Model/internal/providers/relay"
	"github.com/dravidKumar007/hair-Cut-Model/internal/state"
	"github.com/dravidKumar007/hair-Cut-Model/internal/transform"
)

func main() {
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg)

	sessions := state.NewStore(cfg.SessionTTL, logger)
	sessions.StartSweeper()
	defer sessions.StopSweeper()

	var backend transform.Backend
	switch cfg.TransformBackend {
	case infra.BackendRelay:
		backend = relay.NewClient(relay.Options{
			BaseURL:   cfg.AuthBaseURL,
			PublicKey: cfg.AuthPublicKey,
			Function:  cfg.RelayFunction,
			Logger:    &logger,
		})
	default:
		backend = genai.NewClient(genai.Options{
			APIKey:  cfg.GeminiAPIKey,
			BaseURL: cfg.GeminiBaseURL,
			Model:   cfg.GeminiModel,
			Logger:  &logger,
		})
	}

	var authClient *auth.Client
	if cfg.AuthBaseURL != "" {
		authClient = auth.NewClient(auth.Options{
			BaseURL:   cfg.AuthBaseURL,
			PublicKey: cfg.AuthPublicKey,
			Logger:    &logger,
		})
	}

	app := &handlers.App{
		Config:   cfg,
		Logger:   logger,
		Sessions: sessions,
		Pipeline: transform.NewPipeline(backend, logger),
		Catalog:  domain.DefaultCatalog(),
		Auth:     authClient,
	}

	router := httpapi.NewRouter(app)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	if err := server.Shutdown(context.Background()); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
