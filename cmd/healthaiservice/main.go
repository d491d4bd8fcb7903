package main

import (
	"fmt"
	"net/http"
	"os"

	"healthai/internal/assistant"
	"healthai/internal/config"
	"healthai/internal/logger"
	"healthai/internal/mediator" // The internal package for this service

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// main is the entry point for the HealthAIService.
func main() {
	cfg, err := config.Load()
	if err != nil {
		// Missing credentials stop the service before any request is served.
		boot := logger.New("info", "console")
		boot.Fatal("invalid configuration", zap.Error(err))
	}

	log := logger.NewStructured(cfg.Logging.Level, cfg.Logging.Format)

	// Pick the assistant backend.
	client := newAssistantClient(cfg.Assistant)
	log.Info("assistant client configured", map[string]interface{}{
		"provider": cfg.Assistant.Provider,
		"timeout":  cfg.Assistant.Timeout.String(),
	})

	opts := []mediator.Option{mediator.WithAnalyticsWindow(cfg.Mediator.AnalyticsWindow)}
	if cfg.Mediator.RejectEmptyText {
		opts = append(opts, mediator.WithValidator(mediator.RequireText))
	}

	// Inject the client into the service
	mediatorService := mediator.NewService(client, log, opts...)

	// Inject service into the handler
	mediatorHandler := mediator.NewHandler(mediatorService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{cfg.Server.AllowedOrigin},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		ExposedHeaders: []string{"X-Interaction-Id"},
		MaxAge:         300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("HealthAIService OK"))
	})

	r.Handle("/metrics", promhttp.Handler())

	// Register all the API routes from the handler ( /chat/*, /analytics/upload )
	mediatorHandler.RegisterRoutes(r)

	log.Info("HealthAIService starting", map[string]interface{}{"port": cfg.Server.Port})
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.Server.Port), r); err != nil {
		log.WithError(err).Error("could not start server", nil)
		os.Exit(1)
	}
}

func newAssistantClient(cfg config.AssistantConfig) mediator.AssistantClient {
	switch cfg.Provider {
	case config.ProviderOpenAI:
		return assistant.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL, cfg.Timeout)
	case config.ProviderStub:
		return assistant.NewStubClient()
	default:
		w := cfg.Watson
		return assistant.NewWatsonClient(w.URL, w.APIKey, w.AssistantID, w.Version, cfg.Timeout)
	}
}
