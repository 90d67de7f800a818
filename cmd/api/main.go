package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"fertilitynest/ai-engine/internal/ai"
	"fertilitynest/ai-engine/internal/config"
	"fertilitynest/ai-engine/internal/server"
)

func main() {
	cfg := config.Load()

	log, err := newLogger(cfg.AppEnv)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	provider, err := newProvider(cfg)
	if err != nil {
		log.Fatal("ai provider init failed", zap.Error(err))
	}

	gateway := ai.NewGateway(provider, log)
	app := server.New(cfg, gateway, log)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           app.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("listening",
			zap.String("addr", srv.Addr),
			zap.String("provider", cfg.AIProvider),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", zap.Error(err))
	}
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "production" {
		return zap.NewProductionConfig().Build()
	}
	return zap.NewDevelopmentConfig().Build()
}

func newProvider(cfg config.Config) (ai.Provider, error) {
	switch cfg.AIProvider {
	case config.ProviderGemini:
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.AITimeoutSeconds)*time.Second)
		defer cancel()
		return ai.NewGeminiProvider(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return ai.NewOpenAIProvider(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, cfg.AITimeoutSeconds), nil
	default:
		return &ai.MockProvider{}, nil
	}
}
