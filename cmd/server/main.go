package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"tribalbridge/backend/internal/catalog"
	"tribalbridge/backend/internal/config"
	"tribalbridge/backend/internal/db"
	"tribalbridge/backend/internal/dictionary"
	"tribalbridge/backend/internal/handler"
	transport "tribalbridge/backend/internal/http"
	"tribalbridge/backend/internal/logger"
	"tribalbridge/backend/internal/network"
	"tribalbridge/backend/internal/provider"
	"tribalbridge/backend/internal/repository"
	"tribalbridge/backend/internal/service"
	"tribalbridge/backend/internal/snowflake"
)

// @title TribalBridge API
// @version 2.1.0
// @description Translation platform for tribal and endangered languages.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	logger.Init(logger.ParseLevel(cfg.LogLevel))
	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init snowflake: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	languages := catalog.New()
	engine := dictionary.NewEngine(dictionary.DefaultTable(), languages)

	translationRepo := repository.NewTranslationRepository(dbConn)
	userRepo := repository.NewUserRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)

	clients := network.NewClientFactory(network.NewStaticProxyProvider(cfg.ProxyURL))

	// Fallback order: local model first, then the cloud providers, then
	// machine translation. The dictionary engine is the final fallback
	// inside the translation service.
	adapters := []provider.Adapter{
		provider.NewOllamaAdapter(cfg.OllamaURL, cfg.OllamaModel, clients),
		provider.NewOpenAIAdapter(cfg.OpenAIKey, cfg.OpenAIModel),
		provider.NewAnthropicAdapter(cfg.AnthropicKey, cfg.AnthropicModel),
		provider.NewGoogleTranslateAdapter(cfg.GoogleKey, clients),
	}
	limiter := provider.NewRateLimiter(provider.DefaultRateLimit)
	if setting, err := settingsRepo.Get(context.Background(), "provider.rate_limit_qps"); err == nil && setting != nil {
		if qps, err := strconv.Atoi(setting.Value); err == nil {
			limiter.SetLimit(qps)
		}
	}

	translationService := service.NewTranslationService(translationRepo, languages, engine, adapters, limiter)
	languageService := service.NewLanguageService(languages)
	analyticsService := service.NewAnalyticsService(translationRepo, userRepo, languages)
	authService := service.NewAuthService(userRepo, settingsRepo)

	router := transport.NewRouter(
		handler.NewAuthHandler(authService),
		handler.NewTranslationHandler(translationService),
		handler.NewLanguageHandler(languageService),
		handler.NewAnalyticsHandler(analyticsService),
		authService,
	)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutting down", "module", "main", "action", "shutdown", "resource", "server", "result", "ok")

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := router.Shutdown(ctx); err != nil {
			log.Fatalf("shutdown: %v", err)
		}
	}()

	logger.Info("server starting", "module", "main", "action", "start", "resource", "server", "result", "ok", "addr", cfg.Addr)
	if err := router.Start(cfg.Addr); err != nil {
		logger.Error("server stopped", "module", "main", "action", "start", "resource", "server", "result", "error", "error", err)
	}
}
