package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"youthy-chat/internal/api"
	"youthy-chat/internal/api/handlers"
	"youthy-chat/internal/repository"
	"youthy-chat/internal/service"
	"youthy-chat/pkg/cache"
	"youthy-chat/pkg/config"
	"youthy-chat/pkg/logger"
	"youthy-chat/pkg/postgres"

	"go.uber.org/zap"
)

// @title Youthy Chat API
// @version 1.0
// @description Youth policy chatbot: keyword and semantic policy retrieval with LLM answer synthesis
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@youthy.chat

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize global logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	appLogger := logger.Get()
	appLogger.Info("Starting Youthy Chat service")

	ctx := context.Background()

	// Database is an optional policy source: the service answers from
	// the seed dataset when Postgres is unreachable.
	var policySource service.PolicySource
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Warn("Database unavailable, continuing with seed policies", zap.Error(err))
		db = nil
	} else {
		defer db.Close()
		policySource = repository.NewPolicyRepository(db, appLogger)
	}

	// Region tables
	regions, err := service.LoadRegionTable(cfg.Chat.RegionsPath)
	if err != nil {
		appLogger.Fatal("Failed to load region tables", zap.Error(err))
	}

	// LLM provider is optional too: without it the synthesizer runs in
	// template mode.
	var completer service.Completer
	var embedder service.Embedder
	if cfg.GigaChat.APIKey != "" {
		llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
		if err != nil {
			appLogger.Warn("LLM provider unavailable, running in template mode", zap.Error(err))
		} else {
			defer llmService.Close()
			completer = llmService
			embedder = llmService
		}
	} else {
		appLogger.Info("No GigaChat API key configured, running in template mode")
	}

	// Core pipeline
	store := service.NewPolicyStore(appLogger)
	embeddings := service.NewEmbeddingService(&cfg.Chat, embedder, cache.SystemClock(), appLogger)
	classifier := service.NewIntentClassifier(regions)
	search := service.NewSearchService(&cfg.Chat, appLogger)
	chatService := service.NewChatService(&cfg.Chat, store, classifier, search, embeddings, completer, appLogger)

	loader := service.NewPolicyLoader(policySource, repository.SeedPolicies(), store, embeddings, appLogger)
	if _, _, err := loader.Load(ctx); err != nil {
		appLogger.Warn("Initial policy load finished with errors", zap.Error(err))
	}

	// Handlers
	chatHandler := handlers.NewChatHandler(chatService, loader, appLogger)
	policyHandler := handlers.NewPolicyHandler(store, appLogger)
	healthHandler := handlers.NewHealthHandler(db, store, completer != nil)

	// Setup router
	app := api.SetupRouter(chatHandler, policyHandler, healthHandler)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
