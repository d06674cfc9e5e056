package main

import (
	"context"
	"log"

	"youthy-chat/internal/repository"
	"youthy-chat/pkg/config"
	"youthy-chat/pkg/logger"
	"youthy-chat/pkg/postgres"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	policyRepo := repository.NewPolicyRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	if err := policyRepo.EnsureSchema(ctx); err != nil {
		appLogger.Fatal("Failed to create policies table", zap.Error(err))
	}

	seeded := 0
	for _, p := range repository.SeedPolicies() {
		if err := policyRepo.Upsert(ctx, p); err != nil {
			appLogger.Error("Failed to seed policy",
				zap.String("id", p.ID),
				zap.Error(err),
			)
			continue
		}
		seeded++
	}

	appLogger.Info("Database seeding completed", zap.Int("policies", seeded))
}
