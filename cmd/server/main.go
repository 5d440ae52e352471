package main

import (
	"context"
	"strings"
	"time"

	"zero-actions/docs"
	"zero-actions/internal/actions"
	"zero-actions/internal/capability"
	"zero-actions/internal/config"
	"zero-actions/internal/database"
	"zero-actions/internal/dedup"
	"zero-actions/internal/purchases"
	"zero-actions/internal/reminders"
	"zero-actions/internal/server"
)

// @title zero-actions API
// @version 1.0
// @description Server-directed email actions: card ingest, action preview and execution, scheduled purchases.
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// Swagger reports the address clients actually reach
	if host := strings.TrimPrefix(strings.TrimPrefix(cfg.PublicBaseURL, "https://"), "http://"); host != "" {
		docs.SwaggerInfo.Host = strings.TrimSuffix(host, "/")
	}

	// Initialize database connection. The API runs without one; the
	// purchase and reminder arms degrade instead
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Warn().Err(err).Msg("Database connection failed")
		logger.Info().Msg("Starting server without database connection")
	} else {
		logger.Info().Str("driver", database.Driver(cfg.DatabaseURL)).Msg("Database connection established successfully")
	}

	deps := actions.Deps{
		Mailer: capability.NewSendGridMailer(cfg.SendGridAPIKey, cfg.OutboundFrom),
		Assist: capability.NewAssist(cfg.OpenAIKey, cfg.OpenAITimeout),
		Clock:  capability.SystemClock{},
		Logger: logger,
	}

	var svc *purchases.Service
	if db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		store := purchases.NewStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			logger.Warn().Err(err).Msg("Failed to ensure purchases schema")
		}
		reminderStore := reminders.NewStore(db)
		if err := reminderStore.EnsureSchema(ctx); err != nil {
			logger.Warn().Err(err).Msg("Failed to ensure reminders schema")
		}

		svc = purchases.NewService(store, deps.Clock, logger)
		deps.Purchases = svc
		deps.Reminders = reminderStore
	}

	// Request dedup: Redis when configured, in-process otherwise
	var dedupStore dedup.Store = dedup.NewMemory()
	dedupArm := "memory"
	if cfg.RedisAddr != "" {
		redisStore, err := dedup.NewRedis(cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			logger.Warn().Err(err).Msg("Redis connection failed, using in-memory dedup")
		} else {
			defer redisStore.Close()
			dedupStore = redisStore
			dedupArm = "redis"
		}
	}

	registry := actions.NewRegistry(deps, dedupStore)

	mailArm := "none"
	if deps.Mailer.Available() {
		mailArm = "sendgrid"
	}

	// Create and initialize server
	srv := server.New(cfg, server.Deps{
		DB:        db,
		Registry:  registry,
		Purchases: svc,
		Assist:    deps.Assist,
		Capabilities: map[string]string{
			"mail":   mailArm,
			"assist": deps.Assist.Provider(),
			"dedup":  dedupArm,
		},
	}, logger)
	srv.Initialize()

	// Start server
	if err := srv.Start(); err != nil {
		logger.Fatal().Err(err).Msg("Server failed to start")
	}
}
