package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"zero-actions/internal/capability"
	"zero-actions/internal/config"
	"zero-actions/internal/database"
	"zero-actions/internal/purchases"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Setup logger
	logger := cfg.SetupLogger()

	// The runner cannot do anything without the purchase table
	db, err := database.New(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("Database connection failed")
	}

	store := purchases.NewStore(db)
	if err := store.EnsureSchema(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("Failed to ensure purchases schema")
	}

	runner := purchases.NewRunner(
		store,
		capability.NewSimulatedCheckout(cfg.CheckoutFailureRate),
		capability.SystemClock{},
		logger,
		time.Duration(cfg.RunnerInterval)*time.Second,
		cfg.PurchaseMaxAttempts,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info().
		Int("interval_seconds", cfg.RunnerInterval).
		Int("max_attempts", cfg.PurchaseMaxAttempts).
		Msg("Purchase runner starting")

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("Purchase runner stopped")
	}

	logger.Info().Msg("Purchase runner shut down")
}
