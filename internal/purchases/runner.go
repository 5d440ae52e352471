package purchases

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"zero-actions/internal/capability"
	"zero-actions/internal/metrics"
	"zero-actions/internal/models"
)

const claimBatchSize = 20

// Runner executes due purchases on a fixed interval. Failed attempts go
// back to the scheduled state until maxAttempts is reached.
type Runner struct {
	store       *Store
	checkout    capability.Checkout
	clock       capability.Clock
	logger      zerolog.Logger
	interval    time.Duration
	maxAttempts int
}

// NewRunner creates a new purchase runner
func NewRunner(store *Store, checkout capability.Checkout, clock capability.Clock, logger zerolog.Logger, interval time.Duration, maxAttempts int) *Runner {
	if interval <= 0 {
		interval = time.Minute
	}
	if maxAttempts <= 0 {
		maxAttempts = 3
	}
	return &Runner{
		store:       store,
		checkout:    checkout,
		clock:       clock,
		logger:      logger,
		interval:    interval,
		maxAttempts: maxAttempts,
	}
}

// Run ticks until the context is cancelled. The first pass happens
// immediately so a restart picks up overdue purchases without waiting a
// full interval.
func (r *Runner) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.runOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.runOnce(ctx)
		}
	}
}

func (r *Runner) runOnce(ctx context.Context) {
	if _, err := r.RunOnce(ctx); err != nil {
		r.logger.Error().Err(err).Msg("Purchase run failed")
	}
}

// RunOnce claims and executes every due purchase, returning how many rows
// were processed.
func (r *Runner) RunOnce(ctx context.Context) (int, error) {
	due, err := r.store.DueForExecution(ctx, r.clock.Now().UTC(), claimBatchSize)
	if err != nil {
		return 0, err
	}

	processed := 0
	for i := range due {
		purchase := &due[i]

		claimed, err := r.store.MarkProcessing(ctx, purchase.ID, r.clock.Now().UTC())
		if err != nil {
			r.logger.Error().Err(err).Str("purchase_id", purchase.ID).Msg("Failed to claim purchase")
			continue
		}
		if !claimed {
			// Another runner got there first
			continue
		}

		r.execute(ctx, purchase)
		processed++
	}

	return processed, nil
}

func (r *Runner) execute(ctx context.Context, purchase *models.Purchase) {
	attempt := purchase.Attempts + 1
	log := r.logger.With().
		Str("purchase_id", purchase.ID).
		Str("product", purchase.ProductName).
		Int("attempt", attempt).
		Logger()

	err := r.checkout.Execute(ctx, purchase)
	now := r.clock.Now().UTC()

	if err == nil {
		if err := r.store.MarkCompleted(ctx, purchase.ID, now); err != nil {
			log.Error().Err(err).Msg("Failed to record completed purchase")
			return
		}
		metrics.PurchaseRuns.WithLabelValues("completed").Inc()
		log.Info().Msg("Purchase completed")
		return
	}

	if attempt >= r.maxAttempts {
		if err := r.store.MarkFailed(ctx, purchase.ID, err.Error(), now); err != nil {
			log.Error().Err(err).Msg("Failed to record failed purchase")
			return
		}
		metrics.PurchaseRuns.WithLabelValues("failed").Inc()
		log.Warn().Err(err).Msg("Purchase failed permanently")
		return
	}

	if err := r.store.Requeue(ctx, purchase.ID, err.Error(), now); err != nil {
		log.Error().Err(err).Msg("Failed to requeue purchase")
		return
	}
	metrics.PurchaseRuns.WithLabelValues("retried").Inc()
	log.Warn().Err(err).Msg("Purchase attempt failed, will retry")
}
