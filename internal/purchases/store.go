package purchases

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"zero-actions/internal/database"
	"zero-actions/internal/models"
)

var (
	// ErrNotFound means no purchase exists with the given id.
	ErrNotFound = errors.New("purchase not found")
	// ErrNotCancellable means the purchase has already left the scheduled state.
	ErrNotCancellable = errors.New("purchase is not cancellable")
)

// Store persists scheduled purchases in SQL
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new purchase store
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the purchases table if it doesn't exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	table := `CREATE TABLE IF NOT EXISTS purchases (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		email_id VARCHAR(64) NOT NULL,
		product_name TEXT NOT NULL,
		product_url TEXT NOT NULL,
		scheduled_time TIMESTAMP NOT NULL,
		timezone VARCHAR(64) NOT NULL DEFAULT '',
		status VARCHAR(16) NOT NULL,
		variant VARCHAR(16) NOT NULL,
		attempts INT NOT NULL DEFAULT 0,
		last_error TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("failed to create purchases table: %w", err)
	}

	// Index creation syntax differs between drivers; a failure here only
	// costs query speed.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_purchases_user_id ON purchases(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_purchases_due ON purchases(status, scheduled_time)`,
	}
	for _, query := range indexes {
		_, _ = s.db.ExecContext(ctx, query)
	}

	return nil
}

// Create saves a new purchase record
func (s *Store) Create(ctx context.Context, p *models.Purchase) error {
	query := s.db.Rebind(`
		INSERT INTO purchases (
			id, user_id, email_id, product_name, product_url,
			scheduled_time, timezone, status, variant, attempts,
			last_error, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	_, err := s.db.ExecContext(ctx, query,
		p.ID, p.UserID, p.EmailID, p.ProductName, p.ProductURL,
		p.ScheduledTime, p.Timezone, p.Status, p.Variant, p.Attempts,
		p.LastError, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create purchase: %w", err)
	}
	return nil
}

// GetByID fetches one purchase, ErrNotFound when the id is unknown
func (s *Store) GetByID(ctx context.Context, id string) (*models.Purchase, error) {
	query := s.db.Rebind(`SELECT * FROM purchases WHERE id = ?`)

	var p models.Purchase
	if err := s.db.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get purchase: %w", err)
	}
	return &p, nil
}

// ActiveForEmail returns the scheduled purchase for a (user, email) pair,
// or nil when none is pending.
func (s *Store) ActiveForEmail(ctx context.Context, userID, emailID string) (*models.Purchase, error) {
	query := s.db.Rebind(`
		SELECT * FROM purchases
		WHERE user_id = ? AND email_id = ? AND status = ?
		ORDER BY created_at DESC
		LIMIT 1
	`)

	var p models.Purchase
	err := s.db.GetContext(ctx, &p, query, userID, emailID, models.PurchaseScheduled)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check active purchase: %w", err)
	}
	return &p, nil
}

// ListByUser returns a user's purchases, newest first
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	query := s.db.Rebind(`
		SELECT * FROM purchases
		WHERE user_id = ?
		ORDER BY created_at DESC
	`)

	var purchases []models.Purchase
	if err := s.db.SelectContext(ctx, &purchases, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	// Ensure we return an empty slice, not nil
	if purchases == nil {
		purchases = []models.Purchase{}
	}

	return purchases, nil
}

// Cancel moves a scheduled purchase to cancelled. Returns ErrNotFound for
// unknown ids and ErrNotCancellable once the purchase has left the
// scheduled state.
func (s *Store) Cancel(ctx context.Context, id string, now time.Time) error {
	return database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var status models.PurchaseStatus
		query := tx.Rebind(`SELECT status FROM purchases WHERE id = ?`)
		if err := tx.GetContext(ctx, &status, query, id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to get purchase status: %w", err)
		}

		if !status.Cancellable() {
			return ErrNotCancellable
		}

		update := tx.Rebind(`UPDATE purchases SET status = ?, updated_at = ? WHERE id = ?`)
		if _, err := tx.ExecContext(ctx, update, models.PurchaseCancelled, now, id); err != nil {
			return fmt.Errorf("failed to cancel purchase: %w", err)
		}
		return nil
	})
}

// DueForExecution returns scheduled purchases whose time has come, oldest
// first, capped at limit.
func (s *Store) DueForExecution(ctx context.Context, now time.Time, limit int) ([]models.Purchase, error) {
	query := s.db.Rebind(`
		SELECT * FROM purchases
		WHERE status = ? AND scheduled_time <= ?
		ORDER BY scheduled_time ASC
		LIMIT ?
	`)

	var due []models.Purchase
	if err := s.db.SelectContext(ctx, &due, query, models.PurchaseScheduled, now, limit); err != nil {
		return nil, fmt.Errorf("failed to query due purchases: %w", err)
	}
	return due, nil
}

// MarkProcessing claims a due purchase for one execution attempt. The
// status guard makes the claim atomic, so two runners never execute the
// same row.
func (s *Store) MarkProcessing(ctx context.Context, id string, now time.Time) (bool, error) {
	query := s.db.Rebind(`
		UPDATE purchases
		SET status = ?, attempts = attempts + 1, updated_at = ?
		WHERE id = ? AND status = ?
	`)

	result, err := s.db.ExecContext(ctx, query, models.PurchaseProcessing, now, id, models.PurchaseScheduled)
	if err != nil {
		return false, fmt.Errorf("failed to claim purchase: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}
	return affected > 0, nil
}

// MarkCompleted records a successful checkout
func (s *Store) MarkCompleted(ctx context.Context, id string, now time.Time) error {
	query := s.db.Rebind(`UPDATE purchases SET status = ?, last_error = NULL, updated_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, query, models.PurchaseCompleted, now, id); err != nil {
		return fmt.Errorf("failed to mark purchase completed: %w", err)
	}
	return nil
}

// MarkFailed records a terminal failure
func (s *Store) MarkFailed(ctx context.Context, id, lastError string, now time.Time) error {
	query := s.db.Rebind(`UPDATE purchases SET status = ?, last_error = ?, updated_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, query, models.PurchaseFailed, lastError, now, id); err != nil {
		return fmt.Errorf("failed to mark purchase failed: %w", err)
	}
	return nil
}

// Requeue puts a failed attempt back in the scheduled state for a retry
// on a later tick.
func (s *Store) Requeue(ctx context.Context, id, lastError string, now time.Time) error {
	query := s.db.Rebind(`UPDATE purchases SET status = ?, last_error = ?, updated_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, query, models.PurchaseScheduled, lastError, now, id); err != nil {
		return fmt.Errorf("failed to requeue purchase: %w", err)
	}
	return nil
}
