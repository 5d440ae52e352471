// Package reminders stores the rows created by the set_reminder action.
package reminders

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"zero-actions/internal/models"
)

// Store persists reminders in SQL
type Store struct {
	db *sqlx.DB
}

// NewStore creates a new reminder store
func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the reminders table if it doesn't exist
func (s *Store) EnsureSchema(ctx context.Context) error {
	table := `CREATE TABLE IF NOT EXISTS reminders (
		id VARCHAR(36) PRIMARY KEY,
		user_id VARCHAR(64) NOT NULL,
		email_id VARCHAR(64) NOT NULL,
		title TEXT NOT NULL,
		remind_at TIMESTAMP NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, table); err != nil {
		return fmt.Errorf("failed to create reminders table: %w", err)
	}

	// Index creation syntax differs between drivers; a failure here only
	// costs query speed.
	_, _ = s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_reminders_user_id ON reminders(user_id)`)

	return nil
}

// Create saves a reminder
func (s *Store) Create(ctx context.Context, reminder *models.Reminder) error {
	query := s.db.Rebind(`
		INSERT INTO reminders (id, user_id, email_id, title, remind_at, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	_, err := s.db.ExecContext(ctx, query,
		reminder.ID, reminder.UserID, reminder.EmailID,
		reminder.Title, reminder.RemindAt, reminder.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create reminder: %w", err)
	}
	return nil
}

// ListByUser returns a user's reminders, soonest first
func (s *Store) ListByUser(ctx context.Context, userID string) ([]models.Reminder, error) {
	query := s.db.Rebind(`
		SELECT id, user_id, email_id, title, remind_at, created_at
		FROM reminders
		WHERE user_id = ?
		ORDER BY remind_at ASC
	`)

	var reminders []models.Reminder
	if err := s.db.SelectContext(ctx, &reminders, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}

	// Ensure we return an empty slice, not nil
	if reminders == nil {
		reminders = []models.Reminder{}
	}

	return reminders, nil
}
