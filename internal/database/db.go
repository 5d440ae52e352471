package database

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // MySQL deployments
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL deployments
)

const (
	driverMySQL    = "mysql"
	driverPostgres = "postgres"
)

// Driver picks the sql driver from the URL prefix. Postgres URLs start
// with "postgres"; everything else is treated as MySQL.
func Driver(databaseURL string) string {
	if len(databaseURL) > 8 && databaseURL[:8] == driverPostgres {
		return driverPostgres
	}
	return driverMySQL
}

// New creates a new database connection (supports both MySQL and PostgreSQL)
func New(databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set")
	}

	db, err := sqlx.Open(Driver(databaseURL), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool settings
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Ping verifies the connection with a SELECT 1 round trip.
func Ping(ctx context.Context, db *sqlx.DB) error {
	var result int
	if err := db.GetContext(ctx, &result, "SELECT 1"); err != nil {
		return fmt.Errorf("failed to execute ping query: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on any error, fn panics included.
func WithTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	committed = true
	return nil
}
