package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
)

// ErrNotFound is returned when a row looked up by id does not exist
var ErrNotFound = errors.New("not found")

// Repository is the SQLite store behind the vacancy, stage, candidate and
// activity services. It also implements board.Persister.
type Repository struct {
	db *sql.DB
}

// NewRepository wraps an open database
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Close closes the database
func (r *Repository) Close() error {
	return r.db.Close()
}

// inTx runs fn in one transaction, committing only if fn succeeds
func (r *Repository) inTx(ctx context.Context, fn func(*sql.Tx) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err == nil {
			return
		}
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			slog.Error("rollback failed", "error", rbErr, "cause", err)
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// notFound turns sql.ErrNoRows into ErrNotFound, naming what was looked up
func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	}
	return err
}
