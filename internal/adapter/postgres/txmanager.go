package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager manages database transactions using the context pattern.
// Nested RunInTx calls are NOT supported — calling RunInTx inside a RunInTx
// callback will create a second independent transaction, which is a bug.
type TxManager struct {
	db   DB
	opts pgx.TxOptions
}

// NewTxManager creates a TxManager whose transactions run at REPEATABLE READ,
// so every read inside one callback sees the same snapshot.
func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db, opts: pgx.TxOptions{IsoLevel: pgx.RepeatableRead}}
}

// NewTxManagerWithOptions creates a TxManager with explicit transaction options.
func NewTxManagerWithOptions(db DB, opts pgx.TxOptions) *TxManager {
	return &TxManager{db: db, opts: opts}
}

// RunInTx executes fn within a database transaction.
// On success: commits.
// On error from fn: rolls back and returns the error.
// On panic from fn: rolls back and re-panics.
// Begin and commit failures are passed through MapError, so a serialization
// failure at commit surfaces as domain.ErrTransient.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	tx, err := m.db.BeginTx(ctx, m.opts)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classify(err))
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	txCtx := withTx(ctx, tx)

	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", classify(err))
	}

	return nil
}
