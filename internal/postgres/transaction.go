package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/anishchandragiri369/studio-sub000/internal/types"
	"github.com/jmoiron/sqlx"
)

// TxKey is the context key type for storing the transaction
type TxKey struct{}

// Tx wraps sqlx.Tx with an ID for tracing
type Tx struct {
	*sqlx.Tx
	ID string
}

// GetTx retrieves a transaction from the context if it exists
func GetTx(ctx context.Context) (*Tx, bool) {
	tx, ok := ctx.Value(TxKey{}).(*Tx)
	return tx, ok
}

// BeginTx starts a new transaction. If the context already carries one,
// it is reused so nested WithTx calls join the outer transaction.
func (db *DB) BeginTx(ctx context.Context) (context.Context, *Tx, bool, error) {
	if tx, ok := GetTx(ctx); ok {
		return ctx, tx, false, nil
	}

	sqlxTx, err := db.BeginTxx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		return ctx, nil, false, fmt.Errorf("failed to begin transaction: %w", err)
	}

	tx := &Tx{
		Tx: sqlxTx,
		ID: types.GenerateUUID(),
	}

	db.logger.Debugw("starting new transaction", "tx_id", tx.ID)

	ctx = context.WithValue(ctx, TxKey{}, tx)
	return ctx, tx, true, nil
}

// WithTx executes a function within a transaction. Read-compute-write
// sequences in the service layer run through this so the recomputed
// delivery dates are persisted atomically with the status change.
func (db *DB) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, owner, err := db.BeginTx(ctx)
	if err != nil {
		return err
	}

	if !owner {
		// Joined an outer transaction, let its owner commit or roll back
		return fn(ctx)
	}

	defer func() {
		if r := recover(); r != nil {
			db.logger.Errorw("panic in transaction", "tx_id", tx.ID, "panic", r)
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx); err != nil {
		db.logger.Errorw("transaction failed", "tx_id", tx.ID, "error", err)
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("error rolling back transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
