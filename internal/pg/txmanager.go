package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
)

const txAttempts = 3

type txCtxKey struct{}

// TXManager runs a function inside a database transaction. Nested Begin
// calls reuse the transaction already bound to the context, so compound
// service operations commit or abort as a unit.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type Manager struct {
	pool *pgxpool.Pool
}

func NewTXManager(pool *pgxpool.Pool) *Manager {
	return &Manager{pool: pool}
}

func (m *Manager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	var err error
	for attempt := 1; attempt <= txAttempts; attempt++ {
		err = m.run(ctx, fn)
		if !retryable(err) {
			return err
		}
		zap.L().Warn("transaction conflict, retrying", zap.Int("attempt", attempt), zap.Error(err))
	}
	return fmt.Errorf("%w: %w", domain.ErrConflict, err)
}

func (m *Manager) run(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("can't begin transaction: %w", err)
	}

	txCtx := context.WithValue(ctx, txCtxKey{}, tx)
	if err := fn(txCtx); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			zap.L().Error("rollback failed", zap.Error(rbErr))
		}
		return err
	}
	return tx.Commit(ctx)
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, ok := ctx.Value(txCtxKey{}).(pgx.Tx)
	if !ok {
		return nil
	}
	return tx
}

func retryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgerrcode.SerializationFailure || pgErr.Code == pgerrcode.DeadlockDetected
}
