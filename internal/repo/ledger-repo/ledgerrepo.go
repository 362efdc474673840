package ledgerrepo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// BalanceForUpdate locks the escort's balance row for the rest of the
// transaction. All balance mutations go through this lock, so concurrent
// debits on one escort serialize.
func (r *Repository) BalanceForUpdate(ctx context.Context, escortID int) (int64, error) {
	query := `
        SELECT balance
        FROM escorts
        WHERE id = $1
        FOR UPDATE
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, escortID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't lock balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

func (r *Repository) GetBalance(ctx context.Context, escortID int) (int64, error) {
	query := `
        SELECT balance
        FROM escorts
        WHERE id = $1
    `
	var balance int64
	err := r.db.QueryRow(ctx, query, escortID).Scan(&balance)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrNotFound
	}
	if err != nil {
		zap.L().Error("can't get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// ApplyTransaction appends a ledger entry and moves the cached balance
// projection by the same amount in one statement pair. Callers hold the
// balance row lock via BalanceForUpdate.
func (r *Repository) ApplyTransaction(ctx context.Context, t *domain.Transaction) error {
	insert := `
        INSERT INTO transactions (escort_id, amount, type, created_at)
        VALUES ($1, $2, $3, $4)
    `
	update := `
        UPDATE escorts
        SET balance = balance + $1
        WHERE id = $2
    `
	return r.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := r.db.Exec(ctx, insert, t.EscortID, t.Amount, t.Type, t.CreatedAt); err != nil {
			zap.L().Error("can't append transaction", zap.Error(err))
			return err
		}
		if _, err := r.db.Exec(ctx, update, t.Amount, t.EscortID); err != nil {
			zap.L().Error("can't update balance projection", zap.Error(err))
			return err
		}
		return nil
	})
}

func (r *Repository) SumTransactions(ctx context.Context, escortID int) (int64, error) {
	query := `
        SELECT COALESCE(SUM(amount), 0)
        FROM transactions
        WHERE escort_id = $1
    `
	var sum int64
	if err := r.db.QueryRow(ctx, query, escortID).Scan(&sum); err != nil {
		zap.L().Error("can't sum transactions", zap.Error(err))
		return 0, err
	}
	return sum, nil
}

func (r *Repository) CreatePayout(ctx context.Context, p *domain.Payout) (*domain.Payout, error) {
	query := `
        INSERT INTO payouts (reference, order_id, escort_id, amount, commission, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, p.Reference, p.OrderID, p.EscortID, p.Amount, p.Commission, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return nil, domain.ErrConflict
		}
		zap.L().Error("can't create payout", zap.Error(err))
		return nil, err
	}
	return p, nil
}

func (r *Repository) FindPayoutsByOrder(ctx context.Context, orderID int) ([]domain.Payout, error) {
	query := `
        SELECT id, reference, order_id, escort_id, amount, commission, created_at
        FROM payouts
        WHERE order_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		zap.L().Error("can't get payouts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var payouts []domain.Payout
	for rows.Next() {
		var p domain.Payout
		err := rows.Scan(&p.ID, &p.Reference, &p.OrderID, &p.EscortID, &p.Amount, &p.Commission, &p.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan payout row", zap.Error(err))
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *Repository) CreateWithdrawal(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
	query := `
        INSERT INTO withdrawals (reference, escort_id, amount, destination, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query, w.Reference, w.EscortID, w.Amount, w.Destination, w.Status, w.CreatedAt).Scan(&w.ID)
	if err != nil {
		zap.L().Error("can't create withdrawal", zap.Error(err))
		return nil, err
	}
	return w, nil
}

// FindWithdrawalForUpdate locks the withdrawal so resolve operations on the
// same request serialize.
func (r *Repository) FindWithdrawalForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error) {
	query := `
        SELECT id, reference, escort_id, amount, destination, status, created_at, processed_at
        FROM withdrawals
        WHERE id = $1
        FOR UPDATE
    `
	var w domain.Withdrawal
	err := r.db.QueryRow(ctx, query, id).Scan(&w.ID, &w.Reference, &w.EscortID, &w.Amount,
		&w.Destination, &w.Status, &w.CreatedAt, &w.ProcessedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't lock withdrawal", zap.Error(err))
		return nil, err
	}
	return &w, nil
}

func (r *Repository) UpdateWithdrawalStatus(ctx context.Context, id int, status string, processedAt time.Time) error {
	query := `
        UPDATE withdrawals
        SET status = $1, processed_at = $2
        WHERE id = $3
    `
	_, err := r.db.Exec(ctx, query, status, processedAt, id)
	if err != nil {
		zap.L().Error("can't update withdrawal status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindWithdrawalsByEscort(ctx context.Context, escortID int) ([]domain.Withdrawal, error) {
	query := `
        SELECT id, reference, escort_id, amount, destination, status, created_at, processed_at
        FROM withdrawals
        WHERE escort_id = $1
        ORDER BY created_at DESC
    `
	rows, err := r.db.Query(ctx, query, escortID)
	if err != nil {
		zap.L().Error("can't get withdrawals", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var withdrawals []domain.Withdrawal
	for rows.Next() {
		var w domain.Withdrawal
		err := rows.Scan(&w.ID, &w.Reference, &w.EscortID, &w.Amount, &w.Destination, &w.Status,
			&w.CreatedAt, &w.ProcessedAt)
		if err != nil {
			zap.L().Error("can't scan withdrawal row", zap.Error(err))
			return nil, err
		}
		withdrawals = append(withdrawals, w)
	}
	return withdrawals, nil
}
