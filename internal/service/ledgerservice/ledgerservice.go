package ledgerservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type LedgerRepo interface {
	BalanceForUpdate(ctx context.Context, escortID int) (int64, error)
	GetBalance(ctx context.Context, escortID int) (int64, error)
	ApplyTransaction(ctx context.Context, t *domain.Transaction) error
	SumTransactions(ctx context.Context, escortID int) (int64, error)
	CreatePayout(ctx context.Context, p *domain.Payout) (*domain.Payout, error)
	FindPayoutsByOrder(ctx context.Context, orderID int) ([]domain.Payout, error)
	CreateWithdrawal(ctx context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error)
	FindWithdrawalForUpdate(ctx context.Context, id int) (*domain.Withdrawal, error)
	UpdateWithdrawalStatus(ctx context.Context, id int, status string, processedAt time.Time) error
	FindWithdrawalsByEscort(ctx context.Context, escortID int) ([]domain.Withdrawal, error)
}

type OrderRepo interface {
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	FindAssignments(ctx context.Context, orderID int) ([]domain.Assignment, error)
}

type SquadRepo interface {
	RecordCompletion(ctx context.Context, id int, earned int64) error
}

type ActionLogRepo interface {
	Append(ctx context.Context, entry *domain.ActionLogEntry) error
}

var (
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrNoExecutors       = errors.New("order has no executors to settle")
)

type Service struct {
	ledgerRepo     LedgerRepo
	orderRepo      OrderRepo
	squadRepo      SquadRepo
	actionLogRepo  ActionLogRepo
	txManager      pg.TXManager
	commissionRate int64
}

func New(ledgerRepo LedgerRepo, orderRepo OrderRepo, squadRepo SquadRepo, actionLogRepo ActionLogRepo, txManager pg.TXManager, commissionRate int64) *Service {
	return &Service{
		ledgerRepo:     ledgerRepo,
		orderRepo:      orderRepo,
		squadRepo:      squadRepo,
		actionLogRepo:  actionLogRepo,
		txManager:      txManager,
		commissionRate: commissionRate,
	}
}

// Credit appends a positive ledger entry and moves the balance projection
// in one transaction.
func (s *Service) Credit(ctx context.Context, escortID int, amount int64, txType string) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.ledgerRepo.BalanceForUpdate(ctx, escortID); err != nil {
			return err
		}
		return s.ledgerRepo.ApplyTransaction(ctx, &domain.Transaction{
			EscortID:  escortID,
			Amount:    amount,
			Type:      txType,
			CreatedAt: time.Now(),
		})
	})
}

// Debit fails with ErrInsufficientBalance when the projected balance would
// go negative. The balance row lock serializes concurrent debits.
func (s *Service) Debit(ctx context.Context, escortID int, amount int64, txType string) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.ledgerRepo.BalanceForUpdate(ctx, escortID)
		if err != nil {
			return err
		}
		if balance < amount {
			return domain.ErrInsufficientBalance
		}
		return s.ledgerRepo.ApplyTransaction(ctx, &domain.Transaction{
			EscortID:  escortID,
			Amount:    -amount,
			Type:      txType,
			CreatedAt: time.Now(),
		})
	})
}

// SettleOrder splits the order amount between the platform commission and
// the executors. Re-invoking for an already settled order returns the
// existing payouts without touching the ledger.
func (s *Service) SettleOrder(ctx context.Context, orderID int) ([]domain.Payout, int64, error) {
	var payouts []domain.Payout
	var commission int64

	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByIDForUpdate(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		existing, err := s.ledgerRepo.FindPayoutsByOrder(ctx, orderID)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			payouts = existing
			commission = order.Commission
			return nil
		}

		assignments, err := s.orderRepo.FindAssignments(ctx, orderID)
		if err != nil {
			return err
		}
		if len(assignments) == 0 {
			return ErrNoExecutors
		}

		commission = order.Amount * s.commissionRate / 100
		pool := order.Amount - commission
		share := pool / int64(len(assignments))
		remainder := pool % int64(len(assignments))

		now := time.Now()
		for i, a := range assignments {
			amount := share
			// The earliest-assigned executor absorbs the integer remainder,
			// keeping payouts + commission equal to the order amount.
			if i == 0 {
				amount += remainder
			}
			payout, err := s.ledgerRepo.CreatePayout(ctx, &domain.Payout{
				Reference:  uuid.NewString(),
				OrderID:    orderID,
				EscortID:   a.EscortID,
				Amount:     amount,
				Commission: commission,
				CreatedAt:  now,
			})
			if err != nil {
				return err
			}
			if _, err := s.ledgerRepo.BalanceForUpdate(ctx, a.EscortID); err != nil {
				return err
			}
			err = s.ledgerRepo.ApplyTransaction(ctx, &domain.Transaction{
				EscortID:  a.EscortID,
				Amount:    amount,
				Type:      domain.PayoutTransaction,
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
			payouts = append(payouts, *payout)
		}

		if order.SquadID != nil {
			if err := s.squadRepo.RecordCompletion(ctx, *order.SquadID, pool); err != nil {
				return err
			}
		}

		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "settle_order",
			OrderID:     &order.ID,
			Description: fmt.Sprintf("order %s settled: %d to executors, %d commission", order.MemoID, pool, commission),
			CreatedAt:   now,
		})
	})
	if err != nil {
		zap.L().Error("failed to settle order", zap.Int("orderID", orderID), zap.Error(err))
		return nil, 0, err
	}
	return payouts, commission, nil
}

// RequestWithdrawal debits the balance immediately (hold semantics) and
// records a pending withdrawal.
func (s *Service) RequestWithdrawal(ctx context.Context, escortID int, amount int64, destination string) (*domain.Withdrawal, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}
	var withdrawal *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		balance, err := s.ledgerRepo.BalanceForUpdate(ctx, escortID)
		if err != nil {
			return err
		}
		if balance < amount {
			return domain.ErrInsufficientBalance
		}
		err = s.ledgerRepo.ApplyTransaction(ctx, &domain.Transaction{
			EscortID:  escortID,
			Amount:    -amount,
			Type:      domain.WithdrawalHoldTransaction,
			CreatedAt: time.Now(),
		})
		if err != nil {
			return err
		}
		withdrawal, err = s.ledgerRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			Reference:   uuid.NewString(),
			EscortID:    escortID,
			Amount:      amount,
			Destination: destination,
			Status:      domain.PendingWithdrawalStatus,
			CreatedAt:   time.Now(),
		})
		if err != nil {
			return err
		}
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "request_withdrawal",
			EscortID:    &escortID,
			Description: fmt.Sprintf("withdrawal %s requested: %d", withdrawal.Reference, amount),
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInsufficientBalance) {
			zap.L().Error("failed to request withdrawal", zap.Int("escortID", escortID), zap.Error(err))
		}
		return nil, err
	}
	return withdrawal, nil
}

// ResolveWithdrawal moves a pending withdrawal to a terminal state.
// Approval releases funds externally, the hold already debited the balance.
// Rejection reverses the hold with a compensating credit.
func (s *Service) ResolveWithdrawal(ctx context.Context, id int, approve bool) (*domain.Withdrawal, error) {
	var resolved *domain.Withdrawal
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		withdrawal, err := s.ledgerRepo.FindWithdrawalForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if withdrawal == nil {
			return domain.ErrNotFound
		}
		if withdrawal.Status != domain.PendingWithdrawalStatus {
			return domain.ErrInvalidTransition
		}

		now := time.Now()
		status := domain.ApprovedWithdrawalStatus
		if !approve {
			status = domain.RejectedWithdrawalStatus
			if _, err := s.ledgerRepo.BalanceForUpdate(ctx, withdrawal.EscortID); err != nil {
				return err
			}
			err = s.ledgerRepo.ApplyTransaction(ctx, &domain.Transaction{
				EscortID:  withdrawal.EscortID,
				Amount:    withdrawal.Amount,
				Type:      domain.WithdrawalRevertTransaction,
				CreatedAt: now,
			})
			if err != nil {
				return err
			}
		}
		if err := s.ledgerRepo.UpdateWithdrawalStatus(ctx, id, status, now); err != nil {
			return err
		}
		withdrawal.Status = status
		withdrawal.ProcessedAt = &now
		resolved = withdrawal
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "resolve_withdrawal",
			EscortID:    &withdrawal.EscortID,
			Description: fmt.Sprintf("withdrawal %s %s", withdrawal.Reference, status),
			CreatedAt:   now,
		})
	})
	if err != nil {
		return nil, err
	}
	return resolved, nil
}

func (s *Service) GetBalance(ctx context.Context, escortID int) (int64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, escortID)
	if err != nil {
		zap.L().Error("failed to get balance", zap.Error(err))
		return 0, err
	}
	return balance, nil
}

// CheckBalance compares the cached projection against the transaction sum.
// The two must always be equal.
func (s *Service) CheckBalance(ctx context.Context, escortID int) (int64, int64, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, escortID)
	if err != nil {
		return 0, 0, err
	}
	sum, err := s.ledgerRepo.SumTransactions(ctx, escortID)
	if err != nil {
		return 0, 0, err
	}
	if balance != sum {
		zap.L().Error("balance projection diverged from ledger",
			zap.Int("escortID", escortID), zap.Int64("balance", balance), zap.Int64("sum", sum))
	}
	return balance, sum, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, escortID int) ([]domain.Withdrawal, error) {
	withdrawals, err := s.ledgerRepo.FindWithdrawalsByEscort(ctx, escortID)
	if err != nil {
		zap.L().Error("failed to fetch withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}

func (s *Service) GetPayouts(ctx context.Context, orderID int) ([]domain.Payout, error) {
	payouts, err := s.ledgerRepo.FindPayoutsByOrder(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to fetch payouts", zap.Error(err))
		return nil, err
	}
	return payouts, nil
}
