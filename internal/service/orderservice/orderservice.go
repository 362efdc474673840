package orderservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type Repo interface {
	Save(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByMemoID(ctx context.Context, memoID string) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	FindByStatus(ctx context.Context, status string) ([]domain.Order, error)
	UpdateStatusFrom(ctx context.Context, id int, from, to string) (bool, error)
	SetCompleted(ctx context.Context, id int, commission int64, finishedAt time.Time) error
	FindAssignments(ctx context.Context, orderID int) ([]domain.Assignment, error)
	DeleteAssignments(ctx context.Context, orderID int) error
}

type EscortRepo interface {
	IncrementCompletedOrders(ctx context.Context, id int) error
}

type ActionLogRepo interface {
	Append(ctx context.Context, entry *domain.ActionLogEntry) error
}

// Ledger settles the money side of a completed order.
type Ledger interface {
	SettleOrder(ctx context.Context, orderID int) ([]domain.Payout, int64, error)
}

// Reputation records the customer's rating on completion.
type Reputation interface {
	RecordRating(ctx context.Context, orderID, score int) error
}

var (
	ErrNonPositiveAmount = errors.New("order amount must be positive")
	ErrUnknownStatus     = errors.New("unknown order status")
)

type Service struct {
	repo          Repo
	escortRepo    EscortRepo
	actionLogRepo ActionLogRepo
	ledger        Ledger
	reputation    Reputation
	txManager     pg.TXManager
}

func New(repo Repo, escortRepo EscortRepo, actionLogRepo ActionLogRepo, ledger Ledger, reputation Reputation, txManager pg.TXManager) *Service {
	return &Service{
		repo:          repo,
		escortRepo:    escortRepo,
		actionLogRepo: actionLogRepo,
		ledger:        ledger,
		reputation:    reputation,
		txManager:     txManager,
	}
}

// Create opens a new order. The memo id is the idempotency key: a retried
// submission returns the existing order together with ErrDuplicateOrder.
func (s *Service) Create(ctx context.Context, memoID, customerInfo, description string, amount int64) (*domain.Order, error) {
	if amount <= 0 {
		return nil, ErrNonPositiveAmount
	}

	existing, err := s.repo.FindByMemoID(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		zap.L().Info("order already exists", zap.String("memoID", memoID))
		return existing, domain.ErrDuplicateOrder
	}

	var order *domain.Order
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err = s.repo.Save(ctx, &domain.Order{
			MemoID:       memoID,
			CustomerInfo: customerInfo,
			Description:  description,
			Amount:       amount,
			Status:       domain.OpenOrderStatus,
		})
		if err != nil {
			return err
		}
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "create_order",
			OrderID:     &order.ID,
			Description: fmt.Sprintf("order %s created: %d", memoID, amount),
			CreatedAt:   time.Now(),
		})
	})
	if errors.Is(err, domain.ErrDuplicateOrder) {
		// Lost a creation race; surface the winner's row.
		existing, findErr := s.repo.FindByMemoID(ctx, memoID)
		if findErr != nil {
			return nil, findErr
		}
		return existing, domain.ErrDuplicateOrder
	}
	if err != nil {
		zap.L().Error("can't save order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

// Start moves an assigned order into execution. Starting an order that is
// already in progress is a no-op.
func (s *Service) Start(ctx context.Context, memoID string) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.lock(ctx, memoID)
		if err != nil {
			return err
		}
		if order.Status == domain.InProgressOrderStatus {
			return nil
		}
		won, err := s.repo.UpdateStatusFrom(ctx, order.ID, domain.AssignedOrderStatus, domain.InProgressOrderStatus)
		if err != nil {
			return err
		}
		if !won {
			return domain.ErrInvalidTransition
		}
		order.Status = domain.InProgressOrderStatus
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "start_order",
			OrderID:     &order.ID,
			Description: fmt.Sprintf("order %s started", memoID),
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Complete settles the ledger, bumps executor counters, optionally records
// the rating and finishes the order, all in one transaction.
func (s *Service) Complete(ctx context.Context, memoID string, rating *int) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.lock(ctx, memoID)
		if err != nil {
			return err
		}
		if order.Status != domain.AssignedOrderStatus && order.Status != domain.InProgressOrderStatus {
			return domain.ErrInvalidTransition
		}

		_, commission, err := s.ledger.SettleOrder(ctx, order.ID)
		if err != nil {
			return err
		}

		assignments, err := s.repo.FindAssignments(ctx, order.ID)
		if err != nil {
			return err
		}
		for _, a := range assignments {
			if err := s.escortRepo.IncrementCompletedOrders(ctx, a.EscortID); err != nil {
				return err
			}
		}

		now := time.Now()
		if err := s.repo.SetCompleted(ctx, order.ID, commission, now); err != nil {
			return err
		}
		order.Status = domain.CompletedOrderStatus
		order.Commission = commission
		order.FinishedAt = &now

		if rating != nil {
			if err := s.reputation.RecordRating(ctx, order.ID, *rating); err != nil {
				return err
			}
		}

		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "complete_order",
			OrderID:     &order.ID,
			Description: fmt.Sprintf("order %s completed", memoID),
			CreatedAt:   now,
		})
	})
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidTransition) {
			zap.L().Error("can't complete order", zap.String("memoID", memoID), zap.Error(err))
		}
		return nil, err
	}
	return order, nil
}

// Cancel releases any assignment and closes the order. Valid from open and
// assigned only; no ledger effect, nothing was settled yet.
func (s *Service) Cancel(ctx context.Context, memoID string) (*domain.Order, error) {
	var order *domain.Order
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		var err error
		order, err = s.lock(ctx, memoID)
		if err != nil {
			return err
		}
		if order.Status != domain.OpenOrderStatus && order.Status != domain.AssignedOrderStatus {
			return domain.ErrInvalidTransition
		}
		if err := s.repo.DeleteAssignments(ctx, order.ID); err != nil {
			return err
		}
		won, err := s.repo.UpdateStatusFrom(ctx, order.ID, order.Status, domain.CancelledOrderStatus)
		if err != nil {
			return err
		}
		if !won {
			return domain.ErrInvalidTransition
		}
		order.Status = domain.CancelledOrderStatus
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "cancel_order",
			OrderID:     &order.ID,
			Description: fmt.Sprintf("order %s cancelled", memoID),
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Service) GetByMemoID(ctx context.Context, memoID string) (*domain.Order, error) {
	order, err := s.repo.FindByMemoID(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}

// ListByStatus lists orders in one state. No filter means the open board.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]domain.Order, error) {
	if status == "" {
		status = domain.OpenOrderStatus
	}
	switch status {
	case domain.OpenOrderStatus, domain.AssignedOrderStatus, domain.InProgressOrderStatus,
		domain.CompletedOrderStatus, domain.CancelledOrderStatus:
	default:
		return nil, ErrUnknownStatus
	}
	orders, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		zap.L().Error("failed to get orders", zap.Error(err))
		return nil, err
	}
	return orders, nil
}

func (s *Service) lock(ctx context.Context, memoID string) (*domain.Order, error) {
	order, err := s.repo.FindByMemoID(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order, err = s.repo.FindByIDForUpdate(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	return order, nil
}
