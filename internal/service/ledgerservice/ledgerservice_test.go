package ledgerservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type mocks struct {
	ledgerRepo *MockLedgerRepo
	orderRepo  *MockOrderRepo
	squadRepo  *MockSquadRepo
	actionLog  *MockActionLogRepo
	txManager  *pg.MockTXManager
}

func NewMock(t *testing.T, commissionRate int64) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		ledgerRepo: NewMockLedgerRepo(ctrl),
		orderRepo:  NewMockOrderRepo(ctrl),
		squadRepo:  NewMockSquadRepo(ctrl),
		actionLog:  NewMockActionLogRepo(ctrl),
		txManager:  pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(m.ledgerRepo, m.orderRepo, m.squadRepo, m.actionLog, m.txManager, commissionRate)
	defer ctrl.Finish()
	return service, m
}

func TestDebit(t *testing.T) {
	service, m := NewMock(t, 20)

	t.Run("Non-positive amount", func(t *testing.T) {
		err := service.Debit(context.Background(), 1, 0, domain.AdjustmentTransaction)
		assert.ErrorIs(t, err, ErrNonPositiveAmount)
	})

	t.Run("Insufficient balance", func(t *testing.T) {
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), 1).Return(int64(100), nil)
		err := service.Debit(context.Background(), 1, 101, domain.AdjustmentTransaction)
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("Exact balance drains to zero", func(t *testing.T) {
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), 1).Return(int64(100), nil)
		m.ledgerRepo.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr *domain.Transaction) error {
				assert.Equal(t, int64(-100), tr.Amount)
				return nil
			})
		err := service.Debit(context.Background(), 1, 100, domain.AdjustmentTransaction)
		assert.NoError(t, err)
	})
}

func TestSettleOrder(t *testing.T) {
	t.Run("Splits pool between executors, remainder to the earliest", func(t *testing.T) {
		service, m := NewMock(t, 20)
		order := &domain.Order{ID: 1, MemoID: "memo-1", Amount: 1000, Status: domain.InProgressOrderStatus}
		assignments := []domain.Assignment{
			{OrderID: 1, EscortID: 10},
			{OrderID: 1, EscortID: 11},
			{OrderID: 1, EscortID: 12},
		}
		// 1000 - 20% commission = 800 pool; 800/3 = 266 rem 2.
		wantAmounts := map[int]int64{10: 268, 11: 266, 12: 266}

		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 1).Return(order, nil)
		m.ledgerRepo.EXPECT().FindPayoutsByOrder(gomock.Any(), 1).Return(nil, nil)
		m.orderRepo.EXPECT().FindAssignments(gomock.Any(), 1).Return(assignments, nil)
		m.ledgerRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payout) (*domain.Payout, error) {
				assert.Equal(t, wantAmounts[p.EscortID], p.Amount)
				assert.Equal(t, int64(200), p.Commission)
				assert.NotEmpty(t, p.Reference)
				return p, nil
			}).Times(3)
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(3)
		m.ledgerRepo.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr *domain.Transaction) error {
				assert.Equal(t, wantAmounts[tr.EscortID], tr.Amount)
				assert.Equal(t, domain.PayoutTransaction, tr.Type)
				return nil
			}).Times(3)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		payouts, commission, err := service.SettleOrder(context.Background(), 1)
		assert.NoError(t, err)
		assert.Len(t, payouts, 3)
		assert.Equal(t, int64(200), commission)

		var total int64
		for _, p := range payouts {
			total += p.Amount
		}
		assert.Equal(t, order.Amount, total+commission)
	})

	t.Run("Credits squad aggregates when order has a squad", func(t *testing.T) {
		service, m := NewMock(t, 20)
		squadID := 5
		order := &domain.Order{ID: 2, MemoID: "memo-2", Amount: 1000, SquadID: &squadID}

		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 2).Return(order, nil)
		m.ledgerRepo.EXPECT().FindPayoutsByOrder(gomock.Any(), 2).Return(nil, nil)
		m.orderRepo.EXPECT().FindAssignments(gomock.Any(), 2).
			Return([]domain.Assignment{{OrderID: 2, EscortID: 10}}, nil)
		m.ledgerRepo.EXPECT().CreatePayout(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p *domain.Payout) (*domain.Payout, error) { return p, nil })
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), 10).Return(int64(0), nil)
		m.ledgerRepo.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).Return(nil)
		m.squadRepo.EXPECT().RecordCompletion(gomock.Any(), 5, int64(800)).Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		_, commission, err := service.SettleOrder(context.Background(), 2)
		assert.NoError(t, err)
		assert.Equal(t, int64(200), commission)
	})

	t.Run("Already settled order returns existing payouts", func(t *testing.T) {
		service, m := NewMock(t, 20)
		order := &domain.Order{ID: 3, MemoID: "memo-3", Amount: 1000, Commission: 200}
		existing := []domain.Payout{{OrderID: 3, EscortID: 10, Amount: 800}}

		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 3).Return(order, nil)
		m.ledgerRepo.EXPECT().FindPayoutsByOrder(gomock.Any(), 3).Return(existing, nil)

		payouts, commission, err := service.SettleOrder(context.Background(), 3)
		assert.NoError(t, err)
		assert.Equal(t, existing, payouts)
		assert.Equal(t, int64(200), commission)
	})

	t.Run("No executors", func(t *testing.T) {
		service, m := NewMock(t, 20)
		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 4).
			Return(&domain.Order{ID: 4, Amount: 1000}, nil)
		m.ledgerRepo.EXPECT().FindPayoutsByOrder(gomock.Any(), 4).Return(nil, nil)
		m.orderRepo.EXPECT().FindAssignments(gomock.Any(), 4).Return(nil, nil)

		_, _, err := service.SettleOrder(context.Background(), 4)
		assert.ErrorIs(t, err, ErrNoExecutors)
	})

	t.Run("Order not found", func(t *testing.T) {
		service, m := NewMock(t, 20)
		m.orderRepo.EXPECT().FindByIDForUpdate(gomock.Any(), 5).Return(nil, nil)

		_, _, err := service.SettleOrder(context.Background(), 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestRequestWithdrawal(t *testing.T) {
	service, m := NewMock(t, 20)

	t.Run("Insufficient balance", func(t *testing.T) {
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), 1).Return(int64(500), nil)
		_, err := service.RequestWithdrawal(context.Background(), 1, 501, "4561261212345467")
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("Whole balance can be withdrawn", func(t *testing.T) {
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), 1).Return(int64(500), nil)
		m.ledgerRepo.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr *domain.Transaction) error {
				assert.Equal(t, int64(-500), tr.Amount)
				assert.Equal(t, domain.WithdrawalHoldTransaction, tr.Type)
				return nil
			})
		m.ledgerRepo.EXPECT().CreateWithdrawal(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, w *domain.Withdrawal) (*domain.Withdrawal, error) {
				assert.Equal(t, domain.PendingWithdrawalStatus, w.Status)
				w.ID = 42
				return w, nil
			})
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		withdrawal, err := service.RequestWithdrawal(context.Background(), 1, 500, "4561261212345467")
		assert.NoError(t, err)
		assert.Equal(t, 42, withdrawal.ID)
		assert.Equal(t, int64(500), withdrawal.Amount)
	})
}

func TestResolveWithdrawal(t *testing.T) {
	service, m := NewMock(t, 20)

	t.Run("Not found", func(t *testing.T) {
		m.ledgerRepo.EXPECT().FindWithdrawalForUpdate(gomock.Any(), 1).Return(nil, nil)
		_, err := service.ResolveWithdrawal(context.Background(), 1, true)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Already resolved", func(t *testing.T) {
		m.ledgerRepo.EXPECT().FindWithdrawalForUpdate(gomock.Any(), 2).
			Return(&domain.Withdrawal{ID: 2, Status: domain.ApprovedWithdrawalStatus}, nil)
		_, err := service.ResolveWithdrawal(context.Background(), 2, false)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("Approval keeps the hold", func(t *testing.T) {
		m.ledgerRepo.EXPECT().FindWithdrawalForUpdate(gomock.Any(), 3).
			Return(&domain.Withdrawal{ID: 3, EscortID: 1, Amount: 500, Status: domain.PendingWithdrawalStatus}, nil)
		m.ledgerRepo.EXPECT().UpdateWithdrawalStatus(gomock.Any(), 3, domain.ApprovedWithdrawalStatus, gomock.Any()).
			Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		withdrawal, err := service.ResolveWithdrawal(context.Background(), 3, true)
		assert.NoError(t, err)
		assert.Equal(t, domain.ApprovedWithdrawalStatus, withdrawal.Status)
		assert.NotNil(t, withdrawal.ProcessedAt)
	})

	t.Run("Rejection returns the held funds", func(t *testing.T) {
		m.ledgerRepo.EXPECT().FindWithdrawalForUpdate(gomock.Any(), 4).
			Return(&domain.Withdrawal{ID: 4, EscortID: 1, Amount: 500, Status: domain.PendingWithdrawalStatus}, nil)
		m.ledgerRepo.EXPECT().BalanceForUpdate(gomock.Any(), 1).Return(int64(0), nil)
		m.ledgerRepo.EXPECT().ApplyTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, tr *domain.Transaction) error {
				assert.Equal(t, int64(500), tr.Amount)
				assert.Equal(t, domain.WithdrawalRevertTransaction, tr.Type)
				return nil
			})
		m.ledgerRepo.EXPECT().UpdateWithdrawalStatus(gomock.Any(), 4, domain.RejectedWithdrawalStatus, gomock.Any()).
			Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		withdrawal, err := service.ResolveWithdrawal(context.Background(), 4, false)
		assert.NoError(t, err)
		assert.Equal(t, domain.RejectedWithdrawalStatus, withdrawal.Status)
	})
}

func TestCheckBalance(t *testing.T) {
	service, m := NewMock(t, 20)

	t.Run("Projection matches the ledger", func(t *testing.T) {
		m.ledgerRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(700), nil)
		m.ledgerRepo.EXPECT().SumTransactions(gomock.Any(), 1).Return(int64(700), nil)
		balance, sum, err := service.CheckBalance(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, balance, sum)
	})

	t.Run("Error fetching balance", func(t *testing.T) {
		m.ledgerRepo.EXPECT().GetBalance(gomock.Any(), 1).Return(int64(0), errors.New("db error"))
		_, _, err := service.CheckBalance(context.Background(), 1)
		assert.Error(t, err)
	})
}
