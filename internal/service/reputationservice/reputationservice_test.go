package reputationservice

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type mocks struct {
	escortRepo *MockEscortRepo
	squadRepo  *MockSquadRepo
	orderRepo  *MockOrderRepo
	actionLog  *MockActionLogRepo
	txManager  *pg.MockTXManager
}

func NewMock(t *testing.T) (*Service, *mocks) {
	ctrl := gomock.NewController(t)
	m := &mocks{
		escortRepo: NewMockEscortRepo(ctrl),
		squadRepo:  NewMockSquadRepo(ctrl),
		orderRepo:  NewMockOrderRepo(ctrl),
		actionLog:  NewMockActionLogRepo(ctrl),
		txManager:  pg.NewMockTXManager(ctrl),
	}
	m.txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(m.escortRepo, m.squadRepo, m.orderRepo, m.actionLog, m.txManager)
	defer ctrl.Finish()
	return service, m
}

func TestRecordRating(t *testing.T) {
	t.Run("Score out of range", func(t *testing.T) {
		service, _ := NewMock(t)
		assert.ErrorIs(t, service.RecordRating(context.Background(), 1, 0), ErrInvalidRating)
		assert.ErrorIs(t, service.RecordRating(context.Background(), 1, 6), ErrInvalidRating)
	})

	t.Run("Order not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).Return(nil, nil)

		err := service.RecordRating(context.Background(), 1, 5)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Folds the score into each executor's average", func(t *testing.T) {
		service, m := NewMock(t)
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).
			Return(&domain.Order{ID: 1, MemoID: "memo-1"}, nil)
		m.orderRepo.EXPECT().FindAssignments(gomock.Any(), 1).Return([]domain.Assignment{
			{OrderID: 1, EscortID: 10},
			{OrderID: 1, EscortID: 11},
		}, nil)
		// 4.0 over 3 ratings plus a 5 gives 4.25 over 4.
		m.escortRepo.EXPECT().FindByID(gomock.Any(), 10).
			Return(&domain.Escort{ID: 10, Rating: 4.0, RatingCount: 3}, nil)
		m.escortRepo.EXPECT().UpdateReputation(gomock.Any(), 10, 4.25, 4).Return(nil)
		// A first rating becomes the average itself.
		m.escortRepo.EXPECT().FindByID(gomock.Any(), 11).
			Return(&domain.Escort{ID: 11}, nil)
		m.escortRepo.EXPECT().UpdateReputation(gomock.Any(), 11, 5.0, 1).Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := service.RecordRating(context.Background(), 1, 5)
		assert.NoError(t, err)
	})

	t.Run("Squad average folds once per order", func(t *testing.T) {
		service, m := NewMock(t)
		squadID := 7
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).
			Return(&domain.Order{ID: 1, MemoID: "memo-1", SquadID: &squadID}, nil)
		m.orderRepo.EXPECT().FindAssignments(gomock.Any(), 1).Return([]domain.Assignment{
			{OrderID: 1, EscortID: 10},
			{OrderID: 1, EscortID: 11},
		}, nil)
		m.escortRepo.EXPECT().FindByID(gomock.Any(), 10).
			Return(&domain.Escort{ID: 10, Rating: 3.0, RatingCount: 1}, nil)
		m.escortRepo.EXPECT().UpdateReputation(gomock.Any(), 10, 3.5, 2).Return(nil)
		m.escortRepo.EXPECT().FindByID(gomock.Any(), 11).
			Return(&domain.Escort{ID: 11, Rating: 5.0, RatingCount: 1}, nil)
		m.escortRepo.EXPECT().UpdateReputation(gomock.Any(), 11, 4.5, 2).Return(nil)
		m.squadRepo.EXPECT().FindByID(gomock.Any(), 7).
			Return(&domain.Squad{ID: 7, Rating: 4.0, RatingCount: 4}, nil)
		m.squadRepo.EXPECT().UpdateReputation(gomock.Any(), 7, 4.0, 5).Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := service.RecordRating(context.Background(), 1, 4)
		assert.NoError(t, err)
	})

	t.Run("Disbanded squad is skipped", func(t *testing.T) {
		service, m := NewMock(t)
		squadID := 7
		m.orderRepo.EXPECT().FindByID(gomock.Any(), 1).
			Return(&domain.Order{ID: 1, MemoID: "memo-1", SquadID: &squadID}, nil)
		m.orderRepo.EXPECT().FindAssignments(gomock.Any(), 1).Return(nil, nil)
		m.squadRepo.EXPECT().FindByID(gomock.Any(), 7).Return(nil, nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := service.RecordRating(context.Background(), 1, 3)
		assert.NoError(t, err)
	})
}

func TestBanAndRestrict(t *testing.T) {
	t.Run("Escort not found", func(t *testing.T) {
		service, m := NewMock(t)
		m.escortRepo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).Return(nil, nil)

		err := service.Ban(context.Background(), 100, nil)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Ban keeps the restriction window intact", func(t *testing.T) {
		service, m := NewMock(t)
		restrictUntil := time.Now().Add(24 * time.Hour)
		banUntil := time.Now().Add(48 * time.Hour)
		m.escortRepo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, RestrictUntil: &restrictUntil}, nil)
		m.escortRepo.EXPECT().UpdateRestrictions(gomock.Any(), 1, &banUntil, &restrictUntil).Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := service.Ban(context.Background(), 100, &banUntil)
		assert.NoError(t, err)
	})

	t.Run("Nil until lifts the ban only", func(t *testing.T) {
		service, m := NewMock(t)
		restrictUntil := time.Now().Add(24 * time.Hour)
		banUntil := time.Now().Add(48 * time.Hour)
		m.escortRepo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, BanUntil: &banUntil, RestrictUntil: &restrictUntil}, nil)
		m.escortRepo.EXPECT().UpdateRestrictions(gomock.Any(), 1, (*time.Time)(nil), &restrictUntil).Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := service.Ban(context.Background(), 100, nil)
		assert.NoError(t, err)
	})

	t.Run("Restrict leaves the ban untouched", func(t *testing.T) {
		service, m := NewMock(t)
		banUntil := time.Now().Add(48 * time.Hour)
		restrictUntil := time.Now().Add(6 * time.Hour)
		m.escortRepo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, BanUntil: &banUntil}, nil)
		m.escortRepo.EXPECT().UpdateRestrictions(gomock.Any(), 1, &banUntil, &restrictUntil).Return(nil)
		m.actionLog.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

		err := service.Restrict(context.Background(), 100, &restrictUntil)
		assert.NoError(t, err)
	})
}
