package reputationservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type EscortRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Escort, error)
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
	UpdateReputation(ctx context.Context, id int, rating float64, ratingCount int) error
	UpdateRestrictions(ctx context.Context, id int, banUntil, restrictUntil *time.Time) error
}

type SquadRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Squad, error)
	UpdateReputation(ctx context.Context, id int, rating float64, ratingCount int) error
}

type OrderRepo interface {
	FindByID(ctx context.Context, id int) (*domain.Order, error)
	FindAssignments(ctx context.Context, orderID int) ([]domain.Assignment, error)
}

type ActionLogRepo interface {
	Append(ctx context.Context, entry *domain.ActionLogEntry) error
}

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Service struct {
	escortRepo    EscortRepo
	squadRepo     SquadRepo
	orderRepo     OrderRepo
	actionLogRepo ActionLogRepo
	txManager     pg.TXManager
}

func New(escortRepo EscortRepo, squadRepo SquadRepo, orderRepo OrderRepo, actionLogRepo ActionLogRepo, txManager pg.TXManager) *Service {
	return &Service{
		escortRepo:    escortRepo,
		squadRepo:     squadRepo,
		orderRepo:     orderRepo,
		actionLogRepo: actionLogRepo,
		txManager:     txManager,
	}
}

// RecordRating folds the score into the running average of every executor
// and, once, of the order's squad.
func (s *Service) RecordRating(ctx context.Context, orderID, score int) error {
	if score < 1 || score > 5 {
		return ErrInvalidRating
	}
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.orderRepo.FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if order == nil {
			return domain.ErrNotFound
		}

		assignments, err := s.orderRepo.FindAssignments(ctx, orderID)
		if err != nil {
			return err
		}
		for _, a := range assignments {
			escort, err := s.escortRepo.FindByID(ctx, a.EscortID)
			if err != nil {
				return err
			}
			if escort == nil {
				return domain.ErrNotFound
			}
			rating, count := fold(escort.Rating, escort.RatingCount, score)
			if err := s.escortRepo.UpdateReputation(ctx, escort.ID, rating, count); err != nil {
				return err
			}
		}

		if order.SquadID != nil {
			squad, err := s.squadRepo.FindByID(ctx, *order.SquadID)
			if err != nil {
				return err
			}
			if squad != nil {
				rating, count := fold(squad.Rating, squad.RatingCount, score)
				if err := s.squadRepo.UpdateReputation(ctx, squad.ID, rating, count); err != nil {
					return err
				}
			}
		}

		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "record_rating",
			OrderID:     &orderID,
			Description: fmt.Sprintf("order %s rated %d", order.MemoID, score),
			CreatedAt:   time.Now(),
		})
	})
}

func fold(avg float64, count, score int) (float64, int) {
	return (avg*float64(count) + float64(score)) / float64(count+1), count + 1
}

// Ban blocks the escort from applying and being assigned until the given
// moment. A nil until lifts the ban.
func (s *Service) Ban(ctx context.Context, externalID int64, until *time.Time) error {
	return s.restrict(ctx, externalID, "ban", until)
}

// Restrict works like Ban but is meant for softer, always time-bounded
// limitations.
func (s *Service) Restrict(ctx context.Context, externalID int64, until *time.Time) error {
	return s.restrict(ctx, externalID, "restrict", until)
}

func (s *Service) restrict(ctx context.Context, externalID int64, kind string, until *time.Time) error {
	escort, err := s.escortRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if escort == nil {
		return domain.ErrNotFound
	}

	banUntil, restrictUntil := escort.BanUntil, escort.RestrictUntil
	if kind == "ban" {
		banUntil = until
	} else {
		restrictUntil = until
	}

	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.escortRepo.UpdateRestrictions(ctx, escort.ID, banUntil, restrictUntil); err != nil {
			return err
		}
		desc := fmt.Sprintf("%s lifted for escort %d", kind, externalID)
		if until != nil {
			desc = fmt.Sprintf("escort %d %sed until %s", externalID, kind, until.Format(time.RFC3339))
		}
		zap.L().Info("escort restriction updated", zap.Int64("externalID", externalID), zap.String("kind", kind))
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  kind,
			EscortID:    &escort.ID,
			Description: desc,
			CreatedAt:   time.Now(),
		})
	})
}
