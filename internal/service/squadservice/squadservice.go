package squadservice

import (
	"context"

	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type SquadRepo interface {
	Save(ctx context.Context, name string) (*domain.Squad, error)
	FindByName(ctx context.Context, name string) (*domain.Squad, error)
	FindByID(ctx context.Context, id int) (*domain.Squad, error)
	MemberCount(ctx context.Context, id int) (int, error)
	Delete(ctx context.Context, id int) error
}

type EscortRepo interface {
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
	FindBySquadID(ctx context.Context, squadID int) ([]domain.Escort, error)
	Update(ctx context.Context, escort *domain.Escort) error
}

type Service struct {
	squadRepo  SquadRepo
	escortRepo EscortRepo
	txManager  pg.TXManager
	capacity   int
}

func New(squadRepo SquadRepo, escortRepo EscortRepo, txManager pg.TXManager, capacity int) *Service {
	return &Service{
		squadRepo:  squadRepo,
		escortRepo: escortRepo,
		txManager:  txManager,
		capacity:   capacity,
	}
}

func (s *Service) Create(ctx context.Context, name string) (*domain.Squad, error) {
	squad, err := s.squadRepo.Save(ctx, name)
	if err != nil {
		return nil, err
	}
	zap.L().Info("squad created", zap.String("name", name))
	return squad, nil
}

func (s *Service) GetByName(ctx context.Context, name string) (*domain.Squad, error) {
	squad, err := s.squadRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if squad == nil {
		return nil, domain.ErrNotFound
	}
	return squad, nil
}

// Join adds the escort to the squad, respecting the member capacity. The
// count check and the membership write share a transaction so two racing
// joins cannot overfill the squad.
func (s *Service) Join(ctx context.Context, name string, externalID int64) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		squad, err := s.squadRepo.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if squad == nil {
			return domain.ErrNotFound
		}
		count, err := s.squadRepo.MemberCount(ctx, squad.ID)
		if err != nil {
			return err
		}
		if count >= s.capacity {
			return domain.ErrSquadFull
		}
		escort, err := s.escortRepo.FindByExternalID(ctx, externalID)
		if err != nil {
			return err
		}
		if escort == nil {
			return domain.ErrNotFound
		}
		escort.SquadID = &squad.ID
		return s.escortRepo.Update(ctx, escort)
	})
}

func (s *Service) Leave(ctx context.Context, externalID int64) error {
	escort, err := s.escortRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if escort == nil {
		return domain.ErrNotFound
	}
	escort.SquadID = nil
	return s.escortRepo.Update(ctx, escort)
}

// Disband detaches every member and removes the squad in one transaction.
func (s *Service) Disband(ctx context.Context, name string) error {
	return s.txManager.Begin(ctx, func(ctx context.Context) error {
		squad, err := s.squadRepo.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if squad == nil {
			return domain.ErrNotFound
		}
		members, err := s.escortRepo.FindBySquadID(ctx, squad.ID)
		if err != nil {
			return err
		}
		for i := range members {
			members[i].SquadID = nil
			if err := s.escortRepo.Update(ctx, &members[i]); err != nil {
				return err
			}
		}
		return s.squadRepo.Delete(ctx, squad.ID)
	})
}

func (s *Service) Roster(ctx context.Context, name string) ([]domain.Escort, error) {
	squad, err := s.squadRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if squad == nil {
		return nil, domain.ErrNotFound
	}
	return s.escortRepo.FindBySquadID(ctx, squad.ID)
}
