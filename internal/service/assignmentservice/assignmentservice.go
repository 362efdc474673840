package assignmentservice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/pg"
)

type OrderRepo interface {
	FindByMemoID(ctx context.Context, memoID string) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, id int) (*domain.Order, error)
	CreateApplication(ctx context.Context, app *domain.Application) error
	FindApplications(ctx context.Context, orderID int) ([]domain.Application, error)
	SetAssigned(ctx context.Context, id int, squadID *int) (bool, error)
	CreateAssignment(ctx context.Context, a *domain.Assignment) error
}

type EscortRepo interface {
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
	FindByID(ctx context.Context, id int) (*domain.Escort, error)
}

type ActionLogRepo interface {
	Append(ctx context.Context, entry *domain.ActionLogEntry) error
}

// EarliestAssignPolicy resolves ties by earliest application timestamp.
const EarliestAssignPolicy = "earliest"

var (
	ErrRulesNotAccepted    = errors.New("escort has not accepted the rules")
	ErrCrewSize            = errors.New("crew size out of bounds")
	ErrNotEnoughApplicants = errors.New("not enough applications to auto-assign")
	ErrUnknownAssignPolicy = errors.New("unknown assignment policy")
)

type Service struct {
	orderRepo     OrderRepo
	escortRepo    EscortRepo
	actionLogRepo ActionLogRepo
	txManager     pg.TXManager
	minCrew       int
	maxCrew       int
	policy        string
}

func New(orderRepo OrderRepo, escortRepo EscortRepo, actionLogRepo ActionLogRepo, txManager pg.TXManager, minCrew, maxCrew int, policy string) *Service {
	return &Service{
		orderRepo:     orderRepo,
		escortRepo:    escortRepo,
		actionLogRepo: actionLogRepo,
		txManager:     txManager,
		minCrew:       minCrew,
		maxCrew:       maxCrew,
		policy:        policy,
	}
}

// Apply records the escort's request to execute the order, snapshotting the
// escort's squad and game id at application time.
func (s *Service) Apply(ctx context.Context, memoID string, externalID int64) (*domain.Application, error) {
	escort, err := s.escortRepo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if escort == nil {
		return nil, domain.ErrNotFound
	}
	if escort.Restricted(time.Now()) {
		zap.L().Info("restricted escort tried to apply", zap.Int64("externalID", externalID))
		return nil, domain.ErrWorkerRestricted
	}
	if !escort.RulesAccepted {
		return nil, ErrRulesNotAccepted
	}

	order, err := s.orderRepo.FindByMemoID(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.Status != domain.OpenOrderStatus {
		return nil, domain.ErrOrderNotOpen
	}

	app := &domain.Application{
		OrderID:   order.ID,
		EscortID:  escort.ID,
		SquadID:   escort.SquadID,
		GameID:    escort.GameID,
		AppliedAt: time.Now(),
	}
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		if err := s.orderRepo.CreateApplication(ctx, app); err != nil {
			return err
		}
		return s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
			ActionType:  "apply",
			EscortID:    &escort.ID,
			OrderID:     &order.ID,
			Description: fmt.Sprintf("escort %d applied to order %s", escort.ExternalID, order.MemoID),
			CreatedAt:   time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// Assign makes the chosen applicants the exclusive executors of the order.
// The open→assigned compare-and-swap guarantees exactly one concurrent
// winner; losers get ErrAlreadyAssigned.
func (s *Service) Assign(ctx context.Context, memoID string, externalIDs []int64) ([]domain.Assignment, error) {
	if len(externalIDs) < s.minCrew || len(externalIDs) > s.maxCrew {
		return nil, ErrCrewSize
	}

	var assignments []domain.Assignment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.lockOpenOrder(ctx, memoID)
		if err != nil {
			return err
		}

		apps, err := s.orderRepo.FindApplications(ctx, order.ID)
		if err != nil {
			return err
		}
		applied := make(map[int]*domain.Application, len(apps))
		for i := range apps {
			applied[apps[i].EscortID] = &apps[i]
		}

		crew := make([]*domain.Application, 0, len(externalIDs))
		now := time.Now()
		for _, externalID := range externalIDs {
			escort, err := s.escortRepo.FindByExternalID(ctx, externalID)
			if err != nil {
				return err
			}
			if escort == nil {
				return domain.ErrNotFound
			}
			// A ban that started after the application still blocks assignment.
			if escort.Restricted(now) {
				return domain.ErrWorkerRestricted
			}
			app, ok := applied[escort.ID]
			if !ok {
				return domain.ErrNoSuchApplication
			}
			crew = append(crew, app)
		}

		assignments, err = s.assign(ctx, order, crew)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// AutoAssign picks the executors without an explicit selection. Under the
// earliest policy the oldest application wins and its squad mates fill the
// crew in application order.
func (s *Service) AutoAssign(ctx context.Context, memoID string) ([]domain.Assignment, error) {
	if s.policy != EarliestAssignPolicy {
		return nil, ErrUnknownAssignPolicy
	}

	var assignments []domain.Assignment
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		order, err := s.lockOpenOrder(ctx, memoID)
		if err != nil {
			return err
		}

		apps, err := s.orderRepo.FindApplications(ctx, order.ID)
		if err != nil {
			return err
		}
		if len(apps) == 0 {
			return ErrNotEnoughApplicants
		}

		winner := apps[0]
		crew := make([]*domain.Application, 0, s.maxCrew)
		now := time.Now()
		for i := range apps {
			if !sameSquad(apps[i].SquadID, winner.SquadID) {
				continue
			}
			escort, err := s.escortRepo.FindByID(ctx, apps[i].EscortID)
			if err != nil {
				return err
			}
			if escort == nil || escort.Restricted(now) {
				continue
			}
			crew = append(crew, &apps[i])
			if len(crew) == s.maxCrew {
				break
			}
		}
		if len(crew) < s.minCrew {
			return ErrNotEnoughApplicants
		}

		assignments, err = s.assign(ctx, order, crew)
		return err
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *Service) lockOpenOrder(ctx context.Context, memoID string) (*domain.Order, error) {
	order, err := s.orderRepo.FindByMemoID(ctx, memoID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	order, err = s.orderRepo.FindByIDForUpdate(ctx, order.ID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	switch order.Status {
	case domain.OpenOrderStatus:
		return order, nil
	case domain.AssignedOrderStatus, domain.InProgressOrderStatus:
		return nil, domain.ErrAlreadyAssigned
	default:
		return nil, domain.ErrOrderNotOpen
	}
}

func (s *Service) assign(ctx context.Context, order *domain.Order, crew []*domain.Application) ([]domain.Assignment, error) {
	squadID := crew[0].SquadID
	for _, app := range crew {
		if !sameSquad(app.SquadID, squadID) {
			squadID = nil
			break
		}
	}

	won, err := s.orderRepo.SetAssigned(ctx, order.ID, squadID)
	if err != nil {
		return nil, err
	}
	if !won {
		return nil, domain.ErrAlreadyAssigned
	}

	now := time.Now()
	assignments := make([]domain.Assignment, 0, len(crew))
	for _, app := range crew {
		a := domain.Assignment{
			OrderID:    order.ID,
			EscortID:   app.EscortID,
			AssignedAt: now,
		}
		if err := s.orderRepo.CreateAssignment(ctx, &a); err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	err = s.actionLogRepo.Append(ctx, &domain.ActionLogEntry{
		ActionType:  "assign",
		OrderID:     &order.ID,
		Description: fmt.Sprintf("order %s assigned to %d executors", order.MemoID, len(crew)),
		CreatedAt:   now,
	})
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func sameSquad(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
