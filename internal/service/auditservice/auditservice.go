package auditservice

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
)

type Repo interface {
	FindByOrder(ctx context.Context, orderID int) ([]domain.ActionLogEntry, error)
	FindByEscort(ctx context.Context, escortID int) ([]domain.ActionLogEntry, error)
	CreateComplaint(ctx context.Context, c *domain.Complaint) (*domain.Complaint, error)
	FindComplaintsByEscort(ctx context.Context, escortID int) ([]domain.Complaint, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) ActionsByOrder(ctx context.Context, orderID int) ([]domain.ActionLogEntry, error) {
	entries, err := s.repo.FindByOrder(ctx, orderID)
	if err != nil {
		zap.L().Error("failed to get action log", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) ActionsByEscort(ctx context.Context, escortID int) ([]domain.ActionLogEntry, error) {
	entries, err := s.repo.FindByEscort(ctx, escortID)
	if err != nil {
		zap.L().Error("failed to get action log", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

func (s *Service) FileComplaint(ctx context.Context, escortID int, orderID *int, text string) (*domain.Complaint, error) {
	complaint, err := s.repo.CreateComplaint(ctx, &domain.Complaint{
		EscortID:  escortID,
		OrderID:   orderID,
		Text:      text,
		CreatedAt: time.Now(),
	})
	if err != nil {
		zap.L().Error("failed to file complaint", zap.Error(err))
		return nil, err
	}
	return complaint, nil
}

func (s *Service) ComplaintsByEscort(ctx context.Context, escortID int) ([]domain.Complaint, error) {
	return s.repo.FindComplaintsByEscort(ctx, escortID)
}
