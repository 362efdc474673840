package escortservice

import (
	"context"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
)

const (
	cacheTTL     = 30 * time.Second
	cacheCleanup = 5 * time.Minute
)

type Repo interface {
	FindByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
	FindByID(ctx context.Context, id int) (*domain.Escort, error)
	Save(ctx context.Context, escort *domain.Escort) (*domain.Escort, error)
	Update(ctx context.Context, escort *domain.Escort) error
}

type Service struct {
	repo  Repo
	cache *gocache.Cache
}

func New(repo Repo) *Service {
	return &Service{
		repo:  repo,
		cache: gocache.New(cacheTTL, cacheCleanup),
	}
}

// Register creates the escort on first contact. Calling it again with the
// same external id refreshes the username and returns the existing profile.
func (s *Service) Register(ctx context.Context, externalID int64, username string) (*domain.Escort, error) {
	escort, err := s.repo.Save(ctx, &domain.Escort{
		ExternalID: externalID,
		Username:   username,
	})
	if err != nil {
		zap.L().Error("can't register escort", zap.Error(err))
		return nil, err
	}
	s.cache.Delete(cacheKey(externalID))
	return escort, nil
}

// GetByExternalID serves repeated profile lookups from a short-lived cache.
func (s *Service) GetByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error) {
	if cached, ok := s.cache.Get(cacheKey(externalID)); ok {
		escort := cached.(domain.Escort)
		return &escort, nil
	}
	escort, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return nil, err
	}
	if escort == nil {
		return nil, domain.ErrNotFound
	}
	s.cache.Set(cacheKey(externalID), *escort, gocache.DefaultExpiration)
	return escort, nil
}

func (s *Service) AcceptRules(ctx context.Context, externalID int64) error {
	return s.mutate(ctx, externalID, func(e *domain.Escort) {
		e.RulesAccepted = true
	})
}

func (s *Service) SetGameID(ctx context.Context, externalID int64, gameID string) error {
	return s.mutate(ctx, externalID, func(e *domain.Escort) {
		e.GameID = gameID
	})
}

func (s *Service) mutate(ctx context.Context, externalID int64, fn func(*domain.Escort)) error {
	escort, err := s.repo.FindByExternalID(ctx, externalID)
	if err != nil {
		return err
	}
	if escort == nil {
		return domain.ErrNotFound
	}
	fn(escort)
	if err := s.repo.Update(ctx, escort); err != nil {
		return err
	}
	s.cache.Delete(cacheKey(externalID))
	return nil
}

func cacheKey(externalID int64) string {
	return strconv.FormatInt(externalID, 10)
}
