package authservice

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/pkg/auth"
)

type Repo interface {
	FindByLogin(ctx context.Context, login string) (*domain.Operator, error)
	Save(ctx context.Context, op *domain.Operator) error
}

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	operatorRepo Repo
	hashService  auth.HashServiceInterface
	jwtService   auth.JWTServiceInterface
}

func New(repo Repo, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		operatorRepo: repo,
		hashService:  hashService,
		jwtService:   jwtService,
	}
}

// Bootstrap seeds the initial operator account. Existing logins keep their
// password, so restarts are safe.
func (s *Service) Bootstrap(ctx context.Context, login, password string) error {
	hashedPassword, err := s.hashService.HashPassword(password)
	if err != nil {
		zap.L().Error("can't hash bootstrap password: ", zap.Error(err))
		return err
	}
	return s.operatorRepo.Save(ctx, &domain.Operator{
		Login:        login,
		PasswordHash: hashedPassword,
	})
}

func (s *Service) Authenticate(ctx context.Context, login, password string) (*domain.Operator, error) {
	operator, err := s.operatorRepo.FindByLogin(ctx, login)
	if err != nil || operator == nil {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	if ok := s.hashService.ComparePassword(operator.PasswordHash, password); !ok {
		zap.L().Info("invalid credentials", zap.String("login", login))
		return nil, ErrInvalidCredentials
	}
	zap.L().Info("operator successfully authenticated", zap.String("login", login))
	return operator, nil
}

func (s *Service) GenerateToken(operatorID int) (string, error) {
	expirationTime := time.Now().Add(12 * time.Hour)

	token, err := s.jwtService.GenerateJWT(operatorID, expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}
