package authservice

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/pkg/auth"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo, &auth.HashService{}, auth.NewJWTService("test-secret"))
	defer ctrl.Finish()
	return service, repo
}

func TestBootstrap(t *testing.T) {
	t.Run("Seeds the operator with a hashed password", func(t *testing.T) {
		service, repo := NewMock(t)
		hashService := &auth.HashService{}
		repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, op *domain.Operator) error {
				assert.Equal(t, "admin", op.Login)
				assert.NotEqual(t, "hunter2", op.PasswordHash)
				assert.True(t, hashService.ComparePassword(op.PasswordHash, "hunter2"))
				return nil
			})

		err := service.Bootstrap(context.Background(), "admin", "hunter2")
		assert.NoError(t, err)
	})

	t.Run("Empty password", func(t *testing.T) {
		service, _ := NewMock(t)
		err := service.Bootstrap(context.Background(), "admin", "")
		assert.Error(t, err)
	})
}

func TestAuthenticate(t *testing.T) {
	hashService := &auth.HashService{}
	hash, err := hashService.HashPassword("hunter2")
	assert.NoError(t, err)

	tests := []struct {
		name          string
		password      string
		prepareMock   func(repo *MockRepo)
		expectedError error
	}{
		{
			name:     "Unknown login",
			password: "hunter2",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").Return(nil, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Wrong password",
			password: "wrong",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").
					Return(&domain.Operator{ID: 1, Login: "admin", PasswordHash: hash}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "Success",
			password: "hunter2",
			prepareMock: func(repo *MockRepo) {
				repo.EXPECT().FindByLogin(gomock.Any(), "admin").
					Return(&domain.Operator{ID: 1, Login: "admin", PasswordHash: hash}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, repo := NewMock(t)
			tt.prepareMock(repo)

			operator, err := service.Authenticate(context.Background(), "admin", tt.password)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, operator.ID)
			}
		})
	}
}

func TestGenerateToken(t *testing.T) {
	service, _ := NewMock(t)

	token, err := service.GenerateToken(1)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := auth.NewJWTService("test-secret").ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, 1, claims.OperatorID)

	_, err = auth.NewJWTService("other-secret").ValidateToken(token)
	assert.Error(t, err)
}
