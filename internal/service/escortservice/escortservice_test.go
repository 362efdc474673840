package escortservice

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/domain"
)

func NewMock(t *testing.T) (*Service, *MockRepo) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepo(ctrl)
	service := New(repo)
	defer ctrl.Finish()
	return service, repo
}

func TestRegister(t *testing.T) {
	service, repo := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "First contact creates the profile",
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, e *domain.Escort) (*domain.Escort, error) {
						assert.Equal(t, int64(100), e.ExternalID)
						assert.Equal(t, "alice", e.Username)
						e.ID = 1
						return e, nil
					})
			},
		},
		{
			name: "Save error",
			prepareMock: func() {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			escort, err := service.Register(context.Background(), 100, "alice")
			if tt.expectedError != nil {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, escort.ID)
			}
		})
	}
}

func TestGetByExternalID(t *testing.T) {
	t.Run("Unknown escort", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).Return(nil, nil)

		_, err := service.GetByExternalID(context.Background(), 100)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Second lookup hits the cache", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, Username: "alice"}, nil).Times(1)

		first, err := service.GetByExternalID(context.Background(), 100)
		assert.NoError(t, err)

		second, err := service.GetByExternalID(context.Background(), 100)
		assert.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "alice", second.Username)
	})

	t.Run("Register invalidates the cached profile", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, Username: "alice"}, nil)
		_, err := service.GetByExternalID(context.Background(), 100)
		assert.NoError(t, err)

		repo.EXPECT().Save(gomock.Any(), gomock.Any()).
			Return(&domain.Escort{ID: 1, ExternalID: 100, Username: "bob"}, nil)
		_, err = service.Register(context.Background(), 100, "bob")
		assert.NoError(t, err)

		repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100, Username: "bob"}, nil)
		escort, err := service.GetByExternalID(context.Background(), 100)
		assert.NoError(t, err)
		assert.Equal(t, "bob", escort.Username)
	})
}

func TestAcceptRules(t *testing.T) {
	t.Run("Unknown escort", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).Return(nil, nil)

		err := service.AcceptRules(context.Background(), 100)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Flips the flag", func(t *testing.T) {
		service, repo := NewMock(t)
		repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
			Return(&domain.Escort{ID: 1, ExternalID: 100}, nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e *domain.Escort) error {
				assert.True(t, e.RulesAccepted)
				return nil
			})

		err := service.AcceptRules(context.Background(), 100)
		assert.NoError(t, err)
	})
}

func TestSetGameID(t *testing.T) {
	service, repo := NewMock(t)
	repo.EXPECT().FindByExternalID(gomock.Any(), int64(100)).
		Return(&domain.Escort{ID: 1, ExternalID: 100}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.Escort) error {
			assert.Equal(t, "pilot-7", e.GameID)
			return nil
		})

	err := service.SetGameID(context.Background(), 100, "pilot-7")
	assert.NoError(t, err)
}
