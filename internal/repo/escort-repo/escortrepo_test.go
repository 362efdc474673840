package escortrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/memomarket/escortd/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var escortRows = []string{"id", "external_id", "username", "game_id", "squad_id", "balance", "rating", "rating_count",
	"completed_orders", "ban_until", "restrict_until", "rules_accepted", "created_at"}

func TestRepository_FindByExternalID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name       string
		externalID int64
		mockSetup  func()
		expectErr  bool
		result     *domain.Escort
	}{
		{
			name:       "Escort exists",
			externalID: 100,
			mockSetup: func() {
				rows := pgxmock.NewRows(escortRows).
					AddRow(1, int64(100), "alice", "pilot-7", nil, int64(500), 4.5, 2, 3, nil, nil, true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs(int64(100)).
					WillReturnRows(rows)
			},
			result: &domain.Escort{
				ID:              1,
				ExternalID:      100,
				Username:        "alice",
				GameID:          "pilot-7",
				Balance:         500,
				Rating:          4.5,
				RatingCount:     2,
				CompletedOrders: 3,
				RulesAccepted:   true,
				CreatedAt:       timeNow,
			},
		},
		{
			name:       "Escort does not exist",
			externalID: 999,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs(int64(999)).
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name:       "Database error",
			externalID: 100,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE external_id = $1")).
					WithArgs(int64(100)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByExternalID(context.Background(), tt.externalID)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("First registration", func(t *testing.T) {
		rows := pgxmock.NewRows(escortRows).
			AddRow(1, int64(100), "alice", "", nil, int64(0), 0.0, 0, 0, nil, nil, false, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO escorts")).
			WithArgs(int64(100), "alice").
			WillReturnRows(rows)

		saved, err := repo.Save(context.Background(), &domain.Escort{ExternalID: 100, Username: "alice"})
		assert.NoError(t, err)
		assert.Equal(t, 1, saved.ID)
	})

	t.Run("Repeated registration keeps the row", func(t *testing.T) {
		rows := pgxmock.NewRows(escortRows).
			AddRow(1, int64(100), "bob", "pilot-7", nil, int64(500), 4.5, 2, 3, nil, nil, true, timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (external_id) DO UPDATE")).
			WithArgs(int64(100), "bob").
			WillReturnRows(rows)

		saved, err := repo.Save(context.Background(), &domain.Escort{ExternalID: 100, Username: "bob"})
		assert.NoError(t, err)
		assert.Equal(t, "bob", saved.Username)
		assert.Equal(t, int64(500), saved.Balance)
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO escorts")).
			WithArgs(int64(100), "alice").
			WillReturnError(errors.New("database error"))

		_, err := repo.Save(context.Background(), &domain.Escort{ExternalID: 100, Username: "alice"})
		assert.Error(t, err)
	})
}

func TestRepository_Update(t *testing.T) {
	repo, mock := NewMock(t)
	squadID := 7

	mock.ExpectExec(regexp.QuoteMeta("UPDATE escorts")).
		WithArgs("alice", "pilot-7", &squadID, true, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.Update(context.Background(), &domain.Escort{
		ID:            1,
		Username:      "alice",
		GameID:        "pilot-7",
		SquadID:       &squadID,
		RulesAccepted: true,
	})
	assert.NoError(t, err)
}

func TestRepository_UpdateRestrictions(t *testing.T) {
	repo, mock := NewMock(t)
	banUntil := time.Now().Add(48 * time.Hour)

	mock.ExpectExec(regexp.QuoteMeta("SET ban_until = $1, restrict_until = $2")).
		WithArgs(&banUntil, (*time.Time)(nil), 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateRestrictions(context.Background(), 1, &banUntil, nil)
	assert.NoError(t, err)
}

func TestRepository_UpdateReputation(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET rating = $1, rating_count = $2")).
		WithArgs(4.25, 4, 1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateReputation(context.Background(), 1, 4.25, 4)
	assert.NoError(t, err)
}

func TestRepository_IncrementCompletedOrders(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET completed_orders = completed_orders + 1")).
		WithArgs(1).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.IncrementCompletedOrders(context.Background(), 1)
	assert.NoError(t, err)
}

func TestRepository_FindBySquadID(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()
	squadID := 7

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    []domain.Escort
	}{
		{
			name: "Roster found",
			mockSetup: func() {
				rows := pgxmock.NewRows(escortRows).
					AddRow(1, int64(100), "alice", "", &squadID, int64(0), 0.0, 0, 0, nil, nil, true, timeNow).
					AddRow(2, int64(101), "bob", "", &squadID, int64(0), 0.0, 0, 0, nil, nil, true, timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE squad_id = $1")).
					WithArgs(7).
					WillReturnRows(rows)
			},
			result: []domain.Escort{
				{ID: 1, ExternalID: 100, Username: "alice", SquadID: &squadID, RulesAccepted: true, CreatedAt: timeNow},
				{ID: 2, ExternalID: 101, Username: "bob", SquadID: &squadID, RulesAccepted: true, CreatedAt: timeNow},
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE squad_id = $1")).
					WithArgs(7).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindBySquadID(context.Background(), 7)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}
