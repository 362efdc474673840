package squadrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

var squadRows = []string{"id", "name", "rating", "rating_count", "completed_orders", "total_earned", "created_at"}

func TestRepository_Save(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	t.Run("Squad created", func(t *testing.T) {
		rows := pgxmock.NewRows(squadRows).
			AddRow(7, "night-watch", 0.0, 0, 0, int64(0), timeNow)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO squads")).
			WithArgs("night-watch").
			WillReturnRows(rows)

		squad, err := repo.Save(context.Background(), "night-watch")
		assert.NoError(t, err)
		assert.Equal(t, 7, squad.ID)
	})

	t.Run("Duplicate name", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO squads")).
			WithArgs("night-watch").
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		_, err := repo.Save(context.Background(), "night-watch")
		assert.ErrorIs(t, err, domain.ErrDuplicateSquad)
	})
}

func TestRepository_FindByName(t *testing.T) {
	repo, mock := NewMock(t)
	timeNow := time.Now()

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		result    *domain.Squad
	}{
		{
			name: "Squad exists",
			mockSetup: func() {
				rows := pgxmock.NewRows(squadRows).
					AddRow(7, "night-watch", 4.5, 2, 3, int64(2400), timeNow)
				mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1")).
					WithArgs("night-watch").
					WillReturnRows(rows)
			},
			result: &domain.Squad{
				ID:              7,
				Name:            "night-watch",
				Rating:          4.5,
				RatingCount:     2,
				CompletedOrders: 3,
				TotalEarned:     2400,
				CreatedAt:       timeNow,
			},
		},
		{
			name: "Squad does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1")).
					WithArgs("night-watch").
					WillReturnError(pgx.ErrNoRows)
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE name = $1")).
					WithArgs("night-watch").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByName(context.Background(), "night-watch")
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.result, result)
		})
	}
}

func TestRepository_MemberCount(t *testing.T) {
	repo, mock := NewMock(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(5)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*)")).
		WithArgs(7).
		WillReturnRows(rows)

	count, err := repo.MemberCount(context.Background(), 7)
	assert.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestRepository_UpdateReputation(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET rating = $1, rating_count = $2")).
		WithArgs(4.0, 5, 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateReputation(context.Background(), 7, 4.0, 5)
	assert.NoError(t, err)
}

func TestRepository_RecordCompletion(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("SET completed_orders = completed_orders + 1, total_earned = total_earned + $1")).
		WithArgs(int64(800), 7).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.RecordCompletion(context.Background(), 7, 800)
	assert.NoError(t, err)
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM squads")).
		WithArgs(7).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := repo.Delete(context.Background(), 7)
	assert.NoError(t, err)
}
