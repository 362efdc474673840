package repo

import (
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/memomarket/escortd/internal/pg"
	actionlogrepo "github.com/memomarket/escortd/internal/repo/actionlog-repo"
	escortrepo "github.com/memomarket/escortd/internal/repo/escort-repo"
	ledgerrepo "github.com/memomarket/escortd/internal/repo/ledger-repo"
	operatorrepo "github.com/memomarket/escortd/internal/repo/operator-repo"
	orderrepo "github.com/memomarket/escortd/internal/repo/order-repo"
	squadrepo "github.com/memomarket/escortd/internal/repo/squad-repo"
)

func NewMock(t *testing.T) (*Repositories, pgxmock.PgxPoolIface) {
	ctrl := gomock.NewController(t)
	mockDB, err := pgxmock.NewPool()
	mockTxManager := pg.NewMockTXManager(ctrl)
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()

	return repo, mockDB
}

func TestNew(t *testing.T) {
	repo, mock := NewMock(t)

	assert.NotNil(t, repo.EscortRepo)
	assert.NotNil(t, repo.SquadRepo)
	assert.NotNil(t, repo.OrderRepo)
	assert.NotNil(t, repo.LedgerRepo)
	assert.NotNil(t, repo.ActionLogRepo)
	assert.NotNil(t, repo.OperatorRepo)

	assert.IsType(t, &escortrepo.Repository{}, repo.EscortRepo)
	assert.IsType(t, &squadrepo.Repository{}, repo.SquadRepo)
	assert.IsType(t, &orderrepo.Repository{}, repo.OrderRepo)
	assert.IsType(t, &ledgerrepo.Repository{}, repo.LedgerRepo)
	assert.IsType(t, &actionlogrepo.Repository{}, repo.ActionLogRepo)
	assert.IsType(t, &operatorrepo.Repository{}, repo.OperatorRepo)

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unmet expectations: %v", err)
	}
}
