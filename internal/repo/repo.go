package repo

import (
	"github.com/memomarket/escortd/internal/pg"
	actionlogrepo "github.com/memomarket/escortd/internal/repo/actionlog-repo"
	escortrepo "github.com/memomarket/escortd/internal/repo/escort-repo"
	ledgerrepo "github.com/memomarket/escortd/internal/repo/ledger-repo"
	operatorrepo "github.com/memomarket/escortd/internal/repo/operator-repo"
	orderrepo "github.com/memomarket/escortd/internal/repo/order-repo"
	squadrepo "github.com/memomarket/escortd/internal/repo/squad-repo"
)

type Repositories struct {
	EscortRepo    *escortrepo.Repository
	SquadRepo     *squadrepo.Repository
	OrderRepo     *orderrepo.Repository
	LedgerRepo    *ledgerrepo.Repository
	ActionLogRepo *actionlogrepo.Repository
	OperatorRepo  *operatorrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		EscortRepo:    escortrepo.New(conn),
		SquadRepo:     squadrepo.New(conn),
		OrderRepo:     orderrepo.New(conn, txManager),
		LedgerRepo:    ledgerrepo.New(conn, txManager),
		ActionLogRepo: actionlogrepo.New(conn),
		OperatorRepo:  operatorrepo.New(conn),
	}
}
