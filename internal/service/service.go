package service

import (
	"github.com/memomarket/escortd/internal/config"
	"github.com/memomarket/escortd/internal/pg"
	"github.com/memomarket/escortd/internal/repo"
	"github.com/memomarket/escortd/internal/service/assignmentservice"
	"github.com/memomarket/escortd/internal/service/auditservice"
	"github.com/memomarket/escortd/internal/service/authservice"
	"github.com/memomarket/escortd/internal/service/escortservice"
	"github.com/memomarket/escortd/internal/service/ledgerservice"
	"github.com/memomarket/escortd/internal/service/orderservice"
	"github.com/memomarket/escortd/internal/service/reputationservice"
	"github.com/memomarket/escortd/internal/service/squadservice"

	pkgauth "github.com/memomarket/escortd/pkg/auth"
)

type Services struct {
	AuthService       *authservice.Service
	EscortService     *escortservice.Service
	SquadService      *squadservice.Service
	OrderService      *orderservice.Service
	AssignmentService *assignmentservice.Service
	LedgerService     *ledgerservice.Service
	ReputationService *reputationservice.Service
	AuditService      *auditservice.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, cfg *config.Config) *Services {
	ledgerService := ledgerservice.New(repo.LedgerRepo, repo.OrderRepo, repo.SquadRepo, repo.ActionLogRepo, txManager, cfg.CommissionRate)
	reputationService := reputationservice.New(repo.EscortRepo, repo.SquadRepo, repo.OrderRepo, repo.ActionLogRepo, txManager)
	orderService := orderservice.New(repo.OrderRepo, repo.EscortRepo, repo.ActionLogRepo, ledgerService, reputationService, txManager)
	assignmentService := assignmentservice.New(repo.OrderRepo, repo.EscortRepo, repo.ActionLogRepo, txManager, cfg.MinCrew, cfg.MaxCrew, cfg.AssignPolicy)
	escortService := escortservice.New(repo.EscortRepo)
	squadService := squadservice.New(repo.SquadRepo, repo.EscortRepo, txManager, cfg.SquadCapacity)
	auditService := auditservice.New(repo.ActionLogRepo)
	authService := authservice.New(repo.OperatorRepo, &pkgauth.HashService{}, pkgauth.NewJWTService(cfg.JWTSecret))

	return &Services{
		AuthService:       authService,
		EscortService:     escortService,
		SquadService:      squadService,
		OrderService:      orderService,
		AssignmentService: assignmentService,
		LedgerService:     ledgerService,
		ReputationService: reputationService,
		AuditService:      auditService,
	}
}
