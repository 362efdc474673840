package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/memomarket/escortd/docs"
	audithandlers "github.com/memomarket/escortd/internal/handlers/audit"
	authhandlers "github.com/memomarket/escortd/internal/handlers/auth"
	escorthandlers "github.com/memomarket/escortd/internal/handlers/escorts"
	ledgerhandlers "github.com/memomarket/escortd/internal/handlers/ledger"
	orderhandlers "github.com/memomarket/escortd/internal/handlers/orders"
	squadhandlers "github.com/memomarket/escortd/internal/handlers/squads"
	"github.com/memomarket/escortd/internal/service"
	"github.com/memomarket/escortd/pkg/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Apply(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	AutoAssign(w http.ResponseWriter, r *http.Request)
	Start(w http.ResponseWriter, r *http.Request)
	Complete(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
}

type EscortHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	AcceptRules(w http.ResponseWriter, r *http.Request)
	SetGameID(w http.ResponseWriter, r *http.Request)
	Ban(w http.ResponseWriter, r *http.Request)
	Restrict(w http.ResponseWriter, r *http.Request)
}

type LedgerHandler interface {
	Balance(w http.ResponseWriter, r *http.Request)
	RequestWithdrawal(w http.ResponseWriter, r *http.Request)
	ResolveWithdrawal(w http.ResponseWriter, r *http.Request)
	Withdrawals(w http.ResponseWriter, r *http.Request)
	Payouts(w http.ResponseWriter, r *http.Request)
}

type SquadHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Join(w http.ResponseWriter, r *http.Request)
	Leave(w http.ResponseWriter, r *http.Request)
	Disband(w http.ResponseWriter, r *http.Request)
	Roster(w http.ResponseWriter, r *http.Request)
}

type AuditHandler interface {
	FileComplaint(w http.ResponseWriter, r *http.Request)
	OrderActions(w http.ResponseWriter, r *http.Request)
	EscortActions(w http.ResponseWriter, r *http.Request)
	EscortComplaints(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler   AuthHandler
	OrderHandler  OrderHandler
	EscortHandler EscortHandler
	LedgerHandler LedgerHandler
	SquadHandler  SquadHandler
	AuditHandler  AuditHandler

	jwtService auth.JWTServiceInterface
}

func New(s *service.Services, jwtService auth.JWTServiceInterface) *Handlers {
	return &Handlers{
		AuthHandler:   authhandlers.New(s.AuthService),
		OrderHandler:  orderhandlers.New(s.OrderService, s.AssignmentService),
		EscortHandler: escorthandlers.New(s.EscortService, s.ReputationService),
		LedgerHandler: ledgerhandlers.New(s.LedgerService, s.EscortService, s.OrderService),
		SquadHandler:  squadhandlers.New(s.SquadService),
		AuditHandler:  audithandlers.New(s.AuditService, s.EscortService, s.OrderService),
		jwtService:    jwtService,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware(h.jwtService))
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.Create)
				r.Get("/", h.OrderHandler.List)
				r.Route("/{memoID}", func(r chi.Router) {
					r.Get("/", h.OrderHandler.Get)
					r.Post("/apply", h.OrderHandler.Apply)
					r.Post("/assign", h.OrderHandler.Assign)
					r.Post("/auto-assign", h.OrderHandler.AutoAssign)
					r.Post("/start", h.OrderHandler.Start)
					r.Post("/complete", h.OrderHandler.Complete)
					r.Post("/cancel", h.OrderHandler.Cancel)
					r.Get("/payouts", h.LedgerHandler.Payouts)
					r.Get("/actions", h.AuditHandler.OrderActions)
				})
			})
			r.Route("/escorts", func(r chi.Router) {
				r.Post("/", h.EscortHandler.Register)
				r.Route("/{externalID}", func(r chi.Router) {
					r.Get("/", h.EscortHandler.Get)
					r.Post("/accept-rules", h.EscortHandler.AcceptRules)
					r.Post("/game-id", h.EscortHandler.SetGameID)
					r.Post("/ban", h.EscortHandler.Ban)
					r.Post("/restrict", h.EscortHandler.Restrict)
					r.Get("/balance", h.LedgerHandler.Balance)
					r.Post("/withdrawals", h.LedgerHandler.RequestWithdrawal)
					r.Get("/withdrawals", h.LedgerHandler.Withdrawals)
					r.Get("/actions", h.AuditHandler.EscortActions)
					r.Get("/complaints", h.AuditHandler.EscortComplaints)
				})
			})
			r.Post("/withdrawals/{id}/resolve", h.LedgerHandler.ResolveWithdrawal)
			r.Route("/squads", func(r chi.Router) {
				r.Post("/", h.SquadHandler.Create)
				r.Post("/leave", h.SquadHandler.Leave)
				r.Route("/{name}", func(r chi.Router) {
					r.Get("/", h.SquadHandler.Get)
					r.Delete("/", h.SquadHandler.Disband)
					r.Post("/join", h.SquadHandler.Join)
					r.Get("/roster", h.SquadHandler.Roster)
				})
			})
			r.Post("/complaints", h.AuditHandler.FileComplaint)
		})
	})

	return r
}
