package orders

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/dto"
	"github.com/memomarket/escortd/internal/service/assignmentservice"
	"github.com/memomarket/escortd/internal/service/orderservice"
	"github.com/memomarket/escortd/internal/service/reputationservice"
	"github.com/memomarket/escortd/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, memoID, customerInfo, description string, amount int64) (*domain.Order, error)
	Start(ctx context.Context, memoID string) (*domain.Order, error)
	Complete(ctx context.Context, memoID string, rating *int) (*domain.Order, error)
	Cancel(ctx context.Context, memoID string) (*domain.Order, error)
	GetByMemoID(ctx context.Context, memoID string) (*domain.Order, error)
	ListByStatus(ctx context.Context, status string) ([]domain.Order, error)
}

type AssignmentService interface {
	Apply(ctx context.Context, memoID string, externalID int64) (*domain.Application, error)
	Assign(ctx context.Context, memoID string, externalIDs []int64) ([]domain.Assignment, error)
	AutoAssign(ctx context.Context, memoID string) ([]domain.Assignment, error)
}

type OrderHandler struct {
	orderService      Service
	assignmentService AssignmentService
}

func New(orderService Service, assignmentService AssignmentService) *OrderHandler {
	return &OrderHandler{
		orderService:      orderService,
		assignmentService: assignmentService,
	}
}

// Create godoc
//
//	@Summary		Create order
//	@Description	Register a new escort order; repeating the same memo id returns the existing order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateOrderRequestDTO	true	"Order body"
//	@Success		200		{object}	dto.OrderResponseDTO	"Order already registered"
//	@Success		201		{object}	dto.OrderResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		422		{object}	utils.Response	"Non-positive amount"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders [post]
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateOrderRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.MemoID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Memo id is required")
		return
	}
	order, err := h.orderService.Create(r.Context(), req.MemoID, req.CustomerInfo, req.Description, req.Amount)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateOrder) {
			utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
			return
		}
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toOrderDTO(order))
}

// List godoc
//
//	@Summary		List orders
//	@Description	List orders, optionally filtered by status
//	@Tags			Orders
//	@Produce		json
//	@Param			status	query		string	false	"Order status filter"
//	@Success		200		{array}		dto.OrderResponseDTO
//	@Failure		422		{object}	utils.Response	"Unknown status"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderService.ListByStatus(r.Context(), r.URL.Query().Get("status"))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	resp := make([]dto.OrderResponseDTO, 0, len(orders))
	for i := range orders {
		resp = append(resp, toOrderDTO(&orders[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Get godoc
//
//	@Summary		Get order
//	@Description	Get a single order by its memo id
//	@Tags			Orders
//	@Produce		json
//	@Param			memoID	path		string	true	"Order memo id"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID} [get]
func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByMemoID(r.Context(), chi.URLParam(r, "memoID"))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Apply godoc
//
//	@Summary		Apply to order
//	@Description	File an escort's application to execute an open order
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			memoID	path		string				true	"Order memo id"
//	@Param			request	body		dto.ApplyRequestDTO	true	"Applicant"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order or escort not found"
//	@Failure		409		{object}	utils.Response	"Duplicate application or order not open"
//	@Failure		423		{object}	utils.Response	"Escort is banned or restricted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/apply [post]
func (h *OrderHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req dto.ApplyRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	_, err := h.assignmentService.Apply(r.Context(), chi.URLParam(r, "memoID"), req.EscortExternalID)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Application accepted"})
}

// Assign godoc
//
//	@Summary		Assign crew
//	@Description	Assign a crew of applicants to an open order, making it exclusive
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			memoID	path		string				true	"Order memo id"
//	@Param			request	body		dto.AssignRequestDTO	true	"Crew external ids"
//	@Success		200		{array}		dto.AssignmentResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Order, escort or application not found"
//	@Failure		409		{object}	utils.Response	"Order not open or already assigned"
//	@Failure		422		{object}	utils.Response	"Crew size out of bounds"
//	@Failure		423		{object}	utils.Response	"Escort is banned or restricted"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/assign [post]
func (h *OrderHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req dto.AssignRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	assignments, err := h.assignmentService.Assign(r.Context(), chi.URLParam(r, "memoID"), req.EscortExternalIDs)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAssignmentDTOs(assignments))
}

// AutoAssign godoc
//
//	@Summary		Auto-assign crew
//	@Description	Assign the earliest applicant's squad to an open order
//	@Tags			Orders
//	@Produce		json
//	@Param			memoID	path		string	true	"Order memo id"
//	@Success		200		{array}		dto.AssignmentResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Order not open or already assigned"
//	@Failure		422		{object}	utils.Response	"Not enough applicants"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/auto-assign [post]
func (h *OrderHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	assignments, err := h.assignmentService.AutoAssign(r.Context(), chi.URLParam(r, "memoID"))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toAssignmentDTOs(assignments))
}

// Start godoc
//
//	@Summary		Start order
//	@Description	Move an assigned order into execution
//	@Tags			Orders
//	@Produce		json
//	@Param			memoID	path		string	true	"Order memo id"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/start [post]
func (h *OrderHandler) Start(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Start(r.Context(), chi.URLParam(r, "memoID"))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Complete godoc
//
//	@Summary		Complete order
//	@Description	Complete an order, settle payouts to its crew and optionally record a rating
//	@Tags			Orders
//	@Accept			json
//	@Produce		json
//	@Param			memoID	path		string						true	"Order memo id"
//	@Param			request	body		dto.CompleteOrderRequestDTO	false	"Optional rating"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		422		{object}	utils.Response	"Invalid rating"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/complete [post]
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteOrderRequestDTO
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}
	order, err := h.orderService.Complete(r.Context(), chi.URLParam(r, "memoID"), req.Rating)
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

// Cancel godoc
//
//	@Summary		Cancel order
//	@Description	Cancel an open or assigned order without payouts
//	@Tags			Orders
//	@Produce		json
//	@Param			memoID	path		string	true	"Order memo id"
//	@Success		200		{object}	dto.OrderResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		409		{object}	utils.Response	"Invalid transition"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/cancel [post]
func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.Cancel(r.Context(), chi.URLParam(r, "memoID"))
	if err != nil {
		respondOrderError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toOrderDTO(order))
}

func respondOrderError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Order not found")
	case errors.Is(err, domain.ErrDuplicateApplication):
		utils.RespondWithError(w, http.StatusConflict, "Application already filed")
	case errors.Is(err, domain.ErrNoSuchApplication):
		utils.RespondWithError(w, http.StatusNotFound, "No application from this escort")
	case errors.Is(err, domain.ErrOrderNotOpen):
		utils.RespondWithError(w, http.StatusConflict, "Order is not open")
	case errors.Is(err, domain.ErrAlreadyAssigned):
		utils.RespondWithError(w, http.StatusConflict, "Order is already assigned")
	case errors.Is(err, domain.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, "Invalid order transition")
	case errors.Is(err, domain.ErrWorkerRestricted):
		utils.RespondWithError(w, http.StatusLocked, "Escort is banned or restricted")
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Concurrent update, retry the request")
	case errors.Is(err, orderservice.ErrNonPositiveAmount),
		errors.Is(err, orderservice.ErrUnknownStatus),
		errors.Is(err, assignmentservice.ErrRulesNotAccepted),
		errors.Is(err, assignmentservice.ErrCrewSize),
		errors.Is(err, assignmentservice.ErrNotEnoughApplicants),
		errors.Is(err, reputationservice.ErrInvalidRating):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toOrderDTO(order *domain.Order) dto.OrderResponseDTO {
	resp := dto.OrderResponseDTO{
		MemoID:       order.MemoID,
		CustomerInfo: order.CustomerInfo,
		Description:  order.Description,
		Amount:       order.Amount,
		Commission:   order.Commission,
		Status:       order.Status,
		CreatedAt:    order.CreatedAt.Format(time.RFC3339),
	}
	if order.FinishedAt != nil {
		resp.FinishedAt = order.FinishedAt.Format(time.RFC3339)
	}
	return resp
}

func toAssignmentDTOs(assignments []domain.Assignment) []dto.AssignmentResponseDTO {
	resp := make([]dto.AssignmentResponseDTO, 0, len(assignments))
	for _, a := range assignments {
		resp = append(resp, dto.AssignmentResponseDTO{
			EscortID:   a.EscortID,
			AssignedAt: a.AssignedAt.Format(time.RFC3339),
		})
	}
	return resp
}
