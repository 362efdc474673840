package audit

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/dto"
	"github.com/memomarket/escortd/pkg/utils"
)

type Service interface {
	ActionsByOrder(ctx context.Context, orderID int) ([]domain.ActionLogEntry, error)
	ActionsByEscort(ctx context.Context, escortID int) ([]domain.ActionLogEntry, error)
	FileComplaint(ctx context.Context, escortID int, orderID *int, text string) (*domain.Complaint, error)
	ComplaintsByEscort(ctx context.Context, escortID int) ([]domain.Complaint, error)
}

type EscortService interface {
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
}

type OrderService interface {
	GetByMemoID(ctx context.Context, memoID string) (*domain.Order, error)
}

type AuditHandler struct {
	auditService  Service
	escortService EscortService
	orderService  OrderService
}

func New(auditService Service, escortService EscortService, orderService OrderService) *AuditHandler {
	return &AuditHandler{
		auditService:  auditService,
		escortService: escortService,
		orderService:  orderService,
	}
}

// FileComplaint godoc
//
//	@Summary		File complaint
//	@Description	File a customer complaint against an escort, optionally tied to an order
//	@Tags			Audit
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.ComplaintRequestDTO	true	"Complaint body"
//	@Success		201		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Escort or order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/complaints [post]
func (h *AuditHandler) FileComplaint(w http.ResponseWriter, r *http.Request) {
	var req dto.ComplaintRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Text == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	escort, err := h.escortService.GetByExternalID(r.Context(), req.EscortExternalID)
	if err != nil {
		respondAuditError(w, err)
		return
	}
	var orderID *int
	if req.OrderMemoID != "" {
		order, err := h.orderService.GetByMemoID(r.Context(), req.OrderMemoID)
		if err != nil {
			respondAuditError(w, err)
			return
		}
		orderID = &order.ID
	}
	if _, err := h.auditService.FileComplaint(r.Context(), escort.ID, orderID, req.Text); err != nil {
		respondAuditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.Response{Message: "Complaint filed"})
}

// OrderActions godoc
//
//	@Summary		Order action log
//	@Description	List the audited actions recorded for an order, newest first
//	@Tags			Audit
//	@Produce		json
//	@Param			memoID	path		string	true	"Order memo id"
//	@Success		200		{array}		dto.ActionLogResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/actions [get]
func (h *AuditHandler) OrderActions(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByMemoID(r.Context(), chi.URLParam(r, "memoID"))
	if err != nil {
		respondAuditError(w, err)
		return
	}
	entries, err := h.auditService.ActionsByOrder(r.Context(), order.ID)
	if err != nil {
		respondAuditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toActionLogDTOs(entries))
}

// EscortActions godoc
//
//	@Summary		Escort action log
//	@Description	List the audited actions recorded for an escort, newest first
//	@Tags			Audit
//	@Produce		json
//	@Param			externalID	path		int	true	"Escort external id"
//	@Success		200			{array}		dto.ActionLogResponseDTO
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/actions [get]
func (h *AuditHandler) EscortActions(w http.ResponseWriter, r *http.Request) {
	escort, ok := h.resolveEscort(w, r)
	if !ok {
		return
	}
	entries, err := h.auditService.ActionsByEscort(r.Context(), escort.ID)
	if err != nil {
		respondAuditError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toActionLogDTOs(entries))
}

// EscortComplaints godoc
//
//	@Summary		Escort complaints
//	@Description	List the complaints filed against an escort
//	@Tags			Audit
//	@Produce		json
//	@Param			externalID	path		int	true	"Escort external id"
//	@Success		200			{array}		dto.ComplaintRequestDTO
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/complaints [get]
func (h *AuditHandler) EscortComplaints(w http.ResponseWriter, r *http.Request) {
	escort, ok := h.resolveEscort(w, r)
	if !ok {
		return
	}
	complaints, err := h.auditService.ComplaintsByEscort(r.Context(), escort.ID)
	if err != nil {
		respondAuditError(w, err)
		return
	}
	type complaintDTO struct {
		Text      string `json:"text"`
		OrderID   *int   `json:"order_id,omitempty"`
		CreatedAt string `json:"created_at"`
	}
	resp := make([]complaintDTO, 0, len(complaints))
	for _, c := range complaints {
		resp = append(resp, complaintDTO{
			Text:      c.Text,
			OrderID:   c.OrderID,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *AuditHandler) resolveEscort(w http.ResponseWriter, r *http.Request) (*domain.Escort, bool) {
	externalID, err := strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return nil, false
	}
	escort, err := h.escortService.GetByExternalID(r.Context(), externalID)
	if err != nil {
		respondAuditError(w, err)
		return nil, false
	}
	return escort, true
}

func respondAuditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Escort or order not found")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toActionLogDTOs(entries []domain.ActionLogEntry) []dto.ActionLogResponseDTO {
	resp := make([]dto.ActionLogResponseDTO, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ActionLogResponseDTO{
			ActionType:  e.ActionType,
			Description: e.Description,
			CreatedAt:   e.CreatedAt.Format(time.RFC3339),
		})
	}
	return resp
}
