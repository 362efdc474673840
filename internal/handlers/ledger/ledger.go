package ledger

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
	"github.com/memomarket/escortd/internal/service/ledgerservice"
	"github.com/memomarket/escortd/pkg/utils"
	"github.com/memomarket/escortd/pkg/validate"
)

type Service interface {
	GetBalance(ctx context.Context, escortID int) (int64, error)
	RequestWithdrawal(ctx context.Context, escortID int, amount int64, destination string) (*domain.Withdrawal, error)
	ResolveWithdrawal(ctx context.Context, id int, approve bool) (*domain.Withdrawal, error)
	GetWithdrawals(ctx context.Context, escortID int) ([]domain.Withdrawal, error)
	GetPayouts(ctx context.Context, orderID int) ([]domain.Payout, error)
}

type EscortService interface {
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
}

type OrderService interface {
	GetByMemoID(ctx context.Context, memoID string) (*domain.Order, error)
}

type LedgerHandler struct {
	ledgerService Service
	escortService EscortService
	orderService  OrderService
}

func New(ledgerService Service, escortService EscortService, orderService OrderService) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		escortService: escortService,
		orderService:  orderService,
	}
}

// Balance godoc
//
//	@Summary		Get balance
//	@Description	Get the escort's current balance in minor currency units
//	@Tags			Ledger
//	@Produce		json
//	@Param			externalID	path		int	true	"Escort external id"
//	@Success		200			{object}	dto.BalanceResponseDTO
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/balance [get]
func (h *LedgerHandler) Balance(w http.ResponseWriter, r *http.Request) {
	escort, ok := h.resolveEscort(w, r)
	if !ok {
		return
	}
	balance, err := h.ledgerService.GetBalance(r.Context(), escort.ID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.BalanceResponseDTO{Balance: balance})
}

// RequestWithdrawal godoc
//
//	@Summary		Request withdrawal
//	@Description	Put a withdrawal hold on the escort's balance pending operator review
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			externalID	path		int							true	"Escort external id"
//	@Param			request		body		dto.WithdrawalRequestDTO	true	"Withdrawal body"
//	@Success		201			{object}	dto.WithdrawalResponseDTO
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		402			{object}	utils.Response	"Insufficient balance"
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		422			{object}	utils.Response	"Invalid destination number"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/withdrawals [post]
func (h *LedgerHandler) RequestWithdrawal(w http.ResponseWriter, r *http.Request) {
	escort, ok := h.resolveEscort(w, r)
	if !ok {
		return
	}
	var req dto.WithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validate.IsLuhn(req.Destination) {
		utils.RespondWithError(w, http.StatusUnprocessableEntity, "Invalid destination number")
		return
	}
	withdrawal, err := h.ledgerService.RequestWithdrawal(r.Context(), escort.ID, req.Amount, req.Destination)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toWithdrawalDTO(withdrawal))
}

// ResolveWithdrawal godoc
//
//	@Summary		Resolve withdrawal
//	@Description	Approve a pending withdrawal or reject it and return the held funds
//	@Tags			Ledger
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Withdrawal id"
//	@Param			request	body		dto.ResolveWithdrawalRequestDTO	true	"Resolution"
//	@Success		200		{object}	dto.WithdrawalResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Withdrawal not found"
//	@Failure		409		{object}	utils.Response	"Withdrawal already resolved"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/withdrawals/{id}/resolve [post]
func (h *LedgerHandler) ResolveWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid withdrawal id")
		return
	}
	var req dto.ResolveWithdrawalRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	withdrawal, err := h.ledgerService.ResolveWithdrawal(r.Context(), id, req.Approve)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Withdrawal not found")
			return
		}
		respondLedgerError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toWithdrawalDTO(withdrawal))
}

// Withdrawals godoc
//
//	@Summary		List withdrawals
//	@Description	List the escort's withdrawal requests, newest first
//	@Tags			Ledger
//	@Produce		json
//	@Param			externalID	path		int	true	"Escort external id"
//	@Success		200			{array}		dto.WithdrawalResponseDTO
//	@Success		204			"No withdrawals"
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/withdrawals [get]
func (h *LedgerHandler) Withdrawals(w http.ResponseWriter, r *http.Request) {
	escort, ok := h.resolveEscort(w, r)
	if !ok {
		return
	}
	withdrawals, err := h.ledgerService.GetWithdrawals(r.Context(), escort.ID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	if len(withdrawals) == 0 {
		utils.RespondWithJSON(w, http.StatusNoContent, nil)
		return
	}
	resp := make([]dto.WithdrawalResponseDTO, 0, len(withdrawals))
	for i := range withdrawals {
		resp = append(resp, toWithdrawalDTO(&withdrawals[i]))
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Payouts godoc
//
//	@Summary		List payouts
//	@Description	List the payouts produced by settling an order
//	@Tags			Ledger
//	@Produce		json
//	@Param			memoID	path		string	true	"Order memo id"
//	@Success		200		{array}		dto.PayoutResponseDTO
//	@Failure		404		{object}	utils.Response	"Order not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/orders/{memoID}/payouts [get]
func (h *LedgerHandler) Payouts(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.GetByMemoID(r.Context(), chi.URLParam(r, "memoID"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		respondLedgerError(w, err)
		return
	}
	payouts, err := h.ledgerService.GetPayouts(r.Context(), order.ID)
	if err != nil {
		respondLedgerError(w, err)
		return
	}
	resp := make([]dto.PayoutResponseDTO, 0, len(payouts))
	for _, p := range payouts {
		resp = append(resp, dto.PayoutResponseDTO{
			Reference:  p.Reference,
			EscortID:   p.EscortID,
			Amount:     p.Amount,
			Commission: p.Commission,
			CreatedAt:  p.CreatedAt.Format(time.RFC3339),
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func (h *LedgerHandler) resolveEscort(w http.ResponseWriter, r *http.Request) (*domain.Escort, bool) {
	externalID, err := strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return nil, false
	}
	escort, err := h.escortService.GetByExternalID(r.Context(), externalID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Escort not found")
			return nil, false
		}
		respondLedgerError(w, err)
		return nil, false
	}
	return escort, true
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInsufficientBalance):
		utils.RespondWithError(w, http.StatusPaymentRequired, "Insufficient balance")
	case errors.Is(err, domain.ErrInvalidTransition):
		utils.RespondWithError(w, http.StatusConflict, "Withdrawal already resolved")
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Concurrent update, retry the request")
	case errors.Is(err, ledgerservice.ErrNonPositiveAmount):
		utils.RespondWithError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toWithdrawalDTO(withdrawal *domain.Withdrawal) dto.WithdrawalResponseDTO {
	resp := dto.WithdrawalResponseDTO{
		ID:          withdrawal.ID,
		Reference:   withdrawal.Reference,
		Amount:      withdrawal.Amount,
		Destination: withdrawal.Destination,
		Status:      withdrawal.Status,
		CreatedAt:   withdrawal.CreatedAt.Format(time.RFC3339),
	}
	if withdrawal.ProcessedAt != nil {
		resp.ProcessedAt = withdrawal.ProcessedAt.Format(time.RFC3339)
	}
	return resp
}
