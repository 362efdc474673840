package escorts

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
	Register(ctx context.Context, externalID int64, username string) (*domain.Escort, error)
	GetByExternalID(ctx context.Context, externalID int64) (*domain.Escort, error)
	AcceptRules(ctx context.Context, externalID int64) error
	SetGameID(ctx context.Context, externalID int64, gameID string) error
}

type ReputationService interface {
	Ban(ctx context.Context, externalID int64, until *time.Time) error
	Restrict(ctx context.Context, externalID int64, until *time.Time) error
}

type EscortHandler struct {
	escortService     Service
	reputationService ReputationService
}

func New(escortService Service, reputationService ReputationService) *EscortHandler {
	return &EscortHandler{
		escortService:     escortService,
		reputationService: reputationService,
	}
}

// Register godoc
//
//	@Summary		Register escort
//	@Description	Register an escort worker or refresh the username of an existing one
//	@Tags			Escorts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.RegisterEscortRequestDTO	true	"Escort body"
//	@Success		200		{object}	dto.EscortResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts [post]
func (h *EscortHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterEscortRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	escort, err := h.escortService.Register(r.Context(), req.ExternalID, req.Username)
	if err != nil {
		respondEscortError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEscortDTO(escort))
}

// Get godoc
//
//	@Summary		Get escort
//	@Description	Get an escort's profile by external id
//	@Tags			Escorts
//	@Produce		json
//	@Param			externalID	path		int	true	"Escort external id"
//	@Success		200			{object}	dto.EscortResponseDTO
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID} [get]
func (h *EscortHandler) Get(w http.ResponseWriter, r *http.Request) {
	externalID, err := parseExternalID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return
	}
	escort, err := h.escortService.GetByExternalID(r.Context(), externalID)
	if err != nil {
		respondEscortError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toEscortDTO(escort))
}

// AcceptRules godoc
//
//	@Summary		Accept rules
//	@Description	Mark the escort as having accepted the marketplace rules
//	@Tags			Escorts
//	@Produce		json
//	@Param			externalID	path		int	true	"Escort external id"
//	@Success		200			{object}	utils.Response
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/accept-rules [post]
func (h *EscortHandler) AcceptRules(w http.ResponseWriter, r *http.Request) {
	externalID, err := parseExternalID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return
	}
	if err := h.escortService.AcceptRules(r.Context(), externalID); err != nil {
		respondEscortError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Rules accepted"})
}

// SetGameID godoc
//
//	@Summary		Set game id
//	@Description	Set the escort's in-game identifier used on applications
//	@Tags			Escorts
//	@Accept			json
//	@Produce		json
//	@Param			externalID	path		int						true	"Escort external id"
//	@Param			request		body		dto.SetGameIDRequestDTO	true	"Game id"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/game-id [post]
func (h *EscortHandler) SetGameID(w http.ResponseWriter, r *http.Request) {
	externalID, err := parseExternalID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return
	}
	var req dto.SetGameIDRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GameID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.escortService.SetGameID(r.Context(), externalID, req.GameID); err != nil {
		respondEscortError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Game id updated"})
}

// Ban godoc
//
//	@Summary		Ban escort
//	@Description	Ban the escort until the given moment; omitting the moment lifts the ban
//	@Tags			Escorts
//	@Accept			json
//	@Produce		json
//	@Param			externalID	path		int							true	"Escort external id"
//	@Param			request		body		dto.RestrictionRequestDTO	true	"Ban window"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/ban [post]
func (h *EscortHandler) Ban(w http.ResponseWriter, r *http.Request) {
	h.restrict(w, r, h.reputationService.Ban, "Ban updated")
}

// Restrict godoc
//
//	@Summary		Restrict escort
//	@Description	Restrict the escort until the given moment; omitting the moment lifts the restriction
//	@Tags			Escorts
//	@Accept			json
//	@Produce		json
//	@Param			externalID	path		int							true	"Escort external id"
//	@Param			request		body		dto.RestrictionRequestDTO	true	"Restriction window"
//	@Success		200			{object}	utils.Response
//	@Failure		400			{object}	utils.Response	"Invalid request body"
//	@Failure		404			{object}	utils.Response	"Escort not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/escorts/{externalID}/restrict [post]
func (h *EscortHandler) Restrict(w http.ResponseWriter, r *http.Request) {
	h.restrict(w, r, h.reputationService.Restrict, "Restriction updated")
}

func (h *EscortHandler) restrict(
	w http.ResponseWriter,
	r *http.Request,
	apply func(context.Context, int64, *time.Time) error,
	message string,
) {
	externalID, err := parseExternalID(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid external id")
		return
	}
	var req dto.RestrictionRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	var until *time.Time
	if req.Until != nil {
		parsed, err := time.Parse(time.RFC3339, *req.Until)
		if err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, "Invalid until timestamp")
			return
		}
		until = &parsed
	}
	if err := apply(r.Context(), externalID, until); err != nil {
		respondEscortError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: message})
}

func parseExternalID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "externalID"), 10, 64)
}

func respondEscortError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Escort not found")
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Concurrent update, retry the request")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toEscortDTO(escort *domain.Escort) dto.EscortResponseDTO {
	resp := dto.EscortResponseDTO{
		ExternalID:      escort.ExternalID,
		Username:        escort.Username,
		GameID:          escort.GameID,
		Balance:         escort.Balance,
		Rating:          escort.Rating,
		RatingCount:     escort.RatingCount,
		CompletedOrders: escort.CompletedOrders,
		RulesAccepted:   escort.RulesAccepted,
	}
	if escort.BanUntil != nil {
		resp.BanUntil = escort.BanUntil.Format(time.RFC3339)
	}
	if escort.RestrictUntil != nil {
		resp.RestrictUntil = escort.RestrictUntil.Format(time.RFC3339)
	}
	return resp
}
