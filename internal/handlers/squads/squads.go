package squads

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/memomarket/escortd/internal/domain"
	"github.com/memomarket/escortd/internal/dto"
	"github.com/memomarket/escortd/pkg/utils"
)

type Service interface {
	Create(ctx context.Context, name string) (*domain.Squad, error)
	GetByName(ctx context.Context, name string) (*domain.Squad, error)
	Join(ctx context.Context, name string, externalID int64) error
	Leave(ctx context.Context, externalID int64) error
	Disband(ctx context.Context, name string) error
	Roster(ctx context.Context, name string) ([]domain.Escort, error)
}

type SquadHandler struct {
	squadService Service
}

func New(squadService Service) *SquadHandler {
	return &SquadHandler{
		squadService: squadService,
	}
}

// Create godoc
//
//	@Summary		Create squad
//	@Description	Create a new squad with a unique name
//	@Tags			Squads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateSquadRequestDTO	true	"Squad body"
//	@Success		201		{object}	dto.SquadResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		409		{object}	utils.Response	"Squad already exists"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/squads [post]
func (h *SquadHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateSquadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	squad, err := h.squadService.Create(r.Context(), req.Name)
	if err != nil {
		respondSquadError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toSquadDTO(squad))
}

// Get godoc
//
//	@Summary		Get squad
//	@Description	Get a squad with its aggregate stats
//	@Tags			Squads
//	@Produce		json
//	@Param			name	path		string	true	"Squad name"
//	@Success		200		{object}	dto.SquadResponseDTO
//	@Failure		404		{object}	utils.Response	"Squad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/squads/{name} [get]
func (h *SquadHandler) Get(w http.ResponseWriter, r *http.Request) {
	squad, err := h.squadService.GetByName(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondSquadError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toSquadDTO(squad))
}

// Join godoc
//
//	@Summary		Join squad
//	@Description	Add an escort to a squad, subject to the capacity limit
//	@Tags			Squads
//	@Accept			json
//	@Produce		json
//	@Param			name	path		string					true	"Squad name"
//	@Param			request	body		dto.JoinSquadRequestDTO	true	"Escort"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Squad or escort not found"
//	@Failure		409		{object}	utils.Response	"Squad is full"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/squads/{name}/join [post]
func (h *SquadHandler) Join(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinSquadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.squadService.Join(r.Context(), chi.URLParam(r, "name"), req.EscortExternalID); err != nil {
		respondSquadError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Escort joined the squad"})
}

// Leave godoc
//
//	@Summary		Leave squad
//	@Description	Remove an escort from its current squad
//	@Tags			Squads
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.JoinSquadRequestDTO	true	"Escort"
//	@Success		200		{object}	utils.Response
//	@Failure		400		{object}	utils.Response	"Invalid request body"
//	@Failure		404		{object}	utils.Response	"Escort not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/squads/leave [post]
func (h *SquadHandler) Leave(w http.ResponseWriter, r *http.Request) {
	var req dto.JoinSquadRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := h.squadService.Leave(r.Context(), req.EscortExternalID); err != nil {
		respondSquadError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Escort left the squad"})
}

// Disband godoc
//
//	@Summary		Disband squad
//	@Description	Delete a squad and detach all its members
//	@Tags			Squads
//	@Produce		json
//	@Param			name	path		string	true	"Squad name"
//	@Success		200		{object}	utils.Response
//	@Failure		404		{object}	utils.Response	"Squad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/squads/{name} [delete]
func (h *SquadHandler) Disband(w http.ResponseWriter, r *http.Request) {
	if err := h.squadService.Disband(r.Context(), chi.URLParam(r, "name")); err != nil {
		respondSquadError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.Response{Message: "Squad disbanded"})
}

// Roster godoc
//
//	@Summary		Squad roster
//	@Description	List the escorts currently in the squad
//	@Tags			Squads
//	@Produce		json
//	@Param			name	path		string	true	"Squad name"
//	@Success		200		{array}		dto.EscortResponseDTO
//	@Failure		404		{object}	utils.Response	"Squad not found"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Security		BearerAuth
//	@Router			/api/squads/{name}/roster [get]
func (h *SquadHandler) Roster(w http.ResponseWriter, r *http.Request) {
	roster, err := h.squadService.Roster(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		respondSquadError(w, err)
		return
	}
	resp := make([]dto.EscortResponseDTO, 0, len(roster))
	for i := range roster {
		e := &roster[i]
		resp = append(resp, dto.EscortResponseDTO{
			ExternalID:      e.ExternalID,
			Username:        e.Username,
			GameID:          e.GameID,
			Balance:         e.Balance,
			Rating:          e.Rating,
			RatingCount:     e.RatingCount,
			CompletedOrders: e.CompletedOrders,
			RulesAccepted:   e.RulesAccepted,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

func respondSquadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		utils.RespondWithError(w, http.StatusNotFound, "Squad or escort not found")
	case errors.Is(err, domain.ErrDuplicateSquad):
		utils.RespondWithError(w, http.StatusConflict, "Squad already exists")
	case errors.Is(err, domain.ErrSquadFull):
		utils.RespondWithError(w, http.StatusConflict, "Squad is full")
	case errors.Is(err, domain.ErrConflict):
		utils.RespondWithError(w, http.StatusConflict, "Concurrent update, retry the request")
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func toSquadDTO(squad *domain.Squad) dto.SquadResponseDTO {
	return dto.SquadResponseDTO{
		Name:            squad.Name,
		Rating:          squad.Rating,
		RatingCount:     squad.RatingCount,
		CompletedOrders: squad.CompletedOrders,
		TotalEarned:     squad.TotalEarned,
	}
}
