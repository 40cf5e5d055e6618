package purses

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ewallet/internal/domain"
	"ewallet/internal/dto"
	"ewallet/internal/service/purseservice"
	"ewallet/pkg/utils"
	"ewallet/pkg/validate"
)

type Service interface {
	CreatePurse(ctx context.Context, userID int, currency domain.Currency) (*domain.Purse, error)
	GetPurse(ctx context.Context, id int) (*domain.Purse, error)
	GetPurses(ctx context.Context, userID, limit, offset int) ([]domain.Purse, error)
	UpdateBalance(ctx context.Context, id int, balance float64) (*domain.Purse, error)
	DeactivatePurse(ctx context.Context, id int) error
}

type PurseHandler struct {
	purseService Service
}

func New(purseService Service) *PurseHandler {
	return &PurseHandler{
		purseService: purseService,
	}
}

func toResponseDTO(purse *domain.Purse) dto.PurseResponseDTO {
	return dto.PurseResponseDTO{
		ID:         purse.ID,
		UserID:     purse.UserID,
		Currency:   purse.Currency.String(),
		Balance:    purse.Balance,
		CreatedAt:  purse.CreatedAt,
		ModifiedAt: purse.ModifiedAt,
	}
}

// CreatePurse godoc
//
//	@Summary		Open a purse
//	@Description	Open a purse in the given currency for an active user. Balance starts at zero.
//	@Tags			Purses
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.PurseCreateRequestDTO	true	"Purse payload"
//	@Success		201		{object}	dto.PurseResponseDTO		"Created purse"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		404		{object}	utils.Response				"User not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/purses [post]
func (h *PurseHandler) CreatePurse(w http.ResponseWriter, r *http.Request) {
	var req dto.PurseCreateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}
	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	purse, err := h.purseService.CreatePurse(r.Context(), req.UserID, currency)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(purse))
}

// GetPurse godoc
//
//	@Summary		Get a purse
//	@Description	Retrieve an active purse by id.
//	@Tags			Purses
//	@Produce		json
//	@Param			id	path		int						true	"Purse id"
//	@Success		200	{object}	dto.PurseResponseDTO	"Purse"
//	@Failure		400	{object}	utils.Response			"Invalid id"
//	@Failure		404	{object}	utils.Response			"Purse not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/api/purses/{id} [get]
func (h *PurseHandler) GetPurse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid purse id")
		return
	}

	purse, err := h.purseService.GetPurse(r.Context(), id)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(purse))
}

// GetPurses godoc
//
//	@Summary		List purses
//	@Description	Retrieve active purses, paginated, optionally for one owner.
//	@Tags			Purses
//	@Produce		json
//	@Param			page	query		int						false	"Page number"
//	@Param			limit	query		int						false	"Page size"
//	@Param			user_id	query		int						false	"Filter by owner"
//	@Success		200		{array}		dto.PurseResponseDTO	"Purses"
//	@Failure		500		{object}	utils.Response			"Internal server error"
//	@Router			/api/purses [get]
func (h *PurseHandler) GetPurses(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.PageParams(r)
	userID, _ := strconv.Atoi(r.URL.Query().Get("user_id"))

	purses, err := h.purseService.GetPurses(r.Context(), userID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.PurseResponseDTO, len(purses))
	for i, purse := range purses {
		response[i] = toResponseDTO(&purse)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}

// UpdatePurse godoc
//
//	@Summary		Edit a purse balance
//	@Description	Administrative balance edit. Transfers go through the transactions endpoint instead.
//	@Tags			Purses
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Purse id"
//	@Param			request	body		dto.PurseUpdateRequestDTO	true	"New balance"
//	@Success		200		{object}	dto.PurseResponseDTO		"Updated purse"
//	@Failure		400		{object}	utils.Response				"Invalid payload"
//	@Failure		404		{object}	utils.Response				"Purse not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/purses/{id} [patch]
func (h *PurseHandler) UpdatePurse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid purse id")
		return
	}

	var req dto.PurseUpdateRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	purse, err := h.purseService.UpdateBalance(r.Context(), id, req.Balance)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(purse))
}

// DeletePurse godoc
//
//	@Summary		Deactivate a purse
//	@Description	Logically delete a purse. Balance and history are retained.
//	@Tags			Purses
//	@Produce		json
//	@Param			id	path	int	true	"Purse id"
//	@Success		204	"Purse deactivated"
//	@Failure		400	{object}	utils.Response	"Invalid id"
//	@Failure		404	{object}	utils.Response	"Purse not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/purses/{id} [delete]
func (h *PurseHandler) DeletePurse(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid purse id")
		return
	}

	if err := h.purseService.DeactivatePurse(r.Context(), id); err != nil {
		respondServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, purseservice.ErrPurseNotFound),
		errors.Is(err, purseservice.ErrUserNotFound):
		utils.RespondWithError(w, http.StatusNotFound, err.Error())
	default:
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
	}
}
