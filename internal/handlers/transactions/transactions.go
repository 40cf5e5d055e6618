package transactions

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"ewallet/internal/domain"
	"ewallet/internal/dto"
	"ewallet/internal/service/transferservice"
	"ewallet/pkg/utils"
	"ewallet/pkg/validate"
)

type Service interface {
	Transfer(ctx context.Context, purseFromID, purseToID int, amount float64) (*domain.Transaction, error)
	GetTransaction(ctx context.Context, id int) (*domain.Transaction, error)
	GetTransactions(ctx context.Context, purseID, limit, offset int) ([]domain.Transaction, error)
}

type TransactionHandler struct {
	transferService Service
}

func New(transferService Service) *TransactionHandler {
	return &TransactionHandler{
		transferService: transferService,
	}
}

func toResponseDTO(trx *domain.Transaction) dto.TransactionResponseDTO {
	return dto.TransactionResponseDTO{
		ID:                trx.ID,
		PurseFromID:       trx.PurseFromID,
		PurseToID:         trx.PurseToID,
		PurseFromCurrency: trx.PurseFromCurrency.String(),
		PurseToCurrency:   trx.PurseToCurrency.String(),
		PurseFromAmount:   trx.PurseFromAmount,
		PurseToAmount:     trx.PurseToAmount,
		CreatedAt:         trx.CreatedAt,
	}
}

// CreateTransaction godoc
//
//	@Summary		Transfer between purses
//	@Description	Debit the source purse, convert via the rate table and credit the destination purse atomically.
//	@Tags			Transactions
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.TransferRequestDTO		true	"Transfer payload"
//	@Success		201		{object}	dto.TransactionResponseDTO	"Recorded transaction"
//	@Failure		400		{object}	utils.Response				"Invalid payload or same source and destination"
//	@Failure		402		{object}	utils.Response				"Insufficient funds"
//	@Failure		404		{object}	utils.Response				"Purse not found"
//	@Failure		500		{object}	utils.Response				"Internal server error"
//	@Router			/api/transactions [post]
func (h *TransactionHandler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req dto.TransferRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	trx, err := h.transferService.Transfer(r.Context(), req.PurseFromID, req.PurseToID, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, transferservice.ErrPurseNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, transferservice.ErrSamePurse),
			errors.Is(err, transferservice.ErrInvalidAmount):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, transferservice.ErrInsufficientFunds):
			utils.RespondWithError(w, http.StatusPaymentRequired, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, toResponseDTO(trx))
}

// GetTransaction godoc
//
//	@Summary		Get a transaction
//	@Description	Retrieve one transfer record by id.
//	@Tags			Transactions
//	@Produce		json
//	@Param			id	path		int							true	"Transaction id"
//	@Success		200	{object}	dto.TransactionResponseDTO	"Transaction"
//	@Failure		400	{object}	utils.Response				"Invalid id"
//	@Failure		404	{object}	utils.Response				"Transaction not found"
//	@Failure		500	{object}	utils.Response				"Internal server error"
//	@Router			/api/transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid transaction id")
		return
	}

	trx, err := h.transferService.GetTransaction(r.Context(), id)
	if err != nil {
		if errors.Is(err, transferservice.ErrTransactionNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toResponseDTO(trx))
}

// GetTransactions godoc
//
//	@Summary		List transactions
//	@Description	Retrieve transfer records, newest first, optionally for one purse.
//	@Tags			Transactions
//	@Produce		json
//	@Param			page		query		int							false	"Page number"
//	@Param			limit		query		int							false	"Page size"
//	@Param			purse_id	query		int							false	"Filter by purse on either side"
//	@Success		200			{array}		dto.TransactionResponseDTO	"Transactions"
//	@Failure		500			{object}	utils.Response				"Internal server error"
//	@Router			/api/transactions [get]
func (h *TransactionHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	limit, offset := utils.PageParams(r)
	purseID, _ := strconv.Atoi(r.URL.Query().Get("purse_id"))

	transactions, err := h.transferService.GetTransactions(r.Context(), purseID, limit, offset)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	response := make([]dto.TransactionResponseDTO, len(transactions))
	for i, trx := range transactions {
		response[i] = toResponseDTO(&trx)
	}
	utils.RespondWithJSON(w, http.StatusOK, response)
}
