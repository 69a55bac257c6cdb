package http

import (
	"io"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-ledger-sync/internal/app"
	"github.com/MKhiriev/go-ledger-sync/internal/logger"
	"github.com/MKhiriev/go-ledger-sync/internal/utils"
	"github.com/MKhiriev/go-ledger-sync/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.services.AccountService.GetAccounts(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAccounts").Msg("error listing accounts")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, accounts, http.StatusOK)
}

func (h *Handler) getAccountTransactions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAccountTransactions").Msg("invalid account id in path")
		http.Error(w, ErrInvalidAccountIDParam.Error(), http.StatusBadRequest)
		return
	}

	transactions, err := h.services.AccountService.GetAccountTransactions(r.Context(), accountID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAccountTransactions").Int64("account_id", accountID).Msg("error getting transactions")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

func (h *Handler) getAllTransactions(w http.ResponseWriter, r *http.Request) {
	transactions, err := h.services.AccountService.GetAllTransactions(r.Context())
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getAllTransactions").Msg("error getting transactions")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, transactions, http.StatusOK)
}

// uploadTransactions keeps old desktop builds from failing hard. Writes
// only go through the confirmed sync path.
func (h *Handler) uploadTransactions(w http.ResponseWriter, r *http.Request) {
	_, _ = io.Copy(io.Discard, http.MaxBytesReader(w, r.Body, utils.MaxRequestBody))

	logger.FromRequest(r).Warn().Str("func", "*Handler.uploadTransactions").Msg("legacy upload ignored")
	utils.WriteJSON(w, models.TransactionsUploadResponse{
		Success: false,
		Message: app.MsgUseSyncExecute,
	}, http.StatusOK)
}
