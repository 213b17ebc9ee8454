// internal/api/handler/account.go
package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"eagle-bank-api/internal/service"
	"eagle-bank-api/internal/util"
)

// BankAccountHandler handles HTTP requests for bank account records.
type BankAccountHandler struct {
	service service.BankAccountService
	logger  *slog.Logger
}

// NewBankAccountHandler creates a new BankAccountHandler.
func NewBankAccountHandler(svc service.BankAccountService, logger *slog.Logger) *BankAccountHandler {
	return &BankAccountHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateBankAccount handles the create bank account request.
// POST /v1/accounts
func (h *BankAccountHandler) CreateBankAccount(w http.ResponseWriter, r *http.Request) {
	var req service.CreateBankAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, fmt.Errorf("%w: create bank account request must be valid", util.ErrBadRequest))
		return
	}

	resp, err := h.service.CreateBankAccount(r.Context(), &req)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, resp)
}

// FetchByAccountNumber handles the fetch bank account request.
// GET /v1/accounts/{accountNumber}
// The account number format check belongs to the service layer.
func (h *BankAccountHandler) FetchByAccountNumber(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	resp, err := h.service.FetchByAccountNumber(r.Context(), accountNumber)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, resp)
}

// DeleteBankAccount handles the delete bank account request.
// DELETE /v1/accounts/{accountNumber}
func (h *BankAccountHandler) DeleteBankAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := chi.URLParam(r, "accountNumber")

	if err := h.service.DeleteBankAccount(r.Context(), accountNumber); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
