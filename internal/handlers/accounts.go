package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gorilla/mux"
)

// CreateAccount handles POST /v1/accounts
func (h *Handler) CreateAccount(w http.ResponseWriter, r *http.Request) {
	var req service.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadBody(w)
		return
	}

	account, err := h.accountService.Create(r.Context(), req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toAccountResponse(account))
}

// ListAccounts handles GET /v1/accounts
func (h *Handler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.List(r.Context())
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := ListBankAccountsResponse{Accounts: make([]BankAccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		resp.Accounts = append(resp.Accounts, toAccountResponse(account))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// FetchAccount handles GET /v1/accounts/{accountNumber}
func (h *Handler) FetchAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["accountNumber"]

	account, err := h.accountService.FetchByNumber(r.Context(), accountNumber)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toAccountResponse(account))
}

// UpdateAccount handles PATCH /v1/accounts/{accountNumber}
func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["accountNumber"]

	var req service.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadBody(w)
		return
	}

	account, err := h.accountService.UpdateByNumber(r.Context(), accountNumber, req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toAccountResponse(account))
}

// DeleteAccount handles DELETE /v1/accounts/{accountNumber}
func (h *Handler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["accountNumber"]

	if err := h.accountService.DeleteByNumber(r.Context(), accountNumber); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
