package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/eaglebank/bank-api/internal/service"
	"github.com/gorilla/mux"
)

// CreateTransaction handles POST /v1/accounts/{accountNumber}/transactions
func (h *Handler) CreateTransaction(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["accountNumber"]

	var req service.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondBadBody(w)
		return
	}

	txn, err := h.transactionService.Create(r.Context(), accountNumber, req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toTransactionResponse(txn))
}

// ListTransactions handles GET /v1/accounts/{accountNumber}/transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	accountNumber := mux.Vars(r)["accountNumber"]

	transactions, err := h.transactionService.List(r.Context(), accountNumber)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	resp := ListTransactionsResponse{Transactions: make([]TransactionResponse, 0, len(transactions))}
	for _, txn := range transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(txn))
	}

	h.respondJSON(w, http.StatusOK, resp)
}

// FetchTransaction handles GET /v1/accounts/{accountNumber}/transactions/{transactionId}
func (h *Handler) FetchTransaction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	txn, err := h.transactionService.FetchByID(r.Context(), vars["accountNumber"], vars["transactionId"])
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toTransactionResponse(txn))
}
