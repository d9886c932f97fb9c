package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/eaglebank/bank-api/internal/service/mocks"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// testEnv wires a Handler to service mocks behind the real route table so
// tests exercise path-variable extraction as well as the handlers.
type testEnv struct {
	auth         *mocks.MockAuthenticator
	users        *mocks.MockUserManager
	accounts     *mocks.MockAccountManager
	transactions *mocks.MockTransactionManager
	router       *mux.Router
}

func newTestEnv(t *testing.T) *testEnv {
	env := &testEnv{
		auth:         mocks.NewMockAuthenticator(t),
		users:        mocks.NewMockUserManager(t),
		accounts:     mocks.NewMockAccountManager(t),
		transactions: mocks.NewMockTransactionManager(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(env.auth, env.users, env.accounts, env.transactions, logger)

	r := mux.NewRouter()
	r.HandleFunc("/v1/users", h.CreateUser).Methods(http.MethodPost)
	r.HandleFunc("/v1/users/{userId}", h.FetchUser).Methods(http.MethodGet)
	r.HandleFunc("/v1/users/{userId}", h.UpdateUser).Methods(http.MethodPatch)
	r.HandleFunc("/v1/users/{userId}", h.DeleteUser).Methods(http.MethodDelete)
	r.HandleFunc("/v1/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/v1/accounts", h.CreateAccount).Methods(http.MethodPost)
	r.HandleFunc("/v1/accounts", h.ListAccounts).Methods(http.MethodGet)
	r.HandleFunc("/v1/accounts/{accountNumber}", h.FetchAccount).Methods(http.MethodGet)
	r.HandleFunc("/v1/accounts/{accountNumber}", h.UpdateAccount).Methods(http.MethodPatch)
	r.HandleFunc("/v1/accounts/{accountNumber}", h.DeleteAccount).Methods(http.MethodDelete)
	r.HandleFunc("/v1/accounts/{accountNumber}/transactions", h.CreateTransaction).Methods(http.MethodPost)
	r.HandleFunc("/v1/accounts/{accountNumber}/transactions", h.ListTransactions).Methods(http.MethodGet)
	r.HandleFunc("/v1/accounts/{accountNumber}/transactions/{transactionId}", h.FetchTransaction).Methods(http.MethodGet)
	env.router = r

	return env
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
