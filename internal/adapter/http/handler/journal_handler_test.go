package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finova/finova/internal/adapter/http/dto"
	"github.com/finova/finova/internal/adapter/http/handler"
	"github.com/finova/finova/internal/domain"
	"github.com/finova/finova/internal/usecase"
	"github.com/finova/finova/internal/usecase/mocks"
)

func newJournalServer() http.Handler {
	uc := usecase.NewJournalUseCase(
		domain.DefaultChart(),
		mocks.NewMockTransactionRepository(),
		mocks.NewMockTransactionManager(),
		mocks.NewMockRetrier(),
		mocks.NewMockIDGenerator(),
		nil,
	)
	h := handler.NewJournalHandler(uc)

	r := chi.NewRouter()
	r.Get("/accounts", h.Accounts)
	r.Post("/journal", h.Create)
	r.Put("/journal/{id}", h.Update)
	r.Delete("/journal/{id}", h.Delete)
	r.Get("/journal", h.List)
	return r
}

func postEntry(t *testing.T, srv http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/journal", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

const validEntryBody = `{
	"owner": "admin",
	"date": "2024-03-01",
	"debit": "cash",
	"credit": "sales",
	"amount": "100",
	"narration": "cash sale"
}`

func TestJournalHandler_Create(t *testing.T) {
	srv := newJournalServer()

	rec := postEntry(t, srv, validEntryBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.TransactionResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "cash", resp.Debit)
	assert.Equal(t, "2024-03-01", resp.Date)
}

func TestJournalHandler_Create_InvalidDate(t *testing.T) {
	srv := newJournalServer()

	rec := postEntry(t, srv, `{"owner":"admin","date":"01/03/2024","debit":"cash","credit":"sales","amount":"100"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalHandler_Create_SameAccount(t *testing.T) {
	srv := newJournalServer()

	rec := postEntry(t, srv, `{"owner":"admin","date":"2024-03-01","debit":"cash","credit":"cash","amount":"100"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "failed to create entry", resp.Error)
}

func TestJournalHandler_Create_UnknownAccount(t *testing.T) {
	srv := newJournalServer()

	rec := postEntry(t, srv, `{"owner":"admin","date":"2024-03-01","debit":"petty-cash","credit":"sales","amount":"100"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalHandler_Delete_NotFound(t *testing.T) {
	srv := newJournalServer()

	req := httptest.NewRequest(http.MethodDelete, "/journal/missing", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJournalHandler_List(t *testing.T) {
	srv := newJournalServer()
	require.Equal(t, http.StatusCreated, postEntry(t, srv, validEntryBody).Code)

	req := httptest.NewRequest(http.MethodGet, "/journal?owner=admin", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ListTransactionsResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.Total)
	require.Len(t, resp.Transactions, 1)
}

func TestJournalHandler_List_MissingOwner(t *testing.T) {
	srv := newJournalServer()

	req := httptest.NewRequest(http.MethodGet, "/journal", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournalHandler_Accounts(t *testing.T) {
	srv := newJournalServer()

	req := httptest.NewRequest(http.MethodGet, "/accounts?visible=true", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.AccountResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp, len(domain.DefaultAccounts)-1)
	for _, acc := range resp {
		assert.False(t, acc.Hidden)
	}
}
