package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finova/finova/internal/adapter/http/dto"
	"github.com/finova/finova/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	switch {
	case errors.Is(err, domain.ErrTransactionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnknownAccount):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingDate):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrMissingOwner):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ownerParam extracts the required owner query parameter. Ledger scoping is
// the storage collaborator's job; reports only ever see one owner's list.
func ownerParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		writeError(w, http.StatusBadRequest, "missing owner parameter", "")
		return "", false
	}
	return owner, true
}
