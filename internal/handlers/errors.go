// Package handlers contains the stateless request handlers: thin glue
// between the HTTP surface and the ledger service.
package handlers

import (
	"errors"
	"net/http"

	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/httpx"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/reports"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/services"
	"github.com/Abdelrahman0111/managment-arkaan-issues-bookings/internal/store"
)

// writeError maps domain errors to the failure envelope and status code.
func writeError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", "missing or malformed fields", verr.Violations)
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusBadRequest, "not_found", "no issue matches that booking number", nil)
	case errors.Is(err, reports.ErrNoData):
		httpx.JSONError(w, http.StatusBadRequest, "no_data", "no issues to report", nil)
	case errors.Is(err, store.ErrUnavailable):
		httpx.JSONError(w, http.StatusServiceUnavailable, "store_unavailable", "record store unreachable", nil)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", "", nil)
	}
}

// degraded reports whether a read failure should degrade to an empty-data
// success response instead of an error (connection-failure policy).
func degraded(err error) bool {
	return errors.Is(err, store.ErrUnavailable)
}
