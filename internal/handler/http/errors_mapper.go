package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

type apiFailure struct {
	target  error
	status  int
	code    string
	message string
}

// errorStatusMap is checked top to bottom, so more specific errors go first:
// store errors arrive wrapped into gateway classes.
var errorStatusMap = []apiFailure{
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "invalid_request", app.MsgInvalidDataProvided},
	{service.ErrWrongPassword, http.StatusBadRequest, "invalid_grant", app.MsgInvalidLoginPassword},
	{store.ErrNoUserWasFound, http.StatusBadRequest, "invalid_grant", app.MsgInvalidLoginPassword},
	{store.ErrEmailAlreadyExists, http.StatusConflict, "user_already_exists", app.MsgEmailAlreadyExists},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "invalid_token", app.MsgTokenIsExpiredOrInvalid},
	{service.ErrUnknownTable, http.StatusNotFound, "unknown_table", app.MsgUnknownTable},
	{store.ErrUnknownColumn, http.StatusBadRequest, "unknown_column", app.MsgInvalidDataProvided},
	{store.ErrOwnerMismatch, http.StatusForbidden, "access_denied", app.MsgAccessDenied},

	{gateway.ErrForbidden, http.StatusForbidden, "access_denied", app.MsgAccessDenied},
	{gateway.ErrNotFound, http.StatusNotFound, "not_found", app.MsgRowNotFound},
	{gateway.ErrConflict, http.StatusConflict, "conflict", http.StatusText(http.StatusConflict)},
	{gateway.ErrUnavailable, http.StatusServiceUnavailable, "unavailable", http.StatusText(http.StatusServiceUnavailable)},
	{gateway.ErrRejected, http.StatusBadRequest, "rejected", app.MsgInvalidDataProvided},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, "internal", app.MsgInternalServerError},
}

var internalFailure = apiFailure{status: http.StatusInternalServerError, code: "internal", message: app.MsgInternalServerError}

func failureFromError(err error) apiFailure {
	for _, f := range errorStatusMap {
		if errors.Is(err, f.target) {
			return f
		}
	}
	return internalFailure
}

func statusFromError(err error) int {
	return failureFromError(err).status
}

// writeError answers with the JSON error body matching err.
func writeError(w http.ResponseWriter, err error) {
	f := failureFromError(err)
	writeAPIError(w, f.status, f.code, f.message)
}

func writeAPIError(w http.ResponseWriter, status int, code, message string) {
	_, _ = utils.WriteJSON(w, models.APIError{Code: code, Message: message}, status)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeAPIError(w, http.StatusNotFound, "not_found", http.StatusText(http.StatusNotFound))
}
