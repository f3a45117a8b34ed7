// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

const (
	filterOwner      = "user_id"
	filterID         = "id"
	paramOnConflict  = "on_conflict"
	onConflictColumn = "id"

	// maxUpsertBody caps the JSON array accepted by a single upsert.
	maxUpsertBody = 8 << 20
)

// selectRows returns every row of the owner. The "user_id=eq.<owner>" filter
// is required and must name the authenticated owner.
func (h *Handler) selectRows(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	table := chi.URLParam(r, "table")

	filtered, err := eqFilter(r, filterOwner)
	if err != nil {
		log.Err(err).Str("table", table).Msg("select without owner filter")
		writeAPIError(w, http.StatusBadRequest, "missing_filter", app.MsgMissingOwnerFilter)
		return
	}
	if filtered != owner {
		log.Warn().Str("table", table).Str("owner_id", owner).Str("requested", filtered).Msg("select of foreign rows")
		writeAPIError(w, http.StatusForbidden, "access_denied", app.MsgAccessDenied)
		return
	}

	rows, err := h.services.RowService.Select(r.Context(), owner, table)
	if err != nil {
		log.Err(err).Str("table", table).Msg("select failed")
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, rows, http.StatusOK)
}

// upsertRows replaces the posted rows by id.
func (h *Handler) upsertRows(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	table := chi.URLParam(r, "table")

	if key := r.URL.Query().Get(paramOnConflict); key != "" && key != onConflictColumn {
		log.Warn().Str("table", table).Str("on_conflict", key).Msg("unsupported conflict key")
		writeAPIError(w, http.StatusBadRequest, "unsupported_conflict_key", app.MsgUnsupportedConflictKey)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxUpsertBody))
	if err != nil {
		log.Err(err).Str("table", table).Msg("error reading request body")
		writeAPIError(w, http.StatusBadRequest, "invalid_request", app.MsgInvalidDataProvided)
		return
	}

	if err = h.services.RowService.Upsert(r.Context(), owner, table, body); err != nil {
		log.Err(err).Str("table", table).Msg("upsert failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) updateRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	table := chi.URLParam(r, "table")

	id, err := eqFilter(r, filterID)
	if err != nil {
		log.Err(err).Str("table", table).Msg("update without id filter")
		writeAPIError(w, http.StatusBadRequest, "missing_filter", app.MsgMissingIDFilter)
		return
	}

	var patch map[string]any
	if err = json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid_request", app.MsgInvalidDataProvided)
		return
	}

	if err = h.services.RowService.Update(r.Context(), owner, table, id, patch); err != nil {
		log.Err(err).Str("table", table).Str("id", id).Msg("update failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteRow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	owner, ok := h.owner(w, r)
	if !ok {
		return
	}
	table := chi.URLParam(r, "table")

	id, err := eqFilter(r, filterID)
	if err != nil {
		log.Err(err).Str("table", table).Msg("delete without id filter")
		writeAPIError(w, http.StatusBadRequest, "missing_filter", app.MsgMissingIDFilter)
		return
	}

	if err = h.services.RowService.Delete(r.Context(), owner, table, id); err != nil {
		log.Err(err).Str("table", table).Str("id", id).Msg("delete failed")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// owner reads the authenticated owner put into the context by the auth
// middleware and answers 401 when it is missing.
func (h *Handler) owner(w http.ResponseWriter, r *http.Request) (string, bool) {
	owner, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user id in request context")
		writeAPIError(w, http.StatusUnauthorized, "invalid_token", app.MsgNoUserIDProvided)
		return "", false
	}
	return owner, true
}

// eqFilter reads the single "<column>=eq.<value>" filter of the request.
func eqFilter(r *http.Request, column string) (string, error) {
	values := r.URL.Query()[column]
	switch len(values) {
	case 0:
		return "", fmt.Errorf("%w: %s", ErrMissingFilter, column)
	case 1:
	default:
		return "", fmt.Errorf("%w: %s given %d times", ErrUnsupportedFilter, column, len(values))
	}

	value, ok := strings.CutPrefix(values[0], "eq.")
	if !ok {
		return "", fmt.Errorf("%w: %s=%s", ErrMalformedFilter, column, values[0])
	}
	if value == "" {
		return "", fmt.Errorf("%w: %s", ErrMissingFilter, column)
	}
	return value, nil
}
