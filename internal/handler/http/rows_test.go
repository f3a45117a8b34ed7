// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const owner = "0190c6f2-aaaa-7bbb-8ccc-000000000001"

func TestSelectRows_ReturnsOwnerRows(t *testing.T) {
	s := newTestServer(t)
	s.signedIn(owner)

	state := "Karnataka"
	s.rows.EXPECT().
		Select(gomock.Any(), owner, models.TableCustomers).
		Return([]models.CustomerRow{{
			ID:        "c1",
			UserID:    owner,
			Name:      "Acme",
			State:     &state,
			CreatedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		}}, nil)

	rr := s.do(t, http.MethodGet, "/rest/v1/customers?user_id=eq."+owner+"&select=*", "", true)

	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	var got []models.CustomerRow
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "c1", got[0].ID)
	assert.Equal(t, "Karnataka", *got[0].State)
	assert.Nil(t, got[0].Email)
}

func TestSelectRows_OwnerFilter(t *testing.T) {
	tests := []struct {
		name        string
		query       string
		wantStatus  int
		wantMessage string
	}{
		{"missing", "?select=*", http.StatusBadRequest, app.MsgMissingOwnerFilter},
		{"not an eq filter", "?user_id=" + owner, http.StatusBadRequest, app.MsgMissingOwnerFilter},
		{"empty value", "?user_id=eq.", http.StatusBadRequest, app.MsgMissingOwnerFilter},
		{"repeated", "?user_id=eq." + owner + "&user_id=eq." + owner, http.StatusBadRequest, app.MsgMissingOwnerFilter},
		{"foreign owner", "?user_id=eq.someone-else", http.StatusForbidden, app.MsgAccessDenied},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.signedIn(owner)

			rr := s.do(t, http.MethodGet, "/rest/v1/customers"+tt.query, "", true)

			assertAPIError(t, rr, tt.wantStatus, tt.wantMessage)
		})
	}
}

func TestSelectRows_UnknownTable(t *testing.T) {
	s := newTestServer(t)
	s.signedIn(owner)
	s.rows.EXPECT().
		Select(gomock.Any(), owner, "invoices").
		Return(nil, fmt.Errorf("%w: %q", service.ErrUnknownTable, "invoices"))

	rr := s.do(t, http.MethodGet, "/rest/v1/invoices?user_id=eq."+owner, "", true)

	assertAPIError(t, rr, http.StatusNotFound, app.MsgUnknownTable)
}

func TestRows_RequireToken(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/rest/v1/customers?user_id=eq."+owner, "", false)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "invalid_token", decodeAPIError(t, rr).Code)
}

func TestUpsertRows(t *testing.T) {
	body := `[{"id":"p1","user_id":"` + owner + `","name":"Widget","price":"12.50"}]`

	s := newTestServer(t)
	s.signedIn(owner)
	s.rows.EXPECT().Upsert(gomock.Any(), owner, models.TableProducts, []byte(body)).Return(nil)

	rr := s.do(t, http.MethodPost, "/rest/v1/products?on_conflict=id", body, true)

	assert.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
}

func TestUpsertRows_UnsupportedConflictKey(t *testing.T) {
	s := newTestServer(t)
	s.signedIn(owner)

	rr := s.do(t, http.MethodPost, "/rest/v1/products?on_conflict=sku", `[]`, true)

	assertAPIError(t, rr, http.StatusBadRequest, app.MsgUnsupportedConflictKey)
}

func TestUpsertRows_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "bad body",
			err:         fmt.Errorf("%w: row 0 has no id", service.ErrInvalidDataProvided),
			wantStatus:  http.StatusBadRequest,
			wantMessage: app.MsgInvalidDataProvided,
		},
		{
			name: "row owned by someone else",
			err: gateway.NewRemoteError("upsert", models.TableCustomers, 0,
				fmt.Errorf("%w: %w: row c1", gateway.ErrForbidden, store.ErrOwnerMismatch)),
			wantStatus:  http.StatusForbidden,
			wantMessage: app.MsgAccessDenied,
		},
		{
			name: "database down",
			err: gateway.NewRemoteError("upsert", models.TableCustomers, 0,
				fmt.Errorf("%w: dial tcp: connection refused", gateway.ErrUnavailable)),
			wantStatus:  http.StatusServiceUnavailable,
			wantMessage: http.StatusText(http.StatusServiceUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestServer(t)
			s.signedIn(owner)
			s.rows.EXPECT().Upsert(gomock.Any(), owner, models.TableCustomers, gomock.Any()).Return(tt.err)

			rr := s.do(t, http.MethodPost, "/rest/v1/customers", `[{"id":"c1"}]`, true)

			assertAPIError(t, rr, tt.wantStatus, tt.wantMessage)
		})
	}
}

func TestUpdateRow(t *testing.T) {
	s := newTestServer(t)
	s.signedIn(owner)
	s.rows.EXPECT().
		Update(gomock.Any(), owner, models.TableLedgerEntries, "l1", map[string]any{"amount": float64(120), "reference": nil}).
		Return(nil)

	rr := s.do(t, http.MethodPatch, "/rest/v1/ledger_entries?id=eq.l1", `{"amount":120,"reference":null}`, true)

	assert.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())
}

func TestUpdateRow_Errors(t *testing.T) {
	t.Run("missing id filter", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn(owner)

		rr := s.do(t, http.MethodPatch, "/rest/v1/ledger_entries", `{"amount":1}`, true)

		assertAPIError(t, rr, http.StatusBadRequest, app.MsgMissingIDFilter)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn(owner)

		rr := s.do(t, http.MethodPatch, "/rest/v1/ledger_entries?id=eq.l1", `{"amount":`, true)

		assertAPIError(t, rr, http.StatusBadRequest, app.MsgInvalidDataProvided)
	})

	t.Run("unknown column", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn(owner)
		s.rows.EXPECT().Update(gomock.Any(), owner, models.TableLedgerEntries, "l1", gomock.Any()).
			Return(gateway.NewRemoteError("update", models.TableLedgerEntries, 0,
				fmt.Errorf("%w: %w: colour", gateway.ErrRejected, store.ErrUnknownColumn)))

		rr := s.do(t, http.MethodPatch, "/rest/v1/ledger_entries?id=eq.l1", `{"colour":"red"}`, true)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "unknown_column", decodeAPIError(t, rr).Code)
	})

	t.Run("row not found", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn(owner)
		s.rows.EXPECT().Update(gomock.Any(), owner, models.TableLedgerEntries, "l9", gomock.Any()).
			Return(gateway.NewRemoteError("update", models.TableLedgerEntries, 0,
				fmt.Errorf("%w: id l9", gateway.ErrNotFound)))

		rr := s.do(t, http.MethodPatch, "/rest/v1/ledger_entries?id=eq.l9", `{"amount":1}`, true)

		assertAPIError(t, rr, http.StatusNotFound, app.MsgRowNotFound)
	})
}

func TestDeleteRow(t *testing.T) {
	s := newTestServer(t)
	s.signedIn(owner)
	s.rows.EXPECT().Delete(gomock.Any(), owner, models.TableSuppliers, "s1").Return(nil)

	rr := s.do(t, http.MethodDelete, "/rest/v1/suppliers?id=eq.s1", "", true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestDeleteRow_Errors(t *testing.T) {
	t.Run("missing id filter", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn(owner)

		rr := s.do(t, http.MethodDelete, "/rest/v1/suppliers?name=eq.x", "", true)

		assertAPIError(t, rr, http.StatusBadRequest, app.MsgMissingIDFilter)
	})

	t.Run("query failure", func(t *testing.T) {
		s := newTestServer(t)
		s.signedIn(owner)
		s.rows.EXPECT().Delete(gomock.Any(), owner, models.TableSuppliers, "s1").
			Return(fmt.Errorf("%w: syntax", store.ErrBuildingSQLQuery))

		rr := s.do(t, http.MethodDelete, "/rest/v1/suppliers?id=eq.s1", "", true)

		assertAPIError(t, rr, http.StatusInternalServerError, app.MsgInternalServerError)
	})
}

func TestEqFilter(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    string
		wantErr error
	}{
		{"eq value", "id=eq.abc", "abc", nil},
		{"value with dots", "id=eq.a.b.c", "a.b.c", nil},
		{"missing", "", "", ErrMissingFilter},
		{"other operator", "id=neq.abc", "", ErrMalformedFilter},
		{"empty value", "id=eq.", "", ErrMissingFilter},
		{"repeated", "id=eq.a&id=eq.b", "", ErrUnsupportedFilter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, "/rest/v1/customers?"+tt.query, nil)
			require.NoError(t, err)

			got, err := eqFilter(req, filterID)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
