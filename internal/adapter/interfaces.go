// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the remote store over its PostgREST-style HTTP API.
//
// [RESTAdapter] implements [gateway.Authenticator] against the /auth/v1
// endpoints and hands out one [gateway.Table] per synchronised dataset backed
// by /rest/v1/{table}. Every failed call is returned as a
// [*gateway.RemoteError]; HTTP statuses are mapped to the gateway failure
// classes by mapHTTPError so callers can use [errors.Is].
package adapter

import (
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
)

// RemoteStore is a signed-in view of the remote store.
type RemoteStore interface {
	gateway.Authenticator

	// Tables returns the table gateways acting on behalf of the current
	// session.
	Tables() gateway.Tables

	// Token returns the access token of the current session, or an empty
	// string when signed out.
	Token() string
}
