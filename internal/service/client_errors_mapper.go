// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
)

// mapRemoteAuthError translates a failed remote sign-in/sign-up into a
// service business error.
func mapRemoteAuthError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, gateway.ErrUnauthorized):
		return ErrInvalidCredentials

	case errors.Is(err, gateway.ErrConflict),
		errors.Is(err, store.ErrEmailAlreadyExists):
		return ErrUserExists

	case errors.Is(err, gateway.ErrRejected):
		switch msg {
		case app.MsgInvalidLoginPassword:
			return ErrInvalidCredentials
		case app.MsgEmailAlreadyExists:
			return ErrUserExists
		case app.MsgInvalidDataProvided:
			return ErrInvalidDataProvided
		}

	case errors.Is(err, gateway.ErrUnavailable):
		return errors.Join(ErrCloudUnavailable, err)

	case errors.Is(err, ErrWrongPassword),
		errors.Is(err, store.ErrNoUserWasFound):
		return ErrInvalidCredentials
	}

	return err
}

// extractBody returns the text after the last ": " of an error message,
// which is where the remote store's own message ends up.
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
