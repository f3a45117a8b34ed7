// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
)

// humanizeError turns a service error into a line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return app.MsgInvalidCredentials
	case errors.Is(err, service.ErrUserExists):
		return app.MsgUserAlreadyExists
	case errors.Is(err, service.ErrCloudNotConfigured):
		return "Cloud backend is not configured"
	case errors.Is(err, service.ErrCloudUnavailable):
		return "No network or the server is unavailable"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return strings.TrimPrefix(err.Error(), service.ErrInvalidDataProvided.Error()+": ")
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
