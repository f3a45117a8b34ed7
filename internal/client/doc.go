// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the ledger client runtime.
//
// It opens the local record store, selects the cloud backend (the REST
// adapter or a direct Postgres connection) and runs the terminal UI next to
// the background sync workers for the lifetime of the process.
package client
