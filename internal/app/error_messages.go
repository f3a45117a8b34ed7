// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// ledger-keeper client and the remote store server.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies, sync results, notifications or log entries. Keeping
// them in one place ensures consistent wording throughout.
package app

// Remote store server responses.
const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation (e.g. missing required fields).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidLoginPassword is returned when the supplied email/password
	// combination does not match any existing user record.
	MsgInvalidLoginPassword = "invalid login credentials"

	// MsgUnsupportedGrantType is returned by the token endpoint for anything
	// but the password grant.
	MsgUnsupportedGrantType = "unsupported grant type"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires the owner id
	// (taken from the JWT subject) but none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgAccessDenied is returned when the authenticated user attempts to
	// read or write rows of a different owner.
	MsgAccessDenied = "access denied"

	// MsgUnknownTable is returned for a /rest/v1/{table} that is not one of
	// the synchronised tables.
	MsgUnknownTable = "unknown table"

	// MsgMissingIDFilter is returned when PATCH or DELETE omits "id=eq.<id>".
	MsgMissingIDFilter = "missing id filter"

	// MsgMissingOwnerFilter is returned when a select omits
	// "user_id=eq.<owner>".
	MsgMissingOwnerFilter = "missing user_id filter"

	// MsgUnsupportedConflictKey is returned when an upsert names a conflict
	// column other than "id".
	MsgUnsupportedConflictKey = "unsupported on_conflict column"

	// MsgRegistrationFailed is returned when the sign-up handler encounters
	// an unexpected error that prevents account creation.
	MsgRegistrationFailed = "registration failed"

	// MsgLoginFailed is returned when the token handler encounters an
	// unexpected error that prevents issuing a session token.
	MsgLoginFailed = "login failed"

	// MsgEmailAlreadyExists is returned when a registration attempt is
	// rejected because the email is already in use.
	MsgEmailAlreadyExists = "email already exists"

	// MsgRowNotFound is returned when an update targets a row that does not
	// exist for the current user.
	MsgRowNotFound = "row not found"
)

// Sync engine outcomes, shown as notifications and in the status badge.
const (
	// MsgNotReadyToSync is the result of a trigger while a cycle is already
	// running, cloud mode is off, or nobody is signed in.
	MsgNotReadyToSync = "Not ready to sync"

	// MsgSyncStarted is the notification of an explicit trigger.
	MsgSyncStarted = "Syncing data..."

	// MsgSyncCompleted is the notification of a cycle without failures.
	MsgSyncCompleted = "Sync completed successfully"

	// MsgSyncFailed prefixes the list of datasets that failed in a cycle.
	MsgSyncFailed = "Sync failed"

	// MsgSyncPanicked is recorded for a dataset whose processing panicked.
	MsgSyncPanicked = "unexpected failure"
)

// Client session and data management notifications.
const (
	MsgSignedIn           = "Signed in"
	MsgSignedOut          = "Signed out"
	MsgCloudModeEnabled   = "Cloud mode enabled"
	MsgLocalModeEnabled   = "Working offline"
	MsgDataExported       = "Data copied to clipboard"
	MsgDataImported       = "Data imported"
	MsgDataImportFailed   = "Import failed: invalid data"
	MsgDataCleared        = "All local data cleared"
	MsgInvalidCredentials = "Invalid username or password"
	MsgUserAlreadyExists  = "Username already exists"
)
