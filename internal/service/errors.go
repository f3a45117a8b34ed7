package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrRecordNotFound     = errors.New("record not found")
	ErrMalformedRemoteRow = errors.New("malformed remote row")
	ErrSyncPanicked       = errors.New("dataset sync panicked")

	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotSignedIn        = errors.New("not signed in")
	ErrCloudUnavailable   = errors.New("cloud backend unavailable")
	ErrCloudNotConfigured = errors.New("cloud backend is not configured")
	ErrRegisterOnServer   = errors.New("registration on server failed")
	ErrLoginOnServer      = errors.New("login on server failed")
)

var ErrUnknownTable = errors.New("unknown table")
