package gateway

import (
	"errors"
	"fmt"
)

// Failure classes of a remote call. Implementations wrap one of these into
// a [RemoteError] so callers can match with errors.Is.
var (
	ErrUnauthorized    = errors.New("remote store rejected credentials")
	ErrForbidden       = errors.New("remote store denied access")
	ErrNotFound        = errors.New("remote row not found")
	ErrConflict        = errors.New("remote row conflict")
	ErrRejected        = errors.New("remote store rejected the request")
	ErrUnavailable     = errors.New("remote store unavailable")
	ErrInvalidResponse = errors.New("invalid response from remote store")
	ErrNoSession       = errors.New("no remote session")
)

// RemoteError describes a failed remote call.
type RemoteError struct {
	Op     string
	Table  string
	Status int
	Err    error
}

func (e *RemoteError) Error() string {
	var msg string
	if e.Table != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Table)
	} else {
		msg = e.Op
	}
	if e.Status != 0 {
		msg = fmt.Sprintf("%s: status %d", msg, e.Status)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

// Retryable reports whether the call may succeed if repeated later.
func (e *RemoteError) Retryable() bool {
	return errors.Is(e.Err, ErrUnavailable)
}

// NewRemoteError wraps err with the operation context.
func NewRemoteError(op, table string, status int, err error) *RemoteError {
	return &RemoteError{Op: op, Table: table, Status: status, Err: err}
}

// IsRetryable reports whether err is a retryable remote failure.
func IsRetryable(err error) bool {
	var re *RemoteError
	if errors.As(err, &re) {
		return re.Retryable()
	}
	return false
}
