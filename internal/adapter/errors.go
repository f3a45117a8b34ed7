package adapter

import "errors"

var (
	ErrEmptyRemoteURL   = errors.New("empty remote store url")
	ErrInvalidRemoteURL = errors.New("invalid remote store url")
)
