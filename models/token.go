package models

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the remote store server.
//
// UserID caches the "sub" claim, which is the owner identity the server
// uses to scope every table request.
type Token struct {
	*jwt.Token `json:"-"`

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns the owner identity, reading the "sub" claim when it was
// not cached at parse time.
func (t *Token) GetUserID() (string, error) {
	if t.UserID != "" {
		return t.UserID, nil
	}
	if t.Token == nil || t.Claims == nil {
		return "", errors.New("error extracting UserID from token: no claims")
	}

	sub, err := t.Claims.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if sub == "" {
		return "", errors.New("error extracting UserID from token: empty subject")
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
