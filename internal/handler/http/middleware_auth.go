package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It extracts the bearer token from the "Authorization" header, validates it
// via [service.AuthService.ParseToken] and stores the owner identity ("sub"
// claim) in the request context with [utils.WithUserID].
//
// Missing, malformed, expired or foreign tokens are rejected with 401 and a
// JSON error body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeAPIError(w, http.StatusUnauthorized, "invalid_token", ErrEmptyAuthorizationHeader.Error())
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeAPIError(w, http.StatusUnauthorized, "invalid_token", err.Error())
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			writeAPIError(w, http.StatusUnauthorized, "invalid_token", app.MsgTokenIsExpiredOrInvalid)
			return
		}

		userID, err := token.GetUserID()
		if err != nil {
			log.Err(err).Msg("token carries no owner")
			writeAPIError(w, http.StatusUnauthorized, "invalid_token", app.MsgNoUserIDProvided)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(ctx, userID)))
	})
}

// getTokenFromAuthHeader extracts the token from "Bearer <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
