package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-ledger-keeper/internal/app"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const grantTypePassword = "password"

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid_request", app.MsgInvalidDataProvided)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req.User())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Str("email", req.Email).Msg("registration rejected")
			writeError(w, err)
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeAPIError(w, http.StatusInternalServerError, "internal", app.MsgRegistrationFailed)
		}
		return
	}

	h.writeSession(w, r, registeredUser)
}

// token serves the password grant. Other grant types are not issued.
func (h *Handler) token(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if grantType := r.URL.Query().Get("grant_type"); grantType != grantTypePassword {
		log.Warn().Str("grant_type", grantType).Msg("unsupported grant type")
		writeAPIError(w, http.StatusBadRequest, "unsupported_grant_type", app.MsgUnsupportedGrantType)
		return
	}

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeAPIError(w, http.StatusBadRequest, "invalid_request", app.MsgInvalidDataProvided)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided),
			errors.Is(err, store.ErrNoUserWasFound),
			errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			writeError(w, err)
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeAPIError(w, http.StatusInternalServerError, "internal", app.MsgLoginFailed)
		}
		return
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")
	h.writeSession(w, r, foundUser)
}

// logout answers 204 for any valid token. Tokens are stateless and simply
// expire, so there is nothing to revoke.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	logger.FromRequest(r).Debug().Str("id", userID).Msg("user signed out")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, user models.User) {
	session, err := h.services.AuthService.NewSession(r.Context(), user)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("creation of token failed")
		writeAPIError(w, http.StatusInternalServerError, "internal", app.MsgInternalServerError)
		return
	}

	w.Header().Set("Authorization", "Bearer "+session.AccessToken)
	_, _ = utils.WriteJSON(w, session, http.StatusOK)
}
