package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/validators"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"golang.org/x/crypto/bcrypt"
)

// storedSession is the persisted form of a cloud session.
type storedSession struct {
	models.Session
	IssuedAt time.Time `json:"issued_at"`
}

// authState is what the session subscribers observe.
type authState struct {
	cloud   bool
	session *models.Session
	local   *models.LocalUser
}

// clientAuthService keeps the account of the device: local users with
// bcrypt hashes and, in cloud mode, the remote session.
type clientAuthService struct {
	data      *localData
	remote    gateway.Authenticator
	validator validators.Validator

	state *watchable[authState]

	now    func() time.Time
	logger *logger.Logger
}

// NewClientAuthService creates the auth service. remote may be nil, in which
// case only local accounts are available.
func NewClientAuthService(localStore store.LocalStorage, remote gateway.Authenticator, logger *logger.Logger) ClientAuthService {
	return newClientAuthService(newLocalData(localStore), remote, time.Now, logger)
}

func newClientAuthService(data *localData, remote gateway.Authenticator, now func() time.Time, logger *logger.Logger) *clientAuthService {
	return &clientAuthService{
		data:      data,
		remote:    remote,
		validator: validators.NewRecordValidator(),
		state:     newWatchable(authState{}, nil),
		now:       now,
		logger:    logger,
	}
}

// Restore loads the persisted mode and the session or local user of the
// previous run.
func (a *clientAuthService) Restore(ctx context.Context) {
	cloud := store.Load(ctx, a.data.ls, models.KeyCloudMode, false)
	if cloud && a.remote != nil {
		session := a.restoreSession(ctx)
		a.state.update(func(st *authState) { *st = authState{cloud: true, session: session} })
		return
	}

	var local *models.LocalUser
	if id := store.Load(ctx, a.data.ls, models.KeyCurrentUser, ""); id != "" {
		users := loadList[models.LocalUser](ctx, a.data, models.KeyUsers)
		if i := slices.IndexFunc(users, func(u models.LocalUser) bool { return u.ID == id }); i >= 0 {
			local = &users[i]
		}
	}
	a.state.update(func(st *authState) { *st = authState{local: local} })
}

// restoreSession returns the persisted session unless it has expired.
func (a *clientAuthService) restoreSession(ctx context.Context) *models.Session {
	stored := store.Load(ctx, a.data.ls, models.KeySession, storedSession{})
	session := stored.Session
	session.IssuedAt = stored.IssuedAt
	if !session.Valid() {
		return nil
	}
	if session.ExpiresIn > 0 && a.now().After(stored.IssuedAt.Add(time.Duration(session.ExpiresIn)*time.Second)) {
		a.logger.Info().Str("func", "clientAuthService.restoreSession").Str("owner_id", session.User.UserID).Msg("persisted session expired")
		_ = a.data.ls.Remove(ctx, models.KeySession)
		return nil
	}

	a.remote.UseSession(session)
	return &session
}

func (a *clientAuthService) RegisterLocal(ctx context.Context, creds models.Credentials) (models.LocalUser, error) {
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.LocalUser{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.LocalUser{}, fmt.Errorf("hash password: %w", err)
	}
	role := creds.Role
	if role == "" {
		role = models.RoleAdmin
	}
	user := models.LocalUser{
		ID:           newID(),
		Username:     creds.Username,
		PasswordHash: string(hash),
		Role:         role,
		CompanyName:  creds.CompanyName,
		GSTState:     creds.GSTState,
		CreatedAt:    a.now().UTC(),
	}

	err = updateList(ctx, a.data, models.KeyUsers, func(users []models.LocalUser) ([]models.LocalUser, error) {
		if slices.ContainsFunc(users, func(u models.LocalUser) bool { return u.SameUsername(creds.Username) }) {
			return nil, ErrUserExists
		}
		return append(users, user), nil
	})
	if err != nil {
		return models.LocalUser{}, err
	}
	return user, nil
}

func (a *clientAuthService) LoginLocal(ctx context.Context, username, password string) (models.LocalUser, error) {
	var found models.LocalUser
	err := updateList(ctx, a.data, models.KeyUsers, func(users []models.LocalUser) ([]models.LocalUser, error) {
		i := slices.IndexFunc(users, func(u models.LocalUser) bool { return u.SameUsername(username) })
		if i < 0 {
			return nil, ErrInvalidCredentials
		}
		if bcrypt.CompareHashAndPassword([]byte(users[i].PasswordHash), []byte(password)) != nil {
			return nil, errors.Join(ErrInvalidCredentials, ErrWrongPassword)
		}
		at := a.now().UTC()
		users[i].LastLogin = &at
		found = users[i]
		return users, nil
	})
	if err != nil {
		a.logger.Debug().Str("func", "clientAuthService.LoginLocal").Str("username", username).Err(err).Msg("local login rejected")
		return models.LocalUser{}, err
	}

	if err = store.Save(ctx, a.data.ls, models.KeyCurrentUser, found.ID); err != nil {
		return models.LocalUser{}, fmt.Errorf("save current user: %w", err)
	}
	a.state.update(func(st *authState) { st.local = &found })
	return found, nil
}

// SignIn authenticates against the remote store and persists the session.
func (a *clientAuthService) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	if a.remote == nil {
		return models.Session{}, ErrCloudNotConfigured
	}
	if err := a.validator.Validate(ctx, models.User{Email: email, Password: password}); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	session, err := a.remote.SignIn(ctx, email, password)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.SignIn").Str("email", email).Msg("cloud sign in failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrLoginOnServer, mapRemoteAuthError(err))
	}
	return session, a.acceptSession(ctx, session)
}

// SignUp registers a cloud account. The remote store signs the new user in.
func (a *clientAuthService) SignUp(ctx context.Context, user models.User) (models.Session, error) {
	if a.remote == nil {
		return models.Session{}, ErrCloudNotConfigured
	}
	if err := a.validator.Validate(ctx, user); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if user.Role == "" {
		user.Role = models.RoleAdmin
	}

	session, err := a.remote.SignUp(ctx, user)
	if err != nil {
		a.logger.Err(err).Str("func", "clientAuthService.SignUp").Str("email", user.Email).Msg("cloud sign up failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrRegisterOnServer, mapRemoteAuthError(err))
	}
	return session, a.acceptSession(ctx, session)
}

func (a *clientAuthService) acceptSession(ctx context.Context, session models.Session) error {
	if session.IssuedAt.IsZero() {
		session.IssuedAt = a.now().UTC()
	}
	if err := store.Save(ctx, a.data.ls, models.KeySession, storedSession{Session: session, IssuedAt: session.IssuedAt}); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	a.state.update(func(st *authState) { st.session = &session })
	return nil
}

// Logout ends the session of the current mode.
func (a *clientAuthService) Logout(ctx context.Context) error {
	if !a.state.get().cloud {
		a.state.update(func(st *authState) { st.local = nil })
		return a.data.ls.Remove(ctx, models.KeyCurrentUser)
	}

	a.state.update(func(st *authState) { st.session = nil })
	var errs []error
	if err := a.data.ls.Remove(ctx, models.KeySession); err != nil {
		errs = append(errs, fmt.Errorf("remove session: %w", err))
	}
	if a.remote != nil {
		if err := a.remote.SignOut(ctx); err != nil {
			errs = append(errs, fmt.Errorf("remote sign out: %w", err))
		}
	}
	return errors.Join(errs...)
}

// SwitchToCloudMode persists the mode and picks up a still valid session.
func (a *clientAuthService) SwitchToCloudMode(ctx context.Context) error {
	if a.remote == nil {
		return ErrCloudNotConfigured
	}
	if err := store.Save(ctx, a.data.ls, models.KeyCloudMode, true); err != nil {
		return fmt.Errorf("save cloud mode: %w", err)
	}
	session := a.restoreSession(ctx)
	a.state.update(func(st *authState) { *st = authState{cloud: true, session: session} })
	return nil
}

// SwitchToLocalMode persists the mode; the cloud session is forgotten for
// this run but stays on disk for the next switch.
func (a *clientAuthService) SwitchToLocalMode(ctx context.Context) error {
	if err := store.Save(ctx, a.data.ls, models.KeyCloudMode, false); err != nil {
		return fmt.Errorf("save cloud mode: %w", err)
	}
	a.state.update(func(st *authState) { *st = authState{} })
	return nil
}

// Context is the session snapshot a sync cycle runs with.
func (a *clientAuthService) Context() models.SyncContext {
	return syncContextOf(a.state.get())
}

func syncContextOf(st authState) models.SyncContext {
	sc := models.SyncContext{CloudMode: st.cloud}
	if st.cloud && st.session.Valid() {
		sc.OwnerID = st.session.User.UserID
	}
	return sc
}

func (a *clientAuthService) IsCloudMode() bool {
	return a.state.get().cloud
}

func (a *clientAuthService) IsAuthenticated() bool {
	st := a.state.get()
	if st.cloud {
		return st.session.Valid()
	}
	return st.local != nil
}

// CurrentRole is the role of the signed-in user, empty when nobody is.
func (a *clientAuthService) CurrentRole() models.UserRole {
	st := a.state.get()
	switch {
	case st.cloud && st.session.Valid():
		if st.session.User.Role == "" {
			return models.RoleViewer
		}
		return st.session.User.Role
	case !st.cloud && st.local != nil:
		return st.local.Role
	default:
		return ""
	}
}

func (a *clientAuthService) HasPermission(required models.UserRole) bool {
	role := a.CurrentRole()
	return role != "" && role.Allows(required)
}

// Subscribe reports the sync context after every session or mode change.
func (a *clientAuthService) Subscribe() (<-chan models.SyncContext, func()) {
	src, cancel := a.state.subscribe()
	out := make(chan models.SyncContext, 1)
	go func() {
		defer close(out)
		for st := range src {
			sc := syncContextOf(st)
			select {
			case <-out:
			default:
			}
			out <- sc
		}
	}()
	return out, cancel
}
