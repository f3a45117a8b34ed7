package service

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

// directAuthenticator lets the client authenticate straight against the
// remote store's user table when it runs with a direct database connection.
type directAuthenticator struct {
	auth AuthService

	mu      sync.Mutex
	session models.Session
}

// NewDirectAuthenticator adapts the server AuthService to the
// gateway.Authenticator the client signs in with.
func NewDirectAuthenticator(auth AuthService) gateway.Authenticator {
	return &directAuthenticator{auth: auth}
}

func (d *directAuthenticator) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	user, err := d.auth.Login(ctx, email, password)
	if err != nil {
		return models.Session{}, gateway.NewRemoteError("signin", "", 0, errors.Join(gateway.ErrUnauthorized, err))
	}
	return d.start(ctx, user)
}

func (d *directAuthenticator) SignUp(ctx context.Context, user models.User) (models.Session, error) {
	created, err := d.auth.RegisterUser(ctx, user)
	if err != nil {
		return models.Session{}, err
	}
	return d.start(ctx, created)
}

func (d *directAuthenticator) start(ctx context.Context, user models.User) (models.Session, error) {
	session, err := d.auth.NewSession(ctx, user)
	if err != nil {
		return models.Session{}, err
	}
	d.UseSession(session)
	return session, nil
}

func (d *directAuthenticator) UseSession(session models.Session) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.session = session
}

func (d *directAuthenticator) SignOut(context.Context) error {
	d.UseSession(models.Session{})
	return nil
}
