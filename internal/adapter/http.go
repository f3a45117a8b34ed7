package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/gateway"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	signUpPath  = "/auth/v1/signup"
	tokenPath   = "/auth/v1/token"
	signOutPath = "/auth/v1/logout"
	restPath    = "/rest/v1/"
)

// RESTAdapter is the HTTP client of the remote store.
type RESTAdapter struct {
	client *utils.HTTPClient
	apiKey string
	now    func() time.Time

	mu      sync.RWMutex
	session models.Session

	logger *logger.Logger
}

// NewRESTAdapter constructs a [RESTAdapter] for adapterCfg.RemoteURL. The URL
// may omit the scheme, in which case http is assumed.
func NewRESTAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (*RESTAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.RemoteURL)
	if err != nil {
		return nil, err
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	if adapterCfg.APIKey != "" {
		client.SetHeader("apikey", adapterCfg.APIKey)
	}

	return &RESTAdapter{
		client: client,
		apiKey: adapterCfg.APIKey,
		now:    time.Now,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyRemoteURL
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRemoteURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("%w: address must include host and scheme", ErrInvalidRemoteURL)
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SignIn exchanges email and password for a session and keeps it for
// subsequent table calls.
func (a *RESTAdapter) SignIn(ctx context.Context, email, password string) (models.Session, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(models.SignInRequest{Email: email, Password: password}).
		Post(tokenPath)
	if err != nil {
		return models.Session{}, transportError("sign in", "", err)
	}

	return a.acceptSession(ctx, "sign in", resp)
}

// SignUp registers user on the remote store and signs in as that user.
func (a *RESTAdapter) SignUp(ctx context.Context, user models.User) (models.Session, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.NewSignUpRequest(user)).
		Post(signUpPath)
	if err != nil {
		return models.Session{}, transportError("sign up", "", err)
	}

	return a.acceptSession(ctx, "sign up", resp)
}

func (a *RESTAdapter) acceptSession(ctx context.Context, op string, resp *resty.Response) (models.Session, error) {
	if err := mapHTTPError(op, "", resp); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "RESTAdapter.acceptSession").Str("op", op).Msg("remote auth failed")
		return models.Session{}, err
	}

	session, err := utils.DecodeJSON[models.Session](resp.Body())
	if err != nil {
		return models.Session{}, decodeError(op, "", err)
	}
	if session.AccessToken == "" {
		return models.Session{}, decodeError(op, "", fmt.Errorf("empty access token"))
	}

	// the owner id is the token subject when the body omits the user
	if session.User.UserID == "" {
		userID, parseErr := utils.ParseUserIDFromJWT(session.AccessToken)
		if parseErr != nil {
			return models.Session{}, decodeError(op, "", parseErr)
		}
		session.User.UserID = userID
	}
	session.IssuedAt = a.now()

	a.UseSession(session)
	return session, nil
}

// UseSession replaces the current session, e.g. with one restored from the
// local store.
func (a *RESTAdapter) UseSession(session models.Session) {
	a.mu.Lock()
	defer a.mu.Unlock()
	session.AccessToken = strings.TrimSpace(session.AccessToken)
	a.session = session
}

// SignOut drops the session. The server is told on a best-effort basis; the
// local session is cleared regardless.
func (a *RESTAdapter) SignOut(ctx context.Context) error {
	token := a.Token()
	a.UseSession(models.Session{})
	if token == "" {
		return nil
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Post(signOutPath)
	if err != nil {
		return transportError("sign out", "", err)
	}
	return mapHTTPError("sign out", "", resp)
}

// Token returns the current access token.
func (a *RESTAdapter) Token() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session.AccessToken
}

// Tables returns REST gateways for every synchronised dataset.
func (a *RESTAdapter) Tables() gateway.Tables {
	return gateway.Tables{
		Customers:     newRESTTable[models.CustomerRow](a, models.TableCustomers),
		Suppliers:     newRESTTable[models.SupplierRow](a, models.TableSuppliers),
		Products:      newRESTTable[models.ProductRow](a, models.TableProducts),
		LedgerEntries: newRESTTable[models.LedgerEntryRow](a, models.TableLedgerEntries),
	}
}

// authedRequest starts a request carrying the session token. Without a
// session there is nothing to act on behalf of.
func (a *RESTAdapter) authedRequest(ctx context.Context, op, table string) (*resty.Request, error) {
	token := a.Token()
	if token == "" {
		return nil, gateway.NewRemoteError(op, table, 0, fmt.Errorf("%w: %w", gateway.ErrUnauthorized, gateway.ErrNoSession))
	}

	return a.client.R().
		SetContext(ctx).
		SetAuthToken(token), nil
}
