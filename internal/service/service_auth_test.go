package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/MKhiriev/go-ledger-keeper/internal/config"
	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/store"
	"github.com/MKhiriev/go-ledger-keeper/internal/utils"
	"github.com/MKhiriev/go-ledger-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testServerAuth = config.ServerAuth{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "ledger-test",
	TokenDuration: time.Hour,
}

func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	return NewAuthService(repo, testServerAuth, logger.Nop()).(*authService), repo
}

// ── RegisterUser ─────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, utils.IsUUID(u.UserID), "server assigns the owner id")
			assert.Empty(t, u.Password, "plaintext never reaches the repository")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret1")))
			assert.Equal(t, models.RoleAdmin, u.Role)
			return u, nil
		},
	)

	user, err := svc.RegisterUser(ctx, models.User{Email: "owner@acme.in", Password: "secret1"})
	require.NoError(t, err)

	assert.NotEmpty(t, user.UserID)
	assert.Empty(t, user.PasswordHash)
	assert.Equal(t, "owner@acme.in", user.Email)
}

func TestAuthService_RegisterUser_KeepsRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) { return u, nil },
	)

	user, err := svc.RegisterUser(context.Background(), models.User{Email: "clerk@acme.in", Password: "secret1", Role: models.RoleAccountant})
	require.NoError(t, err)
	assert.Equal(t, models.RoleAccountant, user.Role)
}

func TestAuthService_RegisterUser_InvalidData(t *testing.T) {
	tests := []struct {
		name string
		user models.User
	}{
		{name: "empty email", user: models.User{Password: "secret1"}},
		{name: "bad email", user: models.User{Email: "owner", Password: "secret1"}},
		{name: "short password", user: models.User{Email: "owner@acme.in", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestAuthService(t, ctrl)

			_, err := svc.RegisterUser(context.Background(), tt.user)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestAuthService_RegisterUser_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Email: "owner@acme.in", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: "u1", Email: "owner@acme.in", PasswordHash: string(hash), Role: models.RoleAdmin}

	repo.EXPECT().FindUserByEmail(ctx, "owner@acme.in").Return(stored, nil).Times(2)

	user, err := svc.Login(ctx, "owner@acme.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.UserID)
	assert.Empty(t, user.PasswordHash)

	_, err = svc.Login(ctx, "owner@acme.in", "wrong-pass")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestAuthService_Login_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "secret1")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	_, err = svc.Login(ctx, "owner@acme.in", "")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	repo.EXPECT().FindUserByEmail(ctx, "ghost@acme.in").Return(models.User{}, store.ErrNoUserWasFound)
	_, err = svc.Login(ctx, "ghost@acme.in", "secret1")
	assert.ErrorIs(t, err, store.ErrNoUserWasFound)
}

// ── tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_NewSessionAndParse(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	session, err := svc.NewSession(ctx, models.User{UserID: "u1", Email: "owner@acme.in", PasswordHash: "hash"})
	require.NoError(t, err)

	assert.Equal(t, TokenTypeBearer, session.TokenType)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "u1", session.User.UserID)
	assert.Empty(t, session.User.PasswordHash)
	assert.False(t, session.IssuedAt.IsZero())
	assert.True(t, session.Valid())

	token, err := svc.ParseToken(ctx, session.AccessToken)
	require.NoError(t, err)
	userID, err := token.GetUserID()
	require.NoError(t, err)
	assert.Equal(t, "u1", userID)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	_, err := svc.ParseToken(ctx, "garbage")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	foreign, err := utils.GenerateJWTToken("someone-else", "u1", time.Hour, testServerAuth.TokenSignKey)
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, foreign.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)

	forged, err := utils.GenerateJWTToken(testServerAuth.TokenIssuer, "u1", time.Hour, "other-key")
	require.NoError(t, err)
	_, err = svc.ParseToken(ctx, forged.String())
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthService(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── direct authenticator ─────────────────────────────────────────────────────

func TestDirectAuthenticator_SignIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	direct := NewDirectAuthenticator(auth)
	ctx := context.Background()

	user := models.User{UserID: "u1", Email: "owner@acme.in"}
	session := models.Session{AccessToken: "t", TokenType: TokenTypeBearer, User: user}
	gomock.InOrder(
		auth.EXPECT().Login(ctx, "owner@acme.in", "secret1").Return(user, nil),
		auth.EXPECT().NewSession(ctx, user).Return(session, nil),
	)

	got, err := direct.SignIn(ctx, "owner@acme.in", "secret1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
	assert.NoError(t, direct.SignOut(ctx))
}

func TestDirectAuthenticator_SignInRejected(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	direct := NewDirectAuthenticator(auth)

	auth.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(models.User{}, ErrWrongPassword)

	_, err := direct.SignIn(context.Background(), "owner@acme.in", "nope")

	assert.ErrorIs(t, mapRemoteAuthError(err), ErrInvalidCredentials)
}

func TestDirectAuthenticator_SignUp(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	direct := NewDirectAuthenticator(auth)
	ctx := context.Background()

	in := models.User{Email: "owner@acme.in", Password: "secret1"}
	created := models.User{UserID: "u1", Email: "owner@acme.in"}
	auth.EXPECT().RegisterUser(ctx, in).Return(created, nil)
	auth.EXPECT().NewSession(ctx, created).Return(models.Session{AccessToken: "t", User: created}, nil)

	got, err := direct.SignUp(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "u1", got.User.UserID)

	taken := fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists)
	auth.EXPECT().RegisterUser(ctx, in).Return(models.User{}, taken)
	_, err = direct.SignUp(ctx, in)
	assert.ErrorIs(t, mapRemoteAuthError(err), ErrUserExists)
}
