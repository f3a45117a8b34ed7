package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
	"github.com/MKhiriev/go-ledger-keeper/internal/mock"
	"github.com/MKhiriev/go-ledger-keeper/internal/service"
	"github.com/MKhiriev/go-ledger-keeper/models"
)

const testToken = "test-token"

func TestNewHandler(t *testing.T) {
	svc := &service.Services{}
	log := logger.Nop()

	h := NewHandler(svc, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, log, h.logger)
	assert.NotSame(t, h, NewHandler(svc, log))
}

// ── Helpers ──────────────────────────────────────────────────────────────────

type testServer struct {
	router *chi.Mux
	auth   *mock.MockAuthService
	rows   *mock.MockRowService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	rows := mock.NewMockRowService(ctrl)

	h := NewHandler(&service.Services{AuthService: auth, RowService: rows}, logger.Nop())
	return &testServer{router: h.Init(), auth: auth, rows: rows}
}

// signedIn makes the auth middleware accept testToken for owner.
func (s *testServer) signedIn(owner string) {
	s.auth.EXPECT().
		ParseToken(gomock.Any(), testToken).
		Return(models.Token{UserID: owner}, nil)
}

func (s *testServer) do(t *testing.T, method, target, body string, withToken bool) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if withToken {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func decodeAPIError(t *testing.T, rr *httptest.ResponseRecorder) models.APIError {
	t.Helper()

	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &apiErr), rr.Body.String())
	return apiErr
}

func assertAPIError(t *testing.T, rr *httptest.ResponseRecorder, status int, message string) {
	t.Helper()

	assert.Equal(t, status, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.Equal(t, message, decodeAPIError(t, rr).Message)
}

func injectNopLogger(r *http.Request) *http.Request {
	return r.WithContext(logger.Nop().WithContext(r.Context()))
}
