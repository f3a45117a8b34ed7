package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestInit_RegisteredRoutes(t *testing.T) {
	s := newTestServer(t)

	want := map[string][]string{
		"/auth/v1/signup":  {http.MethodPost},
		"/auth/v1/token":   {http.MethodPost},
		"/auth/v1/logout":  {http.MethodPost},
		"/rest/v1/{table}": {http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
	}

	got := map[string][]string{}
	err := chi.Walk(s.router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		got[route] = append(got[route], method)
		return nil
	})

	assert.NoError(t, err)
	for route, methods := range want {
		assert.ElementsMatch(t, methods, got[route], route)
	}
	assert.Len(t, got, len(want))
}

func TestInit_UnknownPathIsJSONNotFound(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/api/user/login", "", false)

	assertAPIError(t, rr, http.StatusNotFound, http.StatusText(http.StatusNotFound))
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/auth/v1/signup", "", false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_EchoesTraceID(t *testing.T) {
	s := newTestServer(t)

	rr := s.do(t, http.MethodGet, "/nowhere", "", false)

	assert.NotEmpty(t, rr.Header().Get(traceIDHeader))
}
