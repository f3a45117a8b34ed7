package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestCheckHTTPMethod_UnsupportedMethodIsNotFound(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/rest/v1/{table}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	for _, method := range []string{http.MethodPut, http.MethodPost, http.MethodDelete} {
		t.Run(method, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(method, "/rest/v1/customers", nil))

			assertAPIError(t, rr, http.StatusNotFound, http.StatusText(http.StatusNotFound))
		})
	}
}

func TestCheckHTTPMethod_RegisteredMethodStillWorks(t *testing.T) {
	router := chi.NewRouter()
	router.Get("/rest/v1/{table}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/rest/v1/customers", nil))

	assert.Equal(t, http.StatusTeapot, rr.Code)
}
