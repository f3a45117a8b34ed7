package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/v1/signup", h.signUp)
		r.Post("/auth/v1/token", h.token)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/auth/v1/logout", h.logout)

		r.Get("/rest/v1/{table}", h.selectRows)
		r.Post("/rest/v1/{table}", h.upsertRows)
		r.Patch("/rest/v1/{table}", h.updateRow)
		r.Delete("/rest/v1/{table}", h.deleteRow)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
