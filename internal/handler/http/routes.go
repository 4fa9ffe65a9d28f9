package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/sign-up", h.signUp)
		r.Post("/api/auth/sign-in", h.signIn)
		r.Post("/api/auth/token", h.token)
	})

	// routes behind the current-user resolver
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/me", h.me)
		r.Post("/api/database/", h.documents)
		r.Post("/api/database/update", h.updateDatabase)
	})

	return router
}
