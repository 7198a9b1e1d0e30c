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
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/forgot-password", h.forgotPassword)
		r.Post("/api/auth/verify-otp", h.verifyOTP)
	})

	// routes behind the bearer-token guard
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/api/auth/protected", h.protected)

		r.Route("/api/tasks", func(r chi.Router) {
			r.Post("/", h.createTask)
			r.Get("/", h.listTasks)
			r.Get("/{id}", h.getTask)
			r.Put("/{id}", h.updateTask)
			r.Delete("/{id}", h.deleteTask)
		})
	})

	return router
}
