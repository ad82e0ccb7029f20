package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/safeplace/safeplace-server/internal/application"
)

// Handler is the HTTP adapter entrypoint for the SafePlace use-cases.
// Keeping only the application dependency here preserves clean adapter
// boundaries.
type Handler struct {
	service *application.Service
	ready   func() error
}

// NewHandler constructs an HTTP handler bound to the application
// service. readyCheck backs /readyz; nil means always ready.
func NewHandler(service *application.Service, readyCheck func() error) *Handler {
	return &Handler{service: service, ready: readyCheck}
}

// NewRouter registers the SafePlace routes and middleware stack.
// Centralizing routes here keeps auth gating and error behavior
// consistent across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/api", func(r chi.Router) {
		r.Get("/", handler.apiRoot)
		r.Post("/register", handler.register)
		r.Post("/login", handler.login)

		r.Group(func(r chi.Router) {
			r.Use(handler.authMiddleware)
			r.Post("/chat", handler.sendMessage)
			r.Get("/chat", handler.chatHistory)
			r.Post("/journal", handler.addEntry)
			r.Get("/journal", handler.listEntries)
			r.Get("/journal/trend", handler.moodTrend)
		})
	})

	return r
}
