// Package router sets up the HTTP routes and middleware chain for the
// posts API server.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"blogpress/internal/handlers"
	"blogpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up.
func New(api *handlers.API) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/posts", func(r chi.Router) {
		r.Get("/", api.ListPosts)
		r.Post("/", api.CreatePost)
		r.Get("/{slugOrId}", api.GetPost)
		r.Patch("/{id}", api.UpdatePost)
		r.Delete("/{id}", api.DeletePost)
	})

	r.Get("/categories", api.ListCategories)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
