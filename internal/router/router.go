package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/forumapi/forumapi/internal/middleware/metrics"
	"github.com/forumapi/forumapi/internal/setup"
)

// New creates and configures the route tree. Reading a thread is public;
// every write goes through the auth middleware.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Handle("/metrics", promhttp.Handler())

	h := deps.Handler
	authMw := deps.AuthMiddleware

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health", h.Health)

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
			r.Post("/logout", h.Logout)
		})

		r.Route("/threads", func(r chi.Router) {
			r.Get("/{threadId}", h.GetThread)

			r.Group(func(r chi.Router) {
				r.Use(authMw.NeedAuth())
				r.Post("/", h.CreateThread)
				r.Post("/{threadId}/comments", h.CreateComment)
				r.Delete("/{threadId}/comments/{commentId}", h.DeleteComment)
			})
		})
	})

	return r
}
