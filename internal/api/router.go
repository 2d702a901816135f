package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/tomgiova97/freelance-dashboard/internal/api/calendar"
	"github.com/tomgiova97/freelance-dashboard/internal/api/middleware"
	"github.com/tomgiova97/freelance-dashboard/internal/api/payments"
	"github.com/tomgiova97/freelance-dashboard/internal/api/projects"
	"github.com/tomgiova97/freelance-dashboard/internal/api/tasks"
)

// setupRouter creates and configures the chi router with all routes.
func (s *Server) setupRouter() *chi.Mux {
	r := chi.NewRouter()

	ipLimiter := middleware.NewRateLimiter(s.config.RateLimitPerIP)

	// Global middleware
	r.Use(middleware.RequestLogger(s.config.Verbose))
	r.Use(middleware.Recoverer)
	r.Use(middleware.PrometheusMiddleware)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimitByIP(ipLimiter))

		projectHandler := projects.NewHandler(s.storage)
		r.Route("/projects", func(r chi.Router) {
			r.Get("/", projectHandler.List)
			r.Post("/", projectHandler.Create)
		})

		taskHandler := tasks.NewHandler(s.storage)
		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", taskHandler.List)
			r.Post("/", taskHandler.Create)
			r.Get("/project/{projectId}", taskHandler.ListByProject)
		})

		paymentHandler := payments.NewHandler(s.storage)
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", paymentHandler.List)
			r.Post("/", paymentHandler.Create)
		})

		calendarHandler := calendar.NewHandler(s.storage)
		r.Get("/calendar/week", calendarHandler.Week)
	})

	// Health check (public, no rate limit)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Browser UI
	if s.web != nil {
		r.Mount("/", s.web.Routes())
	}

	return r
}
