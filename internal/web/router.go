package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Handle("/static/*", http.StripPrefix("/static/", s.StaticFS()))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, "index.html")
	})
	r.Get("/projects", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, "projects.html")
	})
	r.Get("/payments", func(w http.ResponseWriter, r *http.Request) {
		servePage(w, r, "payments.html")
	})

	return r
}
