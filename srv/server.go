// Package srv exposes the rental-application intake service: it accepts
// submitted applications, renders each into a PDF and mails it to the
// property managers, and serves the rendered document back for download.
package srv

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/patrickmn/go-cache"

	"github.com/plaxsys/rentapp/appform"
	"github.com/plaxsys/rentapp/assets"
	"github.com/plaxsys/rentapp/mail"
)

// Server wires the intake routes to the layout engine and its
// collaborators. Rendered PDFs are cached so a download right after
// submission does not pay for a second layout pass.
type Server struct {
	router  chi.Router
	store   *Store
	fetcher *assets.Fetcher
	mailer  *mail.Mailer
	opts    appform.Options
	pdfs    *cache.Cache
}

func New(fetcher *assets.Fetcher, mailer *mail.Mailer, opts appform.Options) *Server {
	s := &Server{
		router:  chi.NewRouter(),
		store:   NewStore(),
		fetcher: fetcher,
		mailer:  mailer,
		opts:    opts,
		pdfs:    cache.New(24*time.Hour, 1*time.Hour),
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(corsMiddleware)

	s.router.Get("/healthz", s.handleHealth)
	s.router.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, time.Minute))
		r.Post("/applications", s.handleSubmit)
	})
	s.router.Get("/applications/{id}/pdf", s.handleDownload)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
