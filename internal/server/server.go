// Package server implements the HTTP placement service.
//
// The service exposes the overlay placement engine to rendering hosts that
// prefer an API boundary over linking the library:
//
//	POST   /v1/placements           compute one control placement
//	POST   /v1/plans                compute a full gallery plan
//	GET    /v1/profiles             list saved gallery profiles
//	GET    /v1/profiles/{id}        fetch a profile
//	PUT    /v1/profiles/{id}        create or update a profile
//	DELETE /v1/profiles/{id}        delete a profile
//	POST   /v1/profiles/{id}/plan   compute the plan for a saved profile
//	POST   /v1/instances            mount a computed plan
//	GET    /v1/instances/{id}       fetch a mounted instance
//	DELETE /v1/instances/{id}       unmount an instance
//	GET    /healthz                 liveness probe
//
// Plan responses are memoized through pkg/cache: the engine is pure, so a
// hash of the serialized gallery declaration fully identifies the result.
package server

import (
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pixelgrid/overlaykit/pkg/cache"
	"github.com/pixelgrid/overlaykit/pkg/gallery"
	"github.com/pixelgrid/overlaykit/pkg/observability"
	"github.com/pixelgrid/overlaykit/pkg/profile"
)

// PlanCacheTTL bounds how long a memoized plan stays valid. Placements are
// deterministic, so the TTL only caps cache growth.
const PlanCacheTTL = 24 * time.Hour

// Config holds the server's collaborators. Nil fields get safe defaults:
// a null cache, an in-process file-less profile store is NOT defaulted (a
// nil store disables the profile routes), and a discard logger.
type Config struct {
	Logger *log.Logger
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  profile.Store
}

// Server wires the placement engine, profile store, cache, and instance
// registry behind a chi router.
type Server struct {
	logger   *log.Logger
	cache    cache.Cache
	keyer    cache.Keyer
	store    profile.Store
	registry *gallery.Registry
	router   chi.Router
}

// New creates a Server with its routes registered.
func New(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Cache == nil {
		cfg.Cache = cache.NewNullCache()
	}
	if cfg.Keyer == nil {
		cfg.Keyer = cache.NewDefaultKeyer()
	}

	s := &Server{
		logger:   cfg.Logger,
		cache:    cfg.Cache,
		keyer:    cfg.Keyer,
		store:    cfg.Store,
		registry: gallery.NewRegistry(),
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/placements", s.handlePlacement)
		r.Post("/plans", s.handlePlan)

		if s.store != nil {
			r.Route("/profiles", func(r chi.Router) {
				r.Get("/", s.handleProfileList)
				r.Get("/{id}", s.handleProfileGet)
				r.Put("/{id}", s.handleProfilePut)
				r.Delete("/{id}", s.handleProfileDelete)
				r.Post("/{id}/plan", s.handleProfilePlan)
			})
		}

		r.Route("/instances", func(r chi.Router) {
			r.Post("/", s.handleInstanceMount)
			r.Get("/{id}", s.handleInstanceGet)
			r.Delete("/{id}", s.handleInstanceUnmount)
		})
	})

	s.router = r
	return s
}

// Handler returns the server's HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Close tears down the instance registry. The cache and store are owned by
// the caller and closed there.
func (s *Server) Close() {
	s.registry.Close()
}

// requestLogger logs each request and reports it to the server hooks.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", elapsed.Round(time.Microsecond),
		)
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
