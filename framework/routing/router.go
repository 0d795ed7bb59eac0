// Package routing wraps chi with the small surface the registry server uses.
//
//	r := routing.New()
//	r.Prefix("/registry", func(r *routing.Router) {
//	    r.Get("/names/{name}", h.Name)
//	})
package routing

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Router wraps chi.Router with a few helpers.
type Router struct {
	mux chi.Router
}

// New creates a Router with sane defaults (Logger, Recoverer).
func New() *Router {
	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	return &Router{mux: r}
}

// Bare creates a Router without default middleware, for tests.
func Bare() *Router {
	return &Router{mux: chi.NewRouter()}
}

// ── HTTP verbs ───────────────────────────────────────────────────────────────

func (r *Router) Get(pattern string, h http.HandlerFunc) { r.mux.Get(pattern, h) }

// ── Groups & Prefixes ────────────────────────────────────────────────────────

// Prefix creates a sub-router with a URL prefix.
func (r *Router) Prefix(pattern string, fn func(r *Router)) {
	r.mux.Route(pattern, func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Group creates an inline group that shares middleware with nothing outside it.
func (r *Router) Group(fn func(r *Router)) {
	r.mux.Group(func(mx chi.Router) {
		fn(&Router{mux: mx})
	})
}

// Mount attaches h under pattern.
func (r *Router) Mount(pattern string, h http.Handler) { r.mux.Mount(pattern, h) }

// Middleware adds one or more middleware to the router.
func (r *Router) Middleware(mw ...func(http.Handler) http.Handler) {
	r.mux.Use(mw...)
}

// ── Params ───────────────────────────────────────────────────────────────────

// Param extracts a URL param.
func Param(r *http.Request, key string) string {
	return chi.URLParam(r, key)
}

// ── Serve ────────────────────────────────────────────────────────────────────

// ServeHTTP implements http.Handler so Router can be passed to http.Server.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}
