// Package site composes every section of the marketing site into one
// HTTP handler.
package site

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"StudioSite/internal/admin"
	"StudioSite/internal/brands"
	"StudioSite/internal/careers"
	"StudioSite/internal/catalog"
	"StudioSite/internal/contact"
	"StudioSite/internal/content"
	"StudioSite/pkg/kit"
)

const readyTimeout = 2 * time.Second

// Deps are the section backends the handler serves from.
type Deps struct {
	Catalog catalog.Store
	Brands  *brands.Store
	Content *content.Loader
	Contact contact.Store

	// Admin is optional; nil leaves the operator surface unmounted.
	Admin *admin.Server

	ContactLimiter *kit.IPRateLimiter
}

// HTTPDeps configure the ambient layers around the routes.
type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	r := chi.NewRouter()

	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", readyz(deps, httpDeps.Log))

	gamesServer := &catalog.Server{Store: deps.Catalog, Log: httpDeps.Log}
	r.Mount("/games", gamesServer.Routes())

	r.Mount("/brands", brands.Handler(deps.Brands))
	r.Mount("/home", content.Handler(deps.Content))
	r.Mount("/careers", careers.Handler())

	contactServer := contact.NewServer(deps.Contact, httpDeps.Log)
	if deps.ContactLimiter != nil {
		r.Group(func(cr chi.Router) {
			cr.Use(deps.ContactLimiter.Middleware)
			cr.Mount("/contact", contactServer.Routes())
		})
	} else {
		r.Mount("/contact", contactServer.Routes())
	}

	if deps.Admin != nil {
		r.Mount("/admin", deps.Admin.Routes())
	}

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.AccessLog(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.RoutePattern))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		checks := []struct {
			name string
			ping func(context.Context) error
		}{
			{"catalog", deps.Catalog.Ping},
			{"contact", deps.Contact.Ping},
			{"content", deps.Content.Source.Ping},
		}

		for _, c := range checks {
			if err := c.ping(ctx); err != nil {
				log.Warn("readyz failed", zap.String("backend", c.name), zap.Error(err))
				kit.WriteError(w, r, http.StatusServiceUnavailable, c.name+" not ready", nil)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
	}
}
