// Copyright (c) 2026 Demirhan Çelik Konstrüksiyon. All rights reserved.
// Author: yazilim@demirhancelik.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.

The route tree splits into two worlds: /api/v1/public serves the company
website read-only and unauthenticated, everything else under /api/v1 is
the admin panel behind JWT authentication and role guards.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/demirhancelik/corporate-api/internal/auth"
	"github.com/demirhancelik/corporate-api/internal/certificate"
	"github.com/demirhancelik/corporate-api/internal/contact"
	"github.com/demirhancelik/corporate-api/internal/content"
	"github.com/demirhancelik/corporate-api/internal/gallery"
	"github.com/demirhancelik/corporate-api/internal/machine"
	"github.com/demirhancelik/corporate-api/internal/platform/config"
	"github.com/demirhancelik/corporate-api/internal/platform/constants"
	"github.com/demirhancelik/corporate-api/internal/platform/middleware"
	"github.com/demirhancelik/corporate-api/internal/platform/sec"
	"github.com/demirhancelik/corporate-api/internal/project"
	"github.com/demirhancelik/corporate-api/internal/slide"
	"github.com/demirhancelik/corporate-api/internal/upload"
	"github.com/demirhancelik/corporate-api/internal/users"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the admin login endpoint.
	Auth *auth.Handler

	// Content manages the editable page and layout slots.
	Content *content.Handler

	// Project manages the reference project portfolio.
	Project *project.Handler

	// Machine manages the factory machine park.
	Machine *machine.Handler

	// Quality manages ISO and quality-system certificates.
	Quality *certificate.Handler

	// Safety manages work-safety certificates.
	Safety *certificate.Handler

	// Slide manages the landing-page carousel.
	Slide *slide.Handler

	// Gallery manages photo categories and images.
	Gallery *gallery.Handler

	// Contact manages the contact page cards.
	Contact *contact.Handler

	// Users manages admin panel accounts.
	Users *users.Handler

	// Upload relays files to the object store.
	Upload *upload.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, verifier middleware.TokenVerifier, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.Authenticate(verifier))
	r.Use(middleware.CORS(cfg, cfg.ExtraOrigins))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())

		// Read-only endpoints consumed by the public website.
		api.Route("/public", func(public chi.Router) {
			public.Mount("/", h.Content.PublicRoutes())
			public.Mount("/projects", h.Project.PublicRoutes())
			public.Mount("/slides", h.Slide.PublicRoutes())
			public.Mount("/gallery", h.Gallery.PublicRoutes())
			public.Mount("/contact", h.Contact.PublicRoutes())
			public.Mount("/quality-system", h.Quality.PublicRoutes())
			public.Mount("/safety-images", h.Safety.PublicRoutes())
		})

		// Admin panel. Editors manage content; account management needs
		// the admin role.
		api.Group(func(admin chi.Router) {
			admin.Use(middleware.RequireAuth)
			admin.Use(middleware.RequireRole(sec.RoleEditor))

			admin.Mount("/contents", h.Content.AdminRoutes())
			admin.Mount("/projects", h.Project.AdminRoutes())
			admin.Mount("/machines", h.Machine.AdminRoutes())
			admin.Mount("/quality-system", h.Quality.AdminRoutes())
			admin.Mount("/safety-images", h.Safety.AdminRoutes())
			admin.Mount("/slides", h.Slide.AdminRoutes())
			admin.Mount("/gallery", h.Gallery.AdminRoutes())
			admin.Mount("/contact", h.Contact.AdminRoutes())
			admin.Mount("/upload", h.Upload.AdminRoutes())

			admin.Group(func(adminOnly chi.Router) {
				adminOnly.Use(middleware.RequireRole(sec.RoleAdmin))
				adminOnly.Mount("/users", h.Users.AdminRoutes())
			})
		})
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
