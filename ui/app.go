// Package ui exposes the import pipeline over HTTP: a multipart
// upload endpoint returning the full processing result, the Drive
// photo proxy, and health.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"caseflow/app"
	"caseflow/internal"
	"caseflow/internal/config"
	"caseflow/ports"
)

// App is the HTTP application.
type App struct {
	router  *chi.Mux
	imports *app.ImportService
	store   ports.RecordStore
	fetcher ports.PhotoFetcher
	cfg     config.ImportConfig
	log     *internal.Logger
}

// NewApp wires the HTTP layer. store may be nil when persistence is
// not configured; the persist option then reports an error per
// request instead of failing boot.
func NewApp(imports *app.ImportService, store ports.RecordStore, fetcher ports.PhotoFetcher, cfg config.ImportConfig, log *internal.Logger) *App {
	if log == nil {
		log = internal.DefaultLogger
	}
	a := &App{
		router:  chi.NewRouter(),
		imports: imports,
		store:   store,
		fetcher: fetcher,
		cfg:     cfg,
		log:     log,
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Post("/imports", a.handleImport)
		r.Get("/photos/proxy", a.handlePhotoProxy)
	})
}

// Router returns the chi mux for mounting or serving.
func (a *App) Router() http.Handler {
	return a.router
}

// Serve starts the HTTP server on the given port.
func (a *App) Serve(port string) error {
	a.log.Info("HTTP server listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
