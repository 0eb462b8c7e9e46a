package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"roottrace/adapters/excel"
	"roottrace/app"
	"roottrace/domain/knowledge"
	"roottrace/internal"
	"roottrace/internal/jobs"
	"roottrace/ports"
)

// App represents the HTTP API application
type App struct {
	router    *chi.Mux
	resolver  *app.ResolverService
	dashboard *app.DashboardService
	repo      ports.JobRepository
	runner    *jobs.Runner
	kb        *knowledge.Base
	exporter  *excel.ReportWriter
	logger    *internal.Logger
}

// Config holds API application configuration
type Config struct {
	Port string
}

// NewApp wires the HTTP surface around the resolution core
func NewApp(resolver *app.ResolverService, dashboard *app.DashboardService, repo ports.JobRepository, runner *jobs.Runner, kb *knowledge.Base, logger *internal.Logger) *App {
	a := &App{
		router:    chi.NewRouter(),
		resolver:  resolver,
		dashboard: dashboard,
		repo:      repo,
		runner:    runner,
		kb:        kb,
		exporter:  excel.NewReportWriter(),
		logger:    logger,
	}

	a.setupMiddleware()
	a.setupRoutes()
	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the API routes
func (a *App) setupRoutes() {
	a.router.Get("/health", a.handleHealth)

	a.router.Route("/api/v1", func(r chi.Router) {
		r.Post("/analysis/submit", a.handleSubmitAnalysis)
		r.Get("/analysis/status/{jobID}", a.handleJobStatus)
		r.Get("/analysis/result/{jobID}", a.handleJobResult)
		r.Get("/analysis/report/{jobID}", a.handleJobReport)
		r.Get("/analysis/export/{jobID}", a.handleJobExport)
		r.Get("/medical/heritage/{region}", a.handleMedicalHeritage)
		r.Get("/cultural/resources/{group}", a.handleCulturalResources)
		r.Get("/stats/dashboard", a.handleDashboard)
	})
}

// Router exposes the configured router for serving and tests
func (a *App) Router() http.Handler {
	return a.router
}

// Run starts the HTTP server
func (a *App) Run(port string) error {
	a.logger.Info("API listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
