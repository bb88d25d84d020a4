package http

import (
	"net/http"

	"job-efficiency/internal/aggregators"
	"job-efficiency/internal/shared/loggers"
	"job-efficiency/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router. Dashboard assets are served from
// staticDir when it is not empty.
func NewRouter(efficiencyService aggregators.EfficiencyService, httpLogger loggers.Logger, staticDir string) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	efficiencySummaryHandler := NewEfficiencySummaryHandler(efficiencyService)
	healthHandler := NewHealthHandler()

	// Routes
	router.Get("/api/job-efficiency-summary", errorHandlingAdapter(efficiencySummaryHandler))
	router.Get("/health", errorHandlingAdapter(healthHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	if staticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(staticDir)))
	}

	return router
}
