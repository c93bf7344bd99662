package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsEndpoint exposes a Prometheus gatherer at Path.
// A nil Gatherer disables the endpoint.
type MetricsEndpoint struct {
	Path     string
	Gatherer prometheus.Gatherer
}

// NewRouter creates a new router with all routes configured
func NewRouter(h *Handler, me MetricsEndpoint) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (all routes)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusNotFound, "No route for "+r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		WriteProblem(w, r, http.StatusMethodNotAllowed, r.Method+" not allowed on "+r.URL.Path)
	})

	if me.Gatherer != nil && me.Path != "" {
		r.Handle(me.Path, promhttp.HandlerFor(me.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Get("/health", h.Health)
		r.Get("/icps", h.Categories)
		r.Get("/questions", h.Questions)

		// Protected routes (auth required)
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(h.apiKey))
			r.Use(BodyLimitMiddleware)
			r.Use(EvaluationIDMiddleware)
			r.Post("/classify", h.Classify)
			r.Post("/onboarding/classify", h.OnboardingClassify)
		})
	})

	return r
}
