package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vaultpass/vaultpass-engine/internal/middleware"
)

// NewRouter wires the HTTP routes. Requests under /api/v1 pass through
// limiter.
func NewRouter(gen *GeneratorHandler, str *StrengthHandler, m *MetricsHandler, limiter middleware.Limiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Get("/metrics", m.HandleMetrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))
		r.Post("/generate", gen.HandleGenerate)
		r.Get("/policy", gen.HandlePolicy)
		r.Post("/strength", str.HandleStrength)
		r.Get("/rules", str.HandleRules)
	})

	return r
}
