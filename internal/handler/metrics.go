package handler

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/common/expfmt"
	"github.com/vaultpass/vaultpass-engine/internal/metrics"
)

// MetricsHandler serves the Prometheus text exposition.
type MetricsHandler struct {
	registry *metrics.Registry
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(reg *metrics.Registry) *MetricsHandler {
	return &MetricsHandler{registry: reg}
}

// HandleMetrics handles GET /metrics requests.
func (h *MetricsHandler) HandleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", string(expfmt.NewFormat(expfmt.TypeTextPlain)))
	w.WriteHeader(http.StatusOK)
	if err := h.registry.WriteText(w); err != nil {
		slog.Warn("write metrics", "error", err)
	}
}
