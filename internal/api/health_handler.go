package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dkeller/item-api/internal/api/shared"
	"github.com/dkeller/item-api/internal/store"
)

// HealthResponse represents the response data for the health endpoint.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
	Service   string    `json:"service"`
}

// ReadinessResponse represents the response data for the readiness probe.
type ReadinessResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// LivenessResponse represents the response data for the liveness probe.
type LivenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler handles health and Kubernetes probe requests.
type HealthHandler struct {
	service   string
	version   string
	itemStore store.ItemStore
	logger    *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
// The item store is only consulted by the readiness probe; health and
// liveness report on the process alone.
func NewHealthHandler(
	service, version string,
	itemStore store.ItemStore,
	logger *slog.Logger,
) *HealthHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for HealthHandler")
	}

	return &HealthHandler{
		service:   service,
		version:   version,
		itemStore: itemStore,
		logger:    logger.With(slog.String("component", "health_handler")),
	}
}

// HealthCheck handles GET /health requests.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   h.version,
		Service:   h.service,
	})
}

// ReadinessCheck handles GET /health/ready requests.
// It verifies the item store answers before reporting ready.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"application": "ok",
	}
	status := "ready"
	statusCode := http.StatusOK

	if h.itemStore != nil {
		if _, err := h.itemStore.Stats(r.Context()); err != nil {
			h.logger.Error("readiness check failed", slog.String("error", err.Error()))
			checks["item_store"] = "failing"
			status = "not_ready"
			statusCode = http.StatusServiceUnavailable
		} else {
			checks["item_store"] = "ok"
		}
	}

	shared.RespondWithJSON(w, r, statusCode, ReadinessResponse{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Checks:    checks,
	})
}

// LivenessCheck handles GET /health/live requests.
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, LivenessResponse{
		Status:    "alive",
		Timestamp: time.Now().UTC(),
	})
}
