package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/architeacher/svc-log-forwarder/internal/adapters/http/mappers"
	"github.com/architeacher/svc-log-forwarder/internal/infrastructure"
	"github.com/architeacher/svc-log-forwarder/internal/ports"
)

type OpsHandler struct {
	healthChecker ports.HealthChecker
	logger        infrastructure.Logger
}

func NewOpsHandler(healthChecker ports.HealthChecker, logger infrastructure.Logger) *OpsHandler {
	return &OpsHandler{
		healthChecker: healthChecker,
		logger:        logger,
	}
}

// GetHealth reports the broker link and the overall service status.
func (h *OpsHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	result := h.healthChecker.CheckHealth(r.Context())

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(mappers.HealthStatusToHTTP(result.OverallStatus))

	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode health response")
	}
}
