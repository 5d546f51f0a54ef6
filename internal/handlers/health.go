package handlers

import (
	"context"
	"net/http"
	"time"

	"RUMBLER_BACK-END/internal/dto"
	"RUMBLER_BACK-END/internal/store"
	"RUMBLER_BACK-END/internal/utils"
)

// HealthHandler handles health check related requests
type HealthHandler struct {
	store  store.Pinger
	region string
	now    func() time.Time
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(pinger store.Pinger, region string) *HealthHandler {
	return &HealthHandler{store: pinger, region: region, now: time.Now}
}

// Status godoc
// @Summary      Service status
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /health [get]
func (h *HealthHandler) Status(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.StatusResponse{
		Status:    "ok",
		Region:    h.region,
		Timestamp: h.now().UTC().Truncate(time.Millisecond),
	})
}

// HealthCheck godoc
// @Summary      Basic health check (no store)
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /healthz [get]
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// LivenessCheck godoc
// @Summary      Process liveness
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Router       /livez [get]
func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{Status: "alive"})
}

// ReadinessCheck godoc
// @Summary      Readiness (includes store connectivity)
// @Tags         health
// @Produce      json
// @Success      200  {object}  dto.HealthResponse
// @Failure      503  {object}  dto.HealthResponse
// @Router       /readyz [get]
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if h.store != nil {
		if err := h.store.Ping(ctx); err != nil {
			utils.WriteJSONResponse(w, http.StatusServiceUnavailable, dto.HealthResponse{
				Status:  "degraded",
				Details: map[string]any{"store": err.Error()},
			})
			return
		}
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.HealthResponse{
		Status:  "ready",
		Details: map[string]any{"store": "ok"},
	})
}
