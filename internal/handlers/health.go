package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

type statisticsProvider interface {
	Statistics(ctx context.Context) models.Statistics
}

// HealthHandler provides health check endpoint
type HealthHandler struct {
	stats  statisticsProvider
	logger *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(stats statisticsProvider, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		stats:  stats,
		logger: logger,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status        string    `json:"status"`
	Timestamp     time.Time `json:"timestamp"`
	Version       string    `json:"version"`
	Products      int       `json:"products"`
	PendingOrders int       `json:"pending_orders"`
}

// ServeHTTP handles health check requests
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats := h.stats.Statistics(r.Context())

	WriteJSON(w, http.StatusOK, HealthResponse{
		Status:        "healthy",
		Timestamp:     time.Now().UTC(),
		Version:       Version,
		Products:      stats.TotalProducts,
		PendingOrders: stats.PendingOrders,
	}, h.logger)
}
