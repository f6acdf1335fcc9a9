package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/service"
	"github.com/pkg/errors"
)

// OperationHandler exposes the undo log and inventory statistics
type OperationHandler struct {
	service     *service.InventoryService
	defaultLast int
	logger      *slog.Logger
}

// NewOperationHandler creates an operation handler. defaultLast is the
// number of entries returned by RecentOperations when n is absent or invalid.
func NewOperationHandler(service *service.InventoryService, defaultLast int, logger *slog.Logger) *OperationHandler {
	return &OperationHandler{
		service:     service,
		defaultLast: defaultLast,
		logger:      logger,
	}
}

// Undo handles POST /api/operations/undo
func (h *OperationHandler) Undo(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Undo(r.Context()); err != nil {
		if errors.Is(err, service.ErrNothingToUndo) {
			WriteError(w, http.StatusNotFound, "No operations to undo", h.logger)
			return
		}
		h.logger.Error("undo failed", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
		return
	}

	h.logger.Info("operation undone")
	WriteSuccess(w, nil, h.logger)
}

// RecentOperations handles GET /api/operations/recent?n=
func (h *OperationHandler) RecentOperations(w http.ResponseWriter, r *http.Request) {
	n, err := strconv.Atoi(r.URL.Query().Get("n"))
	if err != nil || n <= 0 {
		n = h.defaultLast
	}

	operations := h.service.RecentOperations(r.Context(), n)
	WriteSuccess(w, Envelope{"operations": operations}, h.logger)
}

// Statistics handles GET /api/statistics
func (h *OperationHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, Envelope{"statistics": h.service.Statistics(r.Context())}, h.logger)
}
