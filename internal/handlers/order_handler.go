package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/service"
	"github.com/pkg/errors"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	service *service.InventoryService
	log     *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.InventoryService, log *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		log:     log,
	}
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req models.OrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.log.Warn("failed to decode order request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.log)
		return
	}

	order, err := h.service.CreateOrder(r.Context(), req)
	if err != nil {
		var validation *service.ValidationError
		var stock *service.InsufficientStockError

		switch {
		case errors.As(err, &validation):
			WriteError(w, http.StatusBadRequest, validation.Message, h.log)
		case errors.As(err, &stock):
			h.log.Info("order rejected", "product_id", req.ProductID, "requested", req.Quantity, "available", stock.Available)
			WriteError(w, http.StatusBadRequest, fmt.Sprintf("Insufficient stock! Available: %d", stock.Available), h.log)
		case errors.Is(err, service.ErrProductNotFound):
			WriteError(w, http.StatusNotFound, "Product not found", h.log)
		default:
			h.log.Error("failed to create order", "error", err)
			WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		}
		return
	}

	WriteSuccess(w, Envelope{"order": order}, h.log)
	h.log.Info("order queued", "order_id", order.ID, "product_id", order.ProductID, "quantity", order.Quantity)
}

// ProcessOrder handles POST /api/orders/process
func (h *OrderHandler) ProcessOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.service.ProcessOrder(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoOrders) {
			WriteError(w, http.StatusNotFound, "No orders in queue", h.log)
			return
		}
		h.log.Error("failed to process order", "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.log)
		return
	}

	WriteSuccess(w, Envelope{"order": order}, h.log)
	h.log.Info("order processed", "order_id", order.ID, "product_id", order.ProductID, "quantity", order.Quantity)
}

// PendingOrders handles GET /api/orders
func (h *OrderHandler) PendingOrders(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, Envelope{"orders": h.service.PendingOrders(r.Context())}, h.log)
}
