package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	service *service.InventoryService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.InventoryService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.service.ListProducts(r.Context())
	WriteSuccess(w, Envelope{"products": products}, h.logger)
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode product request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), req)
	if err != nil {
		h.handleError(w, err, 0)
		return
	}

	h.logger.Info("product added", "productId", product.ID, "name", product.Name)
	WriteSuccess(w, Envelope{"product": product}, h.logger)
}

// GetProduct handles GET /api/products/{productId}
// - 200: successful operation
// - 400: Invalid ID supplied
// - 404: Product not found
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.GetProduct(r.Context(), id)
	if err != nil {
		h.handleError(w, err, id)
		return
	}

	WriteSuccess(w, Envelope{"product": product}, h.logger)
}

// DeleteProduct handles DELETE /api/products/{productId}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	product, err := h.service.DeleteProduct(r.Context(), id)
	if err != nil {
		h.handleError(w, err, id)
		return
	}

	h.logger.Info("product removed", "productId", id)
	WriteSuccess(w, Envelope{"product": product}, h.logger)
}

// UpdateQuantity handles PUT /api/products/{productId}/quantity
func (h *ProductHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req models.UpdateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode quantity request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	product, err := h.service.UpdateQuantity(r.Context(), id, req.Quantity)
	if err != nil {
		h.handleError(w, err, id)
		return
	}

	WriteSuccess(w, Envelope{"product": product}, h.logger)
}

// UpdatePrice handles PUT /api/products/{productId}/price
func (h *ProductHandler) UpdatePrice(w http.ResponseWriter, r *http.Request) {
	id, ok := h.productID(w, r)
	if !ok {
		return
	}

	var req models.UpdatePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("failed to decode price request", "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid request body", h.logger)
		return
	}

	product, err := h.service.UpdatePrice(r.Context(), id, req.Price)
	if err != nil {
		h.handleError(w, err, id)
		return
	}

	WriteSuccess(w, Envelope{"product": product}, h.logger)
}

// SearchProducts handles GET /api/products/search?name=
func (h *ProductHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		h.handleError(w, err, 0)
		return
	}

	WriteSuccess(w, Envelope{"products": products}, h.logger)
}

// ProductsByCategory handles GET /api/products/category/{category}
func (h *ProductHandler) ProductsByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	products := h.service.ProductsByCategory(r.Context(), category)
	WriteSuccess(w, Envelope{"products": products}, h.logger)
}

// productID parses the {productId} path parameter, writing a 400 on failure
func (h *ProductHandler) productID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "productId")

	id, err := strconv.Atoi(raw)
	if err != nil {
		h.logger.Warn("invalid product ID format", "productId", raw, "error", err)
		WriteError(w, http.StatusBadRequest, "Invalid ID supplied", h.logger)
		return 0, false
	}

	return id, true
}

func (h *ProductHandler) handleError(w http.ResponseWriter, err error, id int) {
	var validation *service.ValidationError

	switch {
	case errors.As(err, &validation):
		h.logger.Warn("invalid product input", "productId", id, "error", err)
		WriteError(w, http.StatusBadRequest, validation.Message, h.logger)
	case errors.Is(err, service.ErrProductNotFound):
		h.logger.Info("product not found", "productId", id)
		WriteError(w, http.StatusNotFound, "Product not found", h.logger)
	default:
		h.logger.Error("product request failed", "productId", id, "error", err)
		WriteError(w, http.StatusInternalServerError, "Internal server error", h.logger)
	}
}
