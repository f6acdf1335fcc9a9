package handlers

import (
	"net/http"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
)

type orderResponse struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Order   models.Order `json:"order"`
}

type ordersResponse struct {
	Success bool           `json:"success"`
	Orders  []models.Order `json:"orders"`
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
		checkResponse  func(*testing.T, models.Order)
	}{
		{
			name:           "successful order",
			requestBody:    models.OrderRequest{ProductID: 2, Quantity: 3},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, order models.Order) {
				if order.ID == "" {
					t.Error("order ID is empty")
				}
				if order.ProductName != "Mouse" {
					t.Errorf("product name = %q, want Mouse", order.ProductName)
				}
				if order.TotalPrice != 29.99*3 {
					t.Errorf("total = %f, want %f", order.TotalPrice, 29.99*3)
				}
			},
		},
		{
			name:           "zero quantity",
			requestBody:    models.OrderRequest{ProductID: 2, Quantity: 0},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Quantity must be positive",
		},
		{
			name:           "insufficient stock",
			requestBody:    models.OrderRequest{ProductID: 1, Quantity: 11},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Insufficient stock! Available: 10",
		},
		{
			name:           "unknown product",
			requestBody:    models.OrderRequest{ProductID: 99999, Quantity: 1},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Product not found",
		},
		{
			name:           "invalid JSON",
			requestBody:    "invalid json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, true)

			w := do(t, r, http.MethodPost, "/api/orders", tt.requestBody)
			if w.Code != tt.expectedStatus {
				t.Fatalf("status = %d, want %d", w.Code, tt.expectedStatus)
			}

			var resp orderResponse
			decode(t, w, &resp)

			if resp.Error != tt.expectedError {
				t.Errorf("error = %q, want %q", resp.Error, tt.expectedError)
			}
			if tt.checkResponse != nil {
				tt.checkResponse(t, resp.Order)
			}
		})
	}
}

func TestOrderHandler_Lifecycle(t *testing.T) {
	r := newTestRouter(t, false)

	do(t, r, http.MethodPost, "/api/products", models.CreateProductRequest{Name: "Widget", Category: "Tools", Price: 10, Quantity: 5})

	w := do(t, r, http.MethodPost, "/api/orders", models.OrderRequest{ProductID: 1, Quantity: 3})
	if w.Code != http.StatusOK {
		t.Fatalf("create order status = %d", w.Code)
	}
	var created orderResponse
	decode(t, w, &created)
	if created.Order.TotalPrice != 30 {
		t.Errorf("total = %f, want 30", created.Order.TotalPrice)
	}

	w = do(t, r, http.MethodGet, "/api/orders", nil)
	var pending ordersResponse
	decode(t, w, &pending)
	if len(pending.Orders) != 1 || pending.Orders[0].ID != created.Order.ID {
		t.Fatalf("unexpected pending orders %+v", pending.Orders)
	}

	w = do(t, r, http.MethodPost, "/api/orders/process", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("process status = %d", w.Code)
	}
	var processed orderResponse
	decode(t, w, &processed)
	if processed.Order.ID != created.Order.ID {
		t.Errorf("processed order %q, want %q", processed.Order.ID, created.Order.ID)
	}

	w = do(t, r, http.MethodGet, "/api/products/1", nil)
	var product productResponse
	decode(t, w, &product)
	if product.Product.Quantity != 2 {
		t.Errorf("quantity after processing = %d, want 2", product.Product.Quantity)
	}

	w = do(t, r, http.MethodPost, "/api/orders/process", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 on empty queue, got %d", w.Code)
	}
	var empty orderResponse
	decode(t, w, &empty)
	if empty.Error != "No orders in queue" {
		t.Errorf("error = %q", empty.Error)
	}
}
