package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
)

type operationsResponse struct {
	Success    bool                     `json:"success"`
	Operations []models.OperationRecord `json:"operations"`
}

type statisticsResponse struct {
	Success    bool              `json:"success"`
	Statistics models.Statistics `json:"statistics"`
}

func TestOperationHandler_Undo(t *testing.T) {
	r := newTestRouter(t, false)

	w := do(t, r, http.MethodPost, "/api/operations/undo", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 with empty log, got %d", w.Code)
	}

	do(t, r, http.MethodPost, "/api/products", models.CreateProductRequest{Name: "A", Category: "X", Price: 1, Quantity: 1})
	do(t, r, http.MethodPost, "/api/products", models.CreateProductRequest{Name: "B", Category: "X", Price: 1, Quantity: 1})
	do(t, r, http.MethodDelete, "/api/products/1", nil)

	w = do(t, r, http.MethodPost, "/api/operations/undo", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("undo status = %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/products", nil)
	var resp productsResponse
	decode(t, w, &resp)
	if len(resp.Products) != 2 || resp.Products[0].Name != "B" || resp.Products[1].Name != "A" {
		t.Errorf("expected [B A] after undoing the removal, got %+v", resp.Products)
	}
}

func TestOperationHandler_RecentOperations(t *testing.T) {
	r := newTestRouter(t, false)

	do(t, r, http.MethodPost, "/api/products", models.CreateProductRequest{Name: "Widget", Category: "Tools", Price: 10, Quantity: 5})
	do(t, r, http.MethodPut, "/api/products/1/quantity", models.UpdateQuantityRequest{Quantity: 8})
	do(t, r, http.MethodPut, "/api/products/1/price", models.UpdatePriceRequest{Price: 12})

	tests := []struct {
		name     string
		query    string
		expected []string
	}{
		{"explicit n", "?n=2", []string{"Updated price: Widget (was $10.00)", "Updated quantity: Widget (was 5)"}},
		{"default n", "", []string{"Updated price: Widget (was $10.00)", "Updated quantity: Widget (was 5)", "Added: Widget"}},
		{"invalid n", "?n=abc", []string{"Updated price: Widget (was $10.00)", "Updated quantity: Widget (was 5)", "Added: Widget"}},
		{"non-positive n", "?n=-3", []string{"Updated price: Widget (was $10.00)", "Updated quantity: Widget (was 5)", "Added: Widget"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, r, http.MethodGet, "/api/operations/recent"+tt.query, nil)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d", w.Code)
			}

			var resp operationsResponse
			decode(t, w, &resp)
			if len(resp.Operations) != len(tt.expected) {
				t.Fatalf("expected %d operations, got %d", len(tt.expected), len(resp.Operations))
			}
			for i, want := range tt.expected {
				if resp.Operations[i].Description != want {
					t.Errorf("operations[%d] = %q, want %q", i, resp.Operations[i].Description, want)
				}
			}
		})
	}

	w := do(t, r, http.MethodGet, "/api/operations/recent?n=1", nil)
	var resp operationsResponse
	decode(t, w, &resp)
	if resp.Operations[0].Type != models.OperationUpdatePrice || resp.Operations[0].OldValue != 10.0 {
		t.Errorf("unexpected record %+v", resp.Operations[0])
	}
}

func TestOperationHandler_Statistics(t *testing.T) {
	r := newTestRouter(t, true)
	do(t, r, http.MethodPost, "/api/orders", models.OrderRequest{ProductID: 1, Quantity: 1})

	w := do(t, r, http.MethodGet, "/api/statistics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp statisticsResponse
	decode(t, w, &resp)
	stats := resp.Statistics
	if stats.TotalProducts != 5 || stats.TotalQuantity != 125 || stats.DistinctCategories != 3 || stats.PendingOrders != 1 {
		t.Errorf("unexpected statistics %+v", stats)
	}
	if stats.TotalValue <= 0 {
		t.Errorf("expected positive total value, got %f", stats.TotalValue)
	}
}

func TestHealthHandler(t *testing.T) {
	r := newTestRouter(t, true)

	w := do(t, r, http.MethodGet, "/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp HealthResponse
	decode(t, w, &resp)
	if resp.Status != "healthy" || resp.Version != Version {
		t.Errorf("unexpected health response %+v", resp)
	}
	if resp.Products != 5 {
		t.Errorf("products = %d, want 5", resp.Products)
	}
	if time.Since(resp.Timestamp) > time.Minute {
		t.Errorf("stale timestamp %v", resp.Timestamp)
	}
}
