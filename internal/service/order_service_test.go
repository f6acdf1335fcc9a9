package service

import (
	"context"
	"testing"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/inventory"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededService(t *testing.T) *InventoryService {
	t.Helper()
	manager := inventory.NewManager()
	inventory.Seed(manager)
	return NewInventoryService(manager)
}

func TestInventoryService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name          string
		req           models.OrderRequest
		wantErr       error
		wantAvailable int
	}{
		{
			name: "valid order",
			req:  models.OrderRequest{ProductID: 1, Quantity: 2},
		},
		{
			name:    "zero quantity",
			req:     models.OrderRequest{ProductID: 1, Quantity: 0},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "negative quantity",
			req:     models.OrderRequest{ProductID: 1, Quantity: -1},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "unknown product",
			req:     models.OrderRequest{ProductID: 99999, Quantity: 1},
			wantErr: ErrProductNotFound,
		},
		{
			name:          "insufficient stock",
			req:           models.OrderRequest{ProductID: 1, Quantity: 11},
			wantErr:       ErrInsufficientStock,
			wantAvailable: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newSeededService(t)

			order, err := svc.CreateOrder(ctx, tt.req)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantAvailable > 0 {
					var stockErr *InsufficientStockError
					require.True(t, errors.As(err, &stockErr))
					assert.Equal(t, tt.wantAvailable, stockErr.Available)
				}
				assert.Empty(t, svc.PendingOrders(ctx))
				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, order.ID)
			assert.Equal(t, "Laptop", order.ProductName)
			assert.InDelta(t, 1999.98, order.TotalPrice, 1e-9)
			assert.Len(t, svc.PendingOrders(ctx), 1)
		})
	}
}

func TestInventoryService_ProcessOrder(t *testing.T) {
	ctx := context.Background()
	svc := newSeededService(t)

	_, err := svc.ProcessOrder(ctx)
	assert.ErrorIs(t, err, ErrNoOrders)

	created, err := svc.CreateOrder(ctx, models.OrderRequest{ProductID: 2, Quantity: 5})
	require.NoError(t, err)

	processed, err := svc.ProcessOrder(ctx)
	require.NoError(t, err)
	assert.Equal(t, created, processed)

	product, err := svc.GetProduct(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 45, product.Quantity)
	assert.Equal(t, 0, svc.Statistics(ctx).PendingOrders)
}
