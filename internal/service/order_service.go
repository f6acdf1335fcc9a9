package service

import (
	"context"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
)

// CreateOrder queues an order for later processing.
//
// The manager reports a rejected order the same way whether the product is
// missing or short of stock, so the product is looked up again to tell the
// two apart.
func (s *InventoryService) CreateOrder(ctx context.Context, req models.OrderRequest) (models.Order, error) {
	if req.Quantity <= 0 {
		return models.Order{}, invalid("Quantity must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.manager.AddOrder(req.ProductID, req.Quantity)
	if ok {
		return order, nil
	}

	product, found := s.manager.SearchProduct(req.ProductID)
	if !found {
		return models.Order{}, ErrProductNotFound
	}
	return models.Order{}, &InsufficientStockError{Available: product.Quantity}
}

// ProcessOrder fulfils the oldest pending order
func (s *InventoryService) ProcessOrder(ctx context.Context) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.manager.ProcessOrder()
	if !ok {
		return models.Order{}, ErrNoOrders
	}
	return order, nil
}

// PendingOrders returns queued orders, oldest first
func (s *InventoryService) PendingOrders(ctx context.Context) []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.manager.PendingOrders()
}
