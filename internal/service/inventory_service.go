package service

import (
	"context"
	"sync"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/inventory"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
	"github.com/pkg/errors"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrNoOrders          = errors.New("no orders in queue")
	ErrNothingToUndo     = errors.New("no operations to undo")
	ErrInvalidArgument   = errors.New("invalid argument")
)

// InsufficientStockError reports how much stock was available when an
// order was rejected. It matches ErrInsufficientStock with errors.Is.
type InsufficientStockError struct {
	Available int
}

func (e *InsufficientStockError) Error() string {
	return ErrInsufficientStock.Error()
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// ValidationError carries a user-facing message for rejected input.
// It matches ErrInvalidArgument with errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}

// InventoryService serialises access to a single inventory.Manager for
// concurrent callers such as HTTP handlers. It validates input before
// handing it to the manager and returns copies, never shared pointers.
type InventoryService struct {
	mu      sync.Mutex
	manager *inventory.Manager
}

// NewInventoryService wraps manager. The manager must not be used
// directly while the service is in use.
func NewInventoryService(manager *inventory.Manager) *InventoryService {
	return &InventoryService{
		manager: manager,
	}
}

func copyProducts(products []*models.Product) []models.Product {
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		result = append(result, *p)
	}
	return result
}

// Statistics returns aggregate inventory figures
func (s *InventoryService) Statistics(ctx context.Context) models.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.manager.Statistics()
}
