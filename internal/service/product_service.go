package service

import (
	"context"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
)

// ListProducts returns all products in inventory order
func (s *InventoryService) ListProducts(ctx context.Context) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyProducts(s.manager.AllProducts())
}

// GetProduct returns a product by its ID
func (s *InventoryService) GetProduct(ctx context.Context, id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.manager.SearchProduct(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *product, nil
}

// CreateProduct validates req and adds the product.
// Name and category are trimmed before use.
func (s *InventoryService) CreateProduct(ctx context.Context, req models.CreateProductRequest) (models.Product, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)

	if name == "" || category == "" {
		return models.Product{}, invalid("Name and category are required")
	}
	if req.Price < 0 || req.Quantity < 0 {
		return models.Product{}, invalid("Price and quantity must be non-negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return *s.manager.AddProduct(name, category, req.Price, req.Quantity), nil
}

// DeleteProduct removes a product and returns it as it was at removal
func (s *InventoryService) DeleteProduct(ctx context.Context, id int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.manager.RemoveProduct(id)
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *product, nil
}

// UpdateQuantity sets the stock level and returns the updated product
func (s *InventoryService) UpdateQuantity(ctx context.Context, id, quantity int) (models.Product, error) {
	if quantity < 0 {
		return models.Product{}, invalid("Quantity cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.UpdateProductQuantity(id, quantity) {
		return models.Product{}, ErrProductNotFound
	}
	product, _ := s.manager.SearchProduct(id)
	return *product, nil
}

// UpdatePrice sets the unit price and returns the updated product
func (s *InventoryService) UpdatePrice(ctx context.Context, id int, price float64) (models.Product, error) {
	if price < 0 {
		return models.Product{}, invalid("Price cannot be negative")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.manager.UpdateProductPrice(id, price) {
		return models.Product{}, ErrProductNotFound
	}
	product, _ := s.manager.SearchProduct(id)
	return *product, nil
}

// SearchByName returns products whose name contains term, ignoring case
func (s *InventoryService) SearchByName(ctx context.Context, term string) ([]models.Product, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, invalid("Search term is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return copyProducts(s.manager.SearchByName(term)), nil
}

// ProductsByCategory returns products in category, ignoring case
func (s *InventoryService) ProductsByCategory(ctx context.Context, category string) []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	return copyProducts(s.manager.ProductsByCategory(category))
}
