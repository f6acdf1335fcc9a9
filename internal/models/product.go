package models

import "fmt"

// Product represents an item tracked by the inventory.
// Two products are the same product when their IDs match.
type Product struct {
	ID       int     `json:"product_id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// NewProduct creates a product with the given identity and attributes
func NewProduct(id int, name, category string, price float64, quantity int) *Product {
	return &Product{
		ID:       id,
		Name:     name,
		Category: category,
		Price:    price,
		Quantity: quantity,
	}
}

// Equal reports whether p and other have the same ID.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return false
	}
	return p.ID == other.ID
}

// SetQuantity overwrites the stock level. It does not validate:
// the inventory manager checks values before calling it.
func (p *Product) SetQuantity(quantity int) {
	p.Quantity = quantity
}

// SetPrice overwrites the unit price without validation, see SetQuantity.
func (p *Product) SetPrice(price float64) {
	p.Price = price
}

func (p *Product) String() string {
	return fmt.Sprintf("ID: %d | Name: %s | Category: %s | Price: $%.2f | Quantity: %d",
		p.ID, p.Name, p.Category, p.Price, p.Quantity)
}

// CreateProductRequest is the body of POST /api/products
type CreateProductRequest struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// UpdateQuantityRequest is the body of PUT /api/products/{id}/quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdatePriceRequest is the body of PUT /api/products/{id}/price
type UpdatePriceRequest struct {
	Price float64 `json:"price"`
}
