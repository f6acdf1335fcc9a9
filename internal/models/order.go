package models

// OrderRequest represents an incoming order request
type OrderRequest struct {
	ProductID int `json:"product_id"`
	Quantity  int `json:"quantity"`
}

// Order is a queued request to take stock out of a product.
// ProductName and TotalPrice are captured when the order is created
// and are not recomputed if the product changes afterwards.
type Order struct {
	ID          string  `json:"id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}
