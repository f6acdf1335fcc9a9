package models

// Statistics summarises the inventory at a point in time
type Statistics struct {
	TotalProducts      int     `json:"total_products"`
	TotalQuantity      int     `json:"total_quantity"`
	TotalValue         float64 `json:"total_value"`
	DistinctCategories int     `json:"categories"`
	PendingOrders      int     `json:"pending_orders"`
}
