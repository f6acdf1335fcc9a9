package inventory

// SampleProduct describes one entry of the demo catalogue
type SampleProduct struct {
	Name     string
	Category string
	Price    float64
	Quantity int
}

// SampleProducts is the catalogue loaded when sample data is enabled.
var SampleProducts = []SampleProduct{
	{Name: "Laptop", Category: "Electronics", Price: 999.99, Quantity: 10},
	{Name: "Mouse", Category: "Electronics", Price: 29.99, Quantity: 50},
	{Name: "Keyboard", Category: "Electronics", Price: 79.99, Quantity: 30},
	{Name: "Desk Chair", Category: "Furniture", Price: 199.99, Quantity: 15},
	{Name: "Coffee Maker", Category: "Appliances", Price: 89.99, Quantity: 20},
}

// Seed adds the sample catalogue through AddProduct, so each product is
// logged like any other addition. Seed does nothing if m already holds products.
func Seed(m *Manager) int {
	if !m.products.IsEmpty() {
		return 0
	}
	for _, s := range SampleProducts {
		m.AddProduct(s.Name, s.Category, s.Price, s.Quantity)
	}
	return len(SampleProducts)
}
