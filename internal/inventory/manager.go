// Package inventory implements product bookkeeping on top of the linear
// containers: products live in a linked list, mutations are recorded on a
// stack for undo, and orders wait in a queue until processed.
//
// A Manager is not safe for concurrent use. Callers that share one across
// goroutines must serialise access themselves.
package inventory

import (
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/container"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
	"github.com/google/uuid"
)

// Manager owns the product list, the operation log and the order queue.
//
// Manager methods trust their arguments. Names and categories must be
// non-empty, prices and quantities non-negative and order quantities
// positive; adapters validate before calling.
type Manager struct {
	nextID     int
	products   *container.LinkedList[*models.Product]
	operations *container.Stack[models.Operation]
	orders     *container.Queue[models.Order]
}

// NewManager creates an empty inventory whose first product gets ID 1
func NewManager() *Manager {
	return &Manager{
		nextID:     1,
		products:   container.NewLinkedList[*models.Product](),
		operations: container.NewStack[models.Operation](),
		orders:     container.NewQueue[models.Order](),
	}
}

func byID(id int) func(*models.Product) bool {
	return func(p *models.Product) bool { return p.ID == id }
}

// AddProduct appends a new product with the next sequential ID.
func (m *Manager) AddProduct(name, category string, price float64, quantity int) *models.Product {
	product := models.NewProduct(m.nextID, name, category, price, quantity)
	m.products.Append(product)
	m.operations.Push(models.AddOperation{Product: product})
	m.nextID++
	return product
}

// RemoveProduct unlinks the product with the given ID and returns it.
func (m *Manager) RemoveProduct(id int) (*models.Product, bool) {
	product, ok := m.products.Find(byID(id))
	if !ok {
		return nil, false
	}

	m.products.DeleteFirst(byID(id))
	m.operations.Push(models.RemoveOperation{Product: product})
	return product, true
}

// SearchProduct returns the product with the given ID.
func (m *Manager) SearchProduct(id int) (*models.Product, bool) {
	return m.products.Find(byID(id))
}

// SearchByName returns products whose name contains fragment, ignoring case.
func (m *Manager) SearchByName(fragment string) []*models.Product {
	needle := strings.ToLower(fragment)
	return m.products.Filter(func(p *models.Product) bool {
		return strings.Contains(strings.ToLower(p.Name), needle)
	})
}

// UpdateProductQuantity sets the stock level of a product and logs the old value.
func (m *Manager) UpdateProductQuantity(id, quantity int) bool {
	product, ok := m.SearchProduct(id)
	if !ok {
		return false
	}

	previous := product.Quantity
	product.SetQuantity(quantity)
	m.operations.Push(models.UpdateQuantityOperation{Product: product, PreviousQuantity: previous})
	return true
}

// UpdateProductPrice sets the unit price of a product and logs the old value.
func (m *Manager) UpdateProductPrice(id int, price float64) bool {
	product, ok := m.SearchProduct(id)
	if !ok {
		return false
	}

	previous := product.Price
	product.SetPrice(price)
	m.operations.Push(models.UpdatePriceOperation{Product: product, PreviousPrice: previous})
	return true
}

// AddOrder queues an order if the product currently has enough stock.
// Stock is not reserved here; it is taken when the order is processed.
//
// The second result is false both when the product does not exist and when
// stock is insufficient. Callers distinguish the two with SearchProduct.
func (m *Manager) AddOrder(productID, quantity int) (models.Order, bool) {
	product, ok := m.SearchProduct(productID)
	if !ok || product.Quantity < quantity {
		return models.Order{}, false
	}

	order := models.Order{
		ID:          uuid.New().String(),
		ProductID:   productID,
		ProductName: product.Name,
		Quantity:    quantity,
		TotalPrice:  product.Price * float64(quantity),
	}
	m.orders.Enqueue(order)
	return order, true
}

// ProcessOrder dequeues the oldest order and takes its quantity out of stock.
// An order whose product has gone or no longer has enough stock is dropped,
// and ProcessOrder reports false just as it does for an empty queue.
func (m *Manager) ProcessOrder() (models.Order, bool) {
	if m.orders.IsEmpty() {
		return models.Order{}, false
	}

	order, err := m.orders.Dequeue()
	if err != nil {
		return models.Order{}, false
	}

	product, ok := m.SearchProduct(order.ProductID)
	if !ok || product.Quantity < order.Quantity {
		return models.Order{}, false
	}

	product.SetQuantity(product.Quantity - order.Quantity)
	return order, true
}

// UndoLastOperation reverts the most recent logged mutation. It returns
// false only when the log is empty. Undo itself is not logged.
func (m *Manager) UndoLastOperation() bool {
	if m.operations.IsEmpty() {
		return false
	}

	op, err := m.operations.Pop()
	if err != nil {
		return false
	}

	switch o := op.(type) {
	case models.AddOperation:
		m.RemoveProduct(o.Product.ID)
		// drop the RemoveOperation pushed by RemoveProduct
		if !m.operations.IsEmpty() {
			_, _ = m.operations.Pop()
		}
	case models.RemoveOperation:
		// re-appended at the tail, the original position is not restored
		m.products.Append(o.Product)
	case models.UpdateQuantityOperation:
		o.Product.SetQuantity(o.PreviousQuantity)
	case models.UpdatePriceOperation:
		o.Product.SetPrice(o.PreviousPrice)
	}

	return true
}

// AllProducts returns every product in list order.
func (m *Manager) AllProducts() []*models.Product {
	return m.products.ToSlice()
}

// ProductsByCategory returns products whose category equals category, ignoring case.
func (m *Manager) ProductsByCategory(category string) []*models.Product {
	return m.products.Filter(func(p *models.Product) bool {
		return strings.EqualFold(p.Category, category)
	})
}

// RecentOperations returns up to n log entries, most recent first. The
// entries are popped onto a scratch stack and pushed back, leaving the log
// as it was.
func (m *Manager) RecentOperations(n int) []models.Operation {
	result := make([]models.Operation, 0)
	scratch := container.NewStack[models.Operation]()

	for len(result) < n && !m.operations.IsEmpty() {
		op, _ := m.operations.Pop()
		scratch.Push(op)
		result = append(result, op)
	}

	for !scratch.IsEmpty() {
		op, _ := scratch.Pop()
		m.operations.Push(op)
	}

	return result
}

// PendingOrders returns the queued orders front to rear.
func (m *Manager) PendingOrders() []models.Order {
	return m.orders.ToSlice()
}

// Statistics aggregates the current product list and queue.
func (m *Manager) Statistics() models.Statistics {
	stats := models.Statistics{
		TotalProducts: m.products.Len(),
		PendingOrders: m.orders.Len(),
	}

	categories := make(map[string]struct{})
	m.products.Each(func(p *models.Product) {
		stats.TotalQuantity += p.Quantity
		stats.TotalValue += p.Price * float64(p.Quantity)
		categories[p.Category] = struct{}{}
	})
	stats.DistinctCategories = len(categories)

	return stats
}

// OperationCount returns the number of entries in the operation log.
func (m *Manager) OperationCount() int {
	return m.operations.Len()
}
