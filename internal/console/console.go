// Package console runs the interactive inventory menu over a text stream.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/inventory"
	"github.com/Lixing-Zhang/kart-challenge/inventory-tracker/internal/models"
	"github.com/pkg/errors"
)

const ruleWidth = 80

var errInvalidNumber = errors.New("invalid number")

// Console drives a Manager from menu selections read line by line.
// It is single-threaded and owns no inventory state.
type Console struct {
	manager       *inventory.Manager
	in            *bufio.Scanner
	out           io.Writer
	logger        *slog.Logger
	defaultRecent int
}

// New creates a console reading from in and printing to out
func New(manager *inventory.Manager, in io.Reader, out io.Writer, defaultRecent int, logger *slog.Logger) *Console {
	return &Console{
		manager:       manager,
		in:            bufio.NewScanner(in),
		out:           out,
		logger:        logger,
		defaultRecent: defaultRecent,
	}
}

// Run shows the menu until the user exits, the input ends or ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	c.printHeader()

	for {
		if err := ctx.Err(); err != nil {
			c.println("\nProgram interrupted. Exiting...")
			return nil
		}

		c.printMenu()
		choice, ok := c.prompt("\nEnter your choice (1-15): ")
		if !ok {
			return c.in.Err()
		}

		switch choice {
		case "1":
			c.addProduct()
		case "2":
			c.removeProduct()
		case "3":
			c.searchProduct()
		case "4":
			c.searchByName()
		case "5":
			c.displayAll()
		case "6":
			c.displayByCategory()
		case "7":
			c.updateQuantity()
		case "8":
			c.updatePrice()
		case "9":
			c.addOrder()
		case "10":
			c.processOrder()
		case "11":
			c.displayPendingOrders()
		case "12":
			c.undo()
		case "13":
			c.displayRecentOperations()
		case "14":
			c.displayStatistics()
		case "15":
			c.println("\nThank you for using Product Inventory List System!")
			c.println("Goodbye!")
			return nil
		default:
			c.println("\n✗ Invalid choice! Please enter a number between 1-15.")
		}
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) printHeader() {
	c.println(strings.Repeat("=", ruleWidth))
	c.println(strings.Repeat(" ", 15) + "Product Inventory List System")
	c.println(strings.Repeat(" ", 10) + "List, Stack, Queue, Linked Lists (ADTs & Linear DS)")
	c.println(strings.Repeat("=", ruleWidth))
}

func (c *Console) printMenu() {
	c.println("\n" + strings.Repeat("-", ruleWidth))
	c.println("MENU OPTIONS:")
	c.println(strings.Repeat("-", ruleWidth))
	c.println("1.  Add Product (Linked List)")
	c.println("2.  Remove Product (Linked List)")
	c.println("3.  Search Product by ID (Linked List)")
	c.println("4.  Search Products by Name (Linked List)")
	c.println("5.  Display All Products (Linked List)")
	c.println("6.  Display Products by Category (Linked List)")
	c.println("7.  Update Product Quantity")
	c.println("8.  Update Product Price")
	c.println("9.  Add Order to Queue (Queue)")
	c.println("10. Process Order from Queue (Queue)")
	c.println("11. Display Pending Orders (Queue)")
	c.println("12. Undo Last Operation (Stack)")
	c.println("13. Display Recent Operations (Stack)")
	c.println("14. View Inventory Statistics")
	c.println("15. Exit")
	c.println(strings.Repeat("-", ruleWidth))
}

// prompt prints label and reads one trimmed line. ok is false at end of input.
func (c *Console) prompt(label string) (string, bool) {
	c.printf("%s", label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *Console) promptInt(label string) (int, error) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, io.EOF
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, errors.Wrapf(errInvalidNumber, "%q", line)
	}
	return n, nil
}

func (c *Console) promptFloat(label string) (float64, error) {
	line, ok := c.prompt(label)
	if !ok {
		return 0, io.EOF
	}
	f, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, errors.Wrapf(errInvalidNumber, "%q", line)
	}
	return f, nil
}

func (c *Console) invalidInput(err error, hint string) {
	if errors.Is(err, io.EOF) {
		return
	}
	c.logger.Debug("rejected console input", "error", err)
	c.println("Error: Invalid input! " + hint)
}

func (c *Console) addProduct() {
	c.println("\n--- Add Product ---")

	name, _ := c.prompt("Enter product name: ")
	if name == "" {
		c.println("Error: Product name cannot be empty!")
		return
	}
	category, _ := c.prompt("Enter product category: ")
	if category == "" {
		c.println("Error: Category cannot be empty!")
		return
	}
	price, err := c.promptFloat("Enter product price: $")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	if price < 0 {
		c.println("Error: Price cannot be negative!")
		return
	}
	quantity, err := c.promptInt("Enter product quantity: ")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	if quantity < 0 {
		c.println("Error: Quantity cannot be negative!")
		return
	}

	product := c.manager.AddProduct(name, category, price, quantity)
	c.logger.Info("product added", "productId", product.ID)
	c.println("\n✓ Product added successfully!")
	c.printf("  %s\n", product)
}

func (c *Console) removeProduct() {
	c.println("\n--- Remove Product ---")

	id, err := c.promptInt("Enter product ID to remove: ")
	if err != nil {
		c.invalidInput(err, "Please enter a valid product ID.")
		return
	}

	product, ok := c.manager.RemoveProduct(id)
	if !ok {
		c.printf("\n✗ Product with ID %d not found!\n", id)
		return
	}
	c.logger.Info("product removed", "productId", id)
	c.println("\n✓ Product removed successfully!")
	c.printf("  %s\n", product)
}

func (c *Console) searchProduct() {
	c.println("\n--- Search Product by ID ---")

	id, err := c.promptInt("Enter product ID to search: ")
	if err != nil {
		c.invalidInput(err, "Please enter a valid product ID.")
		return
	}

	product, ok := c.manager.SearchProduct(id)
	if !ok {
		c.printf("\n✗ Product with ID %d not found!\n", id)
		return
	}
	c.println("\n✓ Product found:")
	c.printf("  %s\n", product)
}

func (c *Console) searchByName() {
	c.println("\n--- Search Products by Name ---")

	name, _ := c.prompt("Enter product name (or partial name): ")
	if name == "" {
		c.println("Error: Search term cannot be empty!")
		return
	}

	results := c.manager.SearchByName(name)
	if len(results) == 0 {
		c.printf("\n✗ No products found matching '%s'\n", name)
		return
	}
	c.printf("\n✓ Found %d product(s):\n", len(results))
	c.printProducts(results)
}

func (c *Console) displayAll() {
	c.println("\n--- All Products ---")

	products := c.manager.AllProducts()
	if len(products) == 0 {
		c.println("\nNo products in inventory.")
		return
	}
	c.printf("\nTotal products: %d\n", len(products))
	c.println(strings.Repeat("-", ruleWidth))
	c.printProducts(products)
}

func (c *Console) displayByCategory() {
	c.println("\n--- Products by Category ---")

	category, _ := c.prompt("Enter category name: ")
	if category == "" {
		c.println("Error: Category cannot be empty!")
		return
	}

	results := c.manager.ProductsByCategory(category)
	if len(results) == 0 {
		c.printf("\n✗ No products found in category '%s'\n", category)
		return
	}
	c.printf("\n✓ Found %d product(s) in category '%s':\n", len(results), category)
	c.printProducts(results)
}

func (c *Console) printProducts(products []*models.Product) {
	for _, p := range products {
		c.printf("  %s\n", p)
	}
}

func (c *Console) updateQuantity() {
	c.println("\n--- Update Product Quantity ---")

	id, err := c.promptInt("Enter product ID: ")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	quantity, err := c.promptInt("Enter new quantity: ")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	if quantity < 0 {
		c.println("Error: Quantity cannot be negative!")
		return
	}

	if !c.manager.UpdateProductQuantity(id, quantity) {
		c.printf("\n✗ Product with ID %d not found!\n", id)
		return
	}
	product, _ := c.manager.SearchProduct(id)
	c.println("\n✓ Quantity updated successfully!")
	c.printf("  %s\n", product)
}

func (c *Console) updatePrice() {
	c.println("\n--- Update Product Price ---")

	id, err := c.promptInt("Enter product ID: ")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	price, err := c.promptFloat("Enter new price: $")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	if price < 0 {
		c.println("Error: Price cannot be negative!")
		return
	}

	if !c.manager.UpdateProductPrice(id, price) {
		c.printf("\n✗ Product with ID %d not found!\n", id)
		return
	}
	product, _ := c.manager.SearchProduct(id)
	c.println("\n✓ Price updated successfully!")
	c.printf("  %s\n", product)
}

func (c *Console) addOrder() {
	c.println("\n--- Add Order to Queue ---")

	id, err := c.promptInt("Enter product ID: ")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	quantity, err := c.promptInt("Enter quantity to order: ")
	if err != nil {
		c.invalidInput(err, "Please enter valid numbers.")
		return
	}
	if quantity <= 0 {
		c.println("Error: Quantity must be positive!")
		return
	}

	order, ok := c.manager.AddOrder(id, quantity)
	if !ok {
		if product, found := c.manager.SearchProduct(id); found {
			c.printf("\n✗ Insufficient stock! Available: %d\n", product.Quantity)
		} else {
			c.printf("\n✗ Product with ID %d not found!\n", id)
		}
		return
	}
	c.logger.Info("order queued", "orderId", order.ID)
	c.println("\n✓ Order added to queue successfully!")
	c.printOrder(order)
}

func (c *Console) processOrder() {
	c.println("\n--- Process Order from Queue ---")

	order, ok := c.manager.ProcessOrder()
	if !ok {
		c.println("\n✗ No orders in queue to process!")
		return
	}
	c.logger.Info("order processed", "orderId", order.ID)
	c.println("\n✓ Order processed successfully!")
	c.printOrder(order)
}

func (c *Console) printOrder(order models.Order) {
	c.printf("  Product: %s\n", order.ProductName)
	c.printf("  Quantity: %d\n", order.Quantity)
	c.printf("  Total Price: $%.2f\n", order.TotalPrice)
}

func (c *Console) displayPendingOrders() {
	c.println("\n--- Pending Orders in Queue ---")

	orders := c.manager.PendingOrders()
	if len(orders) == 0 {
		c.println("\nNo pending orders in queue.")
		return
	}
	c.printf("\nTotal pending orders: %d\n", len(orders))
	c.println(strings.Repeat("-", ruleWidth))
	for i, o := range orders {
		c.printf("%d. Product: %s | Quantity: %d | Total: $%.2f\n", i+1, o.ProductName, o.Quantity, o.TotalPrice)
	}
}

func (c *Console) undo() {
	c.println("\n--- Undo Last Operation ---")

	if !c.manager.UndoLastOperation() {
		c.println("\n✗ No operations to undo!")
		return
	}
	c.logger.Info("operation undone")
	c.println("\n✓ Last operation undone successfully!")
}

func (c *Console) displayRecentOperations() {
	c.println("\n--- Recent Operations (Stack) ---")

	n := c.defaultRecent
	line, _ := c.prompt(fmt.Sprintf("Enter number of operations to display (default %d): ", c.defaultRecent))
	if line != "" {
		parsed, err := strconv.Atoi(line)
		switch {
		case err != nil:
			c.printf("Error: Invalid input! Using default value of %d.\n", c.defaultRecent)
		case parsed <= 0:
			c.println("Error: Number must be positive!")
			return
		default:
			n = parsed
		}
	}

	operations := c.manager.RecentOperations(n)
	if len(operations) == 0 {
		c.println("\nNo recent operations.")
		return
	}
	c.printf("\nRecent %d operation(s):\n", len(operations))
	c.println(strings.Repeat("-", ruleWidth))
	for i, op := range operations {
		c.printf("%d. %s\n", i+1, formatOperation(op))
	}
}

func formatOperation(op models.Operation) string {
	switch o := op.(type) {
	case models.AddOperation:
		return fmt.Sprintf("ADD: %s", o.Product)
	case models.RemoveOperation:
		return fmt.Sprintf("REMOVE: %s", o.Product)
	case models.UpdateQuantityOperation:
		return fmt.Sprintf("UPDATE QUANTITY: %s (was %d)", o.Product.Name, o.PreviousQuantity)
	case models.UpdatePriceOperation:
		return fmt.Sprintf("UPDATE PRICE: %s (was $%.2f)", o.Product.Name, o.PreviousPrice)
	default:
		return op.Description()
	}
}

func (c *Console) displayStatistics() {
	c.println("\n--- Inventory Statistics ---")

	stats := c.manager.Statistics()
	c.printf("\nTotal Products: %d\n", stats.TotalProducts)
	c.printf("Total Quantity: %d\n", stats.TotalQuantity)
	c.printf("Total Inventory Value: $%.2f\n", stats.TotalValue)
	c.printf("Number of Categories: %d\n", stats.DistinctCategories)
	c.printf("Pending Orders in Queue: %d\n", stats.PendingOrders)
}
