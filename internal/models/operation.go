package models

import "fmt"

// OperationKind names a mutation recorded in the operation log
type OperationKind string

const (
	OperationAdd            OperationKind = "add"
	OperationRemove         OperationKind = "remove"
	OperationUpdateQuantity OperationKind = "update_quantity"
	OperationUpdatePrice    OperationKind = "update_price"
)

// Operation is an entry of the undo log. The set of implementations is
// closed: AddOperation, RemoveOperation, UpdateQuantityOperation and
// UpdatePriceOperation.
type Operation interface {
	Kind() OperationKind
	Target() *Product
	Description() string
	operation()
}

// AddOperation records that Product was added.
type AddOperation struct {
	Product *Product
}

// RemoveOperation records that Product was removed.
type RemoveOperation struct {
	Product *Product
}

// UpdateQuantityOperation records a quantity change and the value it replaced.
type UpdateQuantityOperation struct {
	Product          *Product
	PreviousQuantity int
}

// UpdatePriceOperation records a price change and the value it replaced.
type UpdatePriceOperation struct {
	Product       *Product
	PreviousPrice float64
}

func (AddOperation) Kind() OperationKind            { return OperationAdd }
func (RemoveOperation) Kind() OperationKind         { return OperationRemove }
func (UpdateQuantityOperation) Kind() OperationKind { return OperationUpdateQuantity }
func (UpdatePriceOperation) Kind() OperationKind    { return OperationUpdatePrice }

func (o AddOperation) Target() *Product            { return o.Product }
func (o RemoveOperation) Target() *Product         { return o.Product }
func (o UpdateQuantityOperation) Target() *Product { return o.Product }
func (o UpdatePriceOperation) Target() *Product    { return o.Product }

func (o AddOperation) Description() string {
	return "Added: " + o.Product.Name
}

func (o RemoveOperation) Description() string {
	return "Removed: " + o.Product.Name
}

func (o UpdateQuantityOperation) Description() string {
	return fmt.Sprintf("Updated quantity: %s (was %d)", o.Product.Name, o.PreviousQuantity)
}

func (o UpdatePriceOperation) Description() string {
	return fmt.Sprintf("Updated price: %s (was $%.2f)", o.Product.Name, o.PreviousPrice)
}

func (AddOperation) operation()            {}
func (RemoveOperation) operation()         {}
func (UpdateQuantityOperation) operation() {}
func (UpdatePriceOperation) operation()    {}

// OperationRecord is a detached, serialisable view of an Operation.
type OperationRecord struct {
	Type        OperationKind `json:"type"`
	Description string        `json:"description"`
	Product     Product       `json:"product"`
	OldValue    any           `json:"old_value,omitempty"`
}

// NewOperationRecord copies op into a record that shares no state with the log.
func NewOperationRecord(op Operation) OperationRecord {
	record := OperationRecord{
		Type:        op.Kind(),
		Description: op.Description(),
		Product:     *op.Target(),
	}

	switch o := op.(type) {
	case UpdateQuantityOperation:
		record.OldValue = o.PreviousQuantity
	case UpdatePriceOperation:
		record.OldValue = o.PreviousPrice
	}

	return record
}
