package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProduct_String(t *testing.T) {
	p := NewProduct(1, "Widget", "Tools", 10, 5)
	assert.Equal(t, "ID: 1 | Name: Widget | Category: Tools | Price: $10.00 | Quantity: 5", p.String())
}

func TestProduct_Equal(t *testing.T) {
	a := NewProduct(1, "Widget", "Tools", 10, 5)
	b := NewProduct(1, "Renamed", "Other", 99, 0)
	c := NewProduct(2, "Widget", "Tools", 10, 5)

	assert.True(t, a.Equal(b), "identity is the ID only")
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(nil))
}

func TestNewOperationRecord(t *testing.T) {
	p := NewProduct(3, "Mouse", "Electronics", 29.99, 50)

	tests := []struct {
		name        string
		op          Operation
		kind        OperationKind
		description string
		oldValue    any
	}{
		{"add", AddOperation{Product: p}, OperationAdd, "Added: Mouse", nil},
		{"remove", RemoveOperation{Product: p}, OperationRemove, "Removed: Mouse", nil},
		{
			"update quantity",
			UpdateQuantityOperation{Product: p, PreviousQuantity: 0},
			OperationUpdateQuantity, "Updated quantity: Mouse (was 0)", 0,
		},
		{
			"update price",
			UpdatePriceOperation{Product: p, PreviousPrice: 19.5},
			OperationUpdatePrice, "Updated price: Mouse (was $19.50)", 19.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := NewOperationRecord(tt.op)
			assert.Equal(t, tt.kind, record.Type)
			assert.Equal(t, tt.description, record.Description)
			assert.Equal(t, *p, record.Product)
			assert.Equal(t, tt.oldValue, record.OldValue)
		})
	}
}

func TestNewOperationRecord_Detached(t *testing.T) {
	p := NewProduct(1, "Widget", "Tools", 10, 5)
	record := NewOperationRecord(AddOperation{Product: p})

	p.SetQuantity(1)
	assert.Equal(t, 5, record.Product.Quantity)
}
