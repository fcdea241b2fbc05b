package shop

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitcart/checkout"
)

func TestNewOrder(t *testing.T) {
	o := NewOrder(50.00, "USD", "buyer@example.com", "bitcart")

	assert.NotEmpty(t, o.OrderID)
	assert.True(t, len(o.OrderKey) > 3 && o.OrderKey[:3] == "ok_")
	assert.Equal(t, checkout.PENDING_ORD, o.Status)
	assert.False(t, o.Paid)
	assert.False(t, o.StockReduced)

	o2 := NewOrder(50.00, "USD", "buyer@example.com", "bitcart")
	assert.NotEqual(t, o.OrderID, o2.OrderID)
	assert.NotEqual(t, o.OrderKey, o2.OrderKey)
}
