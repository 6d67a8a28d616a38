// Package models - test model đơn hàng.
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_TotalQuantity(t *testing.T) {
	order := Order{Items: []OrderItem{
		{ProductName: "Latte", Quantity: 2},
		{ProductName: "Croissant", Quantity: 1},
		{ProductName: "Tiramisu", Quantity: 3},
	}}
	assert.Equal(t, int64(6), order.TotalQuantity())

	empty := Order{}
	assert.Equal(t, int64(0), empty.TotalQuantity())
}

func TestOrder_JSONUsesOrderItemsKey(t *testing.T) {
	order := Order{
		OrderNumber: "Order_1",
		Items:       []OrderItem{{ProductName: "Latte", Price: 100, Quantity: 1, Variation: "Hot", Size: "Small"}},
	}
	data, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Contains(t, decoded, "orderItems", "các dòng hàng serialize dưới key orderItems như dữ liệu gốc")
	assert.NotContains(t, decoded, "items")
}
