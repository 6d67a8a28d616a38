// Package models - đơn hàng, đơn đã hủy và kho lưu trữ đơn hoàn tất.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hình thức phục vụ của đơn hàng
const (
	PreferenceDineIn  = "Dine In"
	PreferenceTakeOut = "Take Out"
)

// OrderItem là một dòng hàng trong đơn.
// Variation là nhãn nhiệt độ ("Hot"/"Iced") với đồ uống, rỗng với bánh
type OrderItem struct {
	ProductName string  `json:"productName" bson:"productName"`
	Price       float64 `json:"price" bson:"price"`
	Quantity    int64   `json:"quantity" bson:"quantity"`
	Variation   string  `json:"variation,omitempty" bson:"variation,omitempty"`
	Size        string  `json:"size,omitempty" bson:"size,omitempty"`
}

// Order là một đơn hàng. Cùng cấu trúc này được dùng cho cả ba collection:
// orders (đang hoạt động), canceled (đã hủy) và history (đã hoàn tất)
type Order struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderNumber   string             `json:"orderNumber" bson:"orderNumber" index:"unique"`
	CustomerName  string             `json:"customerName" bson:"customerName"`
	StaffName     string             `json:"staffName" bson:"staffName" index:"single"`
	OrderDateTime int64              `json:"orderDateTime" bson:"orderDateTime" index:"single"`
	Preference    string             `json:"preference" bson:"preference"`
	Subtotal      float64            `json:"subtotal" bson:"subtotal"`
	Discount      float64            `json:"discount" bson:"discount"`
	Total         float64            `json:"total" bson:"total"`
	Items         []OrderItem        `json:"orderItems" bson:"orderItems"`
	CreatedAt     int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt     int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// TotalQuantity cộng số lượng của mọi dòng hàng trong đơn
func (o *Order) TotalQuantity() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.Quantity
	}
	return total
}
