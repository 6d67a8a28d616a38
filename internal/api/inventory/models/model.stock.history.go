package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hành động ghi vào nhật ký kho, giữ nguyên nhãn của dữ liệu gốc
const (
	ActionAdded     = "Added"
	ActionRestocked = "Restocked"
	ActionDeducted  = "Deducted"
	ActionRemoved   = "Removed"
)

// StockHistoryEntry là một dòng nhật ký biến động kho, chỉ ghi thêm.
// Date có dạng "YYYY-MM-DD". Quantity âm khi trừ kho hoặc xóa mặt hàng
type StockHistoryEntry struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Date      string             `json:"date" bson:"date" index:"single"`
	ItemName  string             `json:"itemName" bson:"itemName" index:"single"`
	Action    string             `json:"action" bson:"action"`
	Quantity  int64              `json:"quantity" bson:"quantity"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
