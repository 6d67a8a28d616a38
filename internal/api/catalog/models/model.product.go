package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Trạng thái tồn kho của sản phẩm trên thực đơn
const (
	StockStatusIn  = "In Stock"
	StockStatusOut = "Out of Stock"
)

// Product định nghĩa sản phẩm trên thực đơn.
// Code dạng "Product<n>" được cấp từ bộ đếm tuần tự.
// CategoryName tham chiếu danh mục theo tên (bản sao chuỗi, không phải id):
// xóa danh mục sẽ để lại sản phẩm mồ côi, đây là hành vi được giữ nguyên và có test.
type Product struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code" index:"unique"`
	Name         string             `json:"name" bson:"name" index:"text"`
	Description  string             `json:"description,omitempty" bson:"description,omitempty"`
	CategoryName string             `json:"categoryName" bson:"categoryName" index:"single"`
	ImageURL     string             `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	StockStatus  string             `json:"stockStatus" bson:"stockStatus"`
	Variation    Variation          `json:"variations" bson:"variations"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
