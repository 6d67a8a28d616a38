// Package models - dữ liệu kho nguyên liệu, dụng cụ và vật tư ngoài.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Họ mặt hàng trong kho
const (
	FamilyIngredients = "Ingredients"
	FamilyUtensils    = "Utensils"
	FamilyExternal    = "External"
)

// Nhóm nguyên liệu bên trong họ Ingredients
const (
	CategoryCurve   = "Curve"
	CategoryBread   = "Bread"
	CategoryCookies = "Cookies"
	CategoryCakes   = "Cakes"
)

// Trạng thái tồn kho suy ra từ số lượng
const (
	StockStatusIn  = "In Stock"
	StockStatusLow = "Low Stock"
	StockStatusOut = "Out of Stock"
)

// SliceFactor là số lát cắt được từ một bánh nguyên
const SliceFactor = 8

// CakeStock là tồn kho hai đơn vị của nhóm Cakes.
// Slice luôn bằng Whole * SliceFactor và được ghi cùng một lần cập nhật
// document với Whole nên hai giá trị không bao giờ lệch nhau.
type CakeStock struct {
	Whole int64 `json:"whole" bson:"whole"`
	Slice int64 `json:"slice" bson:"slice"`
}

// StockItem là một mặt hàng trong kho.
// Nhóm Cakes dùng CakeStock, các nhóm còn lại dùng Stocks vô hướng.
type StockItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string             `json:"code" bson:"code" index:"unique"`
	Name      string             `json:"name" bson:"name"`
	Family    string             `json:"family" bson:"family" index:"single"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Stocks    int64              `json:"stocks" bson:"stocks"`
	CakeStock *CakeStock         `json:"cakeStock,omitempty" bson:"cakeStock,omitempty"`
	CreatedAt int64              `json:"createdAt,omitempty" bson:"createdAt,omitempty"`
	UpdatedAt int64              `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// IsCake cho biết mặt hàng có dùng tồn kho hai đơn vị không
func (s *StockItem) IsCake() bool {
	return s.Category == CategoryCakes
}

// Quantity trả về số lượng dùng để phân loại trạng thái.
// Với Cakes là số bánh nguyên, các nhóm khác là Stocks
func (s *StockItem) Quantity() int64 {
	if s.IsCake() && s.CakeStock != nil {
		return s.CakeStock.Whole
	}
	return s.Stocks
}

// Status phân loại tồn kho: 0 là hết hàng, Cakes còn 1..2 bánh nguyên hoặc
// nhóm vô hướng còn không quá 5 là sắp hết, còn lại là còn hàng
func (s *StockItem) Status() string {
	quantity := s.Quantity()
	if quantity <= 0 {
		return StockStatusOut
	}
	if s.IsCake() {
		if quantity <= 2 {
			return StockStatusLow
		}
		return StockStatusIn
	}
	if quantity <= 5 {
		return StockStatusLow
	}
	return StockStatusIn
}
