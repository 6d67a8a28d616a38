// Package catalogdto - các DTO của domain catalog.
package catalogdto

import (
	models "winzen_admin/internal/api/catalog/models"
)

// CategoryCreateInput đầu vào khi tạo danh mục
type CategoryCreateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}

// CategoryUpdateInput đầu vào khi đổi tên danh mục
type CategoryUpdateInput struct {
	Name string `json:"name" validate:"required,no_xss"`
}

// ProductCreateInput đầu vào khi tạo sản phẩm.
// Variation nhận wire format gốc: {"temperature": {...}} hoặc {"price": ...}
type ProductCreateInput struct {
	Name         string           `json:"name" validate:"required,no_xss"`
	Description  string           `json:"description,omitempty" validate:"omitempty,no_xss"`
	CategoryName string           `json:"categoryName" validate:"required"`
	StockStatus  string           `json:"stockStatus,omitempty" validate:"omitempty,oneof='In Stock' 'Out of Stock'"`
	Variation    models.Variation `json:"variations"`
}

// ProductUpdateInput đầu vào khi cập nhật sản phẩm.
// Trường nào không gửi lên sẽ giữ nguyên giá trị hiện tại.
type ProductUpdateInput struct {
	Name         string            `json:"name,omitempty" validate:"omitempty,no_xss"`
	Description  string            `json:"description,omitempty" validate:"omitempty,no_xss"`
	CategoryName string            `json:"categoryName,omitempty"`
	StockStatus  string            `json:"stockStatus,omitempty" validate:"omitempty,oneof='In Stock' 'Out of Stock'"`
	Variation    *models.Variation `json:"variations,omitempty"`
}

// ProductFilterInput các tham số lọc và sắp xếp danh sách sản phẩm
type ProductFilterInput struct {
	Query    string `query:"query"`
	Category string `query:"category"`
	Sort     string `query:"sort" validate:"omitempty,oneof=code_asc code_desc name_asc name_desc"`
}

// LegacyImportResult kết quả import dữ liệu RTDB export cũ
type LegacyImportResult struct {
	Categories int `json:"categories"`
	Products   int `json:"products"`
	Skipped    int `json:"skipped"`
}
