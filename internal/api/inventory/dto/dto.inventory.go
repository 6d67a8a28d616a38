// Package dto - các cấu trúc vào ra của module kho.
package dto

// StockItemCreateInput nhận dữ liệu tạo mặt hàng kho mới
type StockItemCreateInput struct {
	Name     string `json:"name" validate:"required,no_xss,maxLength=100"`
	Family   string `json:"family" validate:"required,oneof=Ingredients Utensils External"`
	Category string `json:"category" validate:"omitempty,oneof=Curve Bread Cookies Cakes"`
	Stocks   int64  `json:"stocks" validate:"gte=0"`
}

// StockItemUpdateInput nhận dữ liệu đổi tên mặt hàng
type StockItemUpdateInput struct {
	Name string `json:"name" validate:"omitempty,no_xss,maxLength=100"`
}

// StockAdjustInput nhận lượng cộng hoặc trừ kho
type StockAdjustInput struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// StockItemView là mặt hàng kèm trạng thái suy ra, trả về cho client
type StockItemView struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	Family    string `json:"family"`
	Category  string `json:"category,omitempty"`
	Stocks    int64  `json:"stocks"`
	Whole     int64  `json:"whole,omitempty"`
	Slice     int64  `json:"slice,omitempty"`
	Status    string `json:"status"`
	UpdatedAt int64  `json:"updatedAt,omitempty"`
}
