// Package dto - các cấu trúc vào ra của module đơn hàng.
package dto

// OrderItemInput là một dòng hàng trong request tạo đơn
type OrderItemInput struct {
	ProductName string  `json:"productName" validate:"required,no_xss"`
	Price       float64 `json:"price" validate:"gte=0"`
	Quantity    int64   `json:"quantity" validate:"required,gt=0"`
	Variation   string  `json:"variation" validate:"omitempty,oneof=Hot Iced"`
	Size        string  `json:"size" validate:"omitempty,maxLength=50"`
}

// OrderCreateInput nhận dữ liệu tạo đơn hàng mới
type OrderCreateInput struct {
	CustomerName string           `json:"customerName" validate:"required,no_xss,maxLength=100"`
	StaffName    string           `json:"staffName" validate:"required,no_xss,maxLength=100"`
	Preference   string           `json:"preference" validate:"required,oneof='Dine In' 'Take Out'"`
	Discount     float64          `json:"discount" validate:"gte=0"`
	Items        []OrderItemInput `json:"orderItems" validate:"required,min=1,dive"`
}

// OrderUpdateInput nhận dữ liệu sửa đơn đang hoạt động
type OrderUpdateInput struct {
	CustomerName string  `json:"customerName" validate:"omitempty,no_xss,maxLength=100"`
	Preference   string  `json:"preference" validate:"omitempty,oneof='Dine In' 'Take Out'"`
	Discount     float64 `json:"discount" validate:"gte=0"`
}

// OrderFilterInput lọc danh sách đơn theo hình thức phục vụ và từ khóa mã đơn
type OrderFilterInput struct {
	Preference string `query:"preference" validate:"omitempty,oneof=All 'Dine In' 'Take Out'"`
	Search     string `query:"search" validate:"omitempty,maxLength=50"`
}
