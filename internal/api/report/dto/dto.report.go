// Package dto - các cấu trúc vào ra của module báo cáo.
package dto

// DailySales là doanh thu gộp theo một ngày trong tháng
type DailySales struct {
	Date          string  `json:"date"`
	TotalSales    float64 `json:"totalSales"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalQuantity int64   `json:"totalQuantity"`
}

// MonthlySalesReport là báo cáo doanh thu một tháng tính từ kho lưu trữ
type MonthlySalesReport struct {
	Month           string       `json:"month"`
	TotalSales      float64      `json:"totalSales"`
	TotalOrders     int64        `json:"totalOrders"`
	TotalQuantity   int64        `json:"totalQuantity"`
	UniqueCustomers int64        `json:"uniqueCustomers"`
	Daily           []DailySales `json:"daily"`
}

// StaffSummary gộp giao dịch theo từng nhân viên
type StaffSummary struct {
	StaffName     string  `json:"staffName"`
	TotalOrders   int64   `json:"totalOrders"`
	TotalQuantity int64   `json:"totalQuantity"`
	TotalAmount   float64 `json:"totalAmount"`
}

// ReportQueryInput nhận tháng báo cáo dạng "YYYY-MM"
type ReportQueryInput struct {
	Month string `query:"month" validate:"required,len=7"`
}
