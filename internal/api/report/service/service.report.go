// Package reportsvc - service gộp doanh thu và xuất báo cáo xlsx.
package reportsvc

import (
	"context"
	"fmt"
	"sort"
	"time"

	inventorysvc "winzen_admin/internal/api/inventory/service"
	ordermodels "winzen_admin/internal/api/order/models"
	ordersvc "winzen_admin/internal/api/order/service"
	reportdto "winzen_admin/internal/api/report/dto"
	"winzen_admin/internal/common"

	"github.com/samber/lo"
)

// ReportService là cấu trúc chứa các phương thức gộp số liệu bán hàng.
// Số liệu luôn đọc từ kho lưu trữ history, không đụng tới đơn đang hoạt động
type ReportService struct {
	orderService *ordersvc.OrderService
	stockService *inventorysvc.StockService
}

// NewReportService tạo mới ReportService
func NewReportService() (*ReportService, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, err
	}
	stockService, err := inventorysvc.NewStockService()
	if err != nil {
		return nil, err
	}
	return &ReportService{
		orderService: orderService,
		stockService: stockService,
	}, nil
}

// MonthRange đổi chuỗi "YYYY-MM" thành khoảng UnixMilli [đầu tháng, đầu tháng sau)
func MonthRange(month string) (int64, int64, error) {
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return 0, 0, common.NewError(common.ErrCodeValidationFormat, fmt.Sprintf("Tháng '%s' không đúng dạng YYYY-MM", month), common.StatusBadRequest, nil)
	}
	end := start.AddDate(0, 1, 0)
	return start.UnixMilli(), end.UnixMilli(), nil
}

// MonthlySales gộp doanh thu của một tháng từ kho lưu trữ
func (s *ReportService) MonthlySales(ctx context.Context, month string) (*reportdto.MonthlySalesReport, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderService.ListHistory(ctx, from, to)
	if err != nil {
		return nil, err
	}

	report := AggregateMonthlySales(month, orders)
	return report, nil
}

// AggregateMonthlySales là phần gộp thuần trên một lát đơn đã đọc sẵn
func AggregateMonthlySales(month string, orders []ordermodels.Order) *reportdto.MonthlySalesReport {
	report := &reportdto.MonthlySalesReport{
		Month: month,
		Daily: []reportdto.DailySales{},
	}
	customers := map[string]struct{}{}
	daily := map[string]*reportdto.DailySales{}

	for i := range orders {
		order := &orders[i]
		report.TotalSales += order.Total
		report.TotalOrders++
		report.TotalQuantity += order.TotalQuantity()
		customers[order.CustomerName] = struct{}{}

		date := time.UnixMilli(order.OrderDateTime).Format("2006-01-02")
		day, ok := daily[date]
		if !ok {
			day = &reportdto.DailySales{Date: date}
			daily[date] = day
		}
		day.TotalSales += order.Total
		day.TotalOrders++
		day.TotalQuantity += order.TotalQuantity()
	}

	report.UniqueCustomers = int64(len(customers))
	for _, day := range daily {
		report.Daily = append(report.Daily, *day)
	}
	sort.Slice(report.Daily, func(i, j int) bool {
		return report.Daily[i].Date < report.Daily[j].Date
	})
	return report
}

// StaffSummaries gộp giao dịch theo nhân viên trong một tháng
func (s *ReportService) StaffSummaries(ctx context.Context, month string) ([]reportdto.StaffSummary, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, err
	}
	orders, err := s.orderService.ListHistory(ctx, from, to)
	if err != nil {
		return nil, err
	}
	return AggregateStaffSummaries(orders), nil
}

// AggregateStaffSummaries là phần gộp thuần theo nhân viên
func AggregateStaffSummaries(orders []ordermodels.Order) []reportdto.StaffSummary {
	grouped := lo.GroupBy(orders, func(order ordermodels.Order) string {
		return order.StaffName
	})
	summaries := make([]reportdto.StaffSummary, 0, len(grouped))
	for staffName, staffOrders := range grouped {
		summary := reportdto.StaffSummary{StaffName: staffName}
		for i := range staffOrders {
			summary.TotalOrders++
			summary.TotalQuantity += staffOrders[i].TotalQuantity()
			summary.TotalAmount += staffOrders[i].Total
		}
		summaries = append(summaries, summary)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].StaffName < summaries[j].StaffName
	})
	return summaries
}
