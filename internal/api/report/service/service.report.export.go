package reportsvc

import (
	"context"
	"fmt"
	"time"

	ordermodels "winzen_admin/internal/api/order/models"
	reportdto "winzen_admin/internal/api/report/dto"
	"winzen_admin/internal/common"

	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson"
)

// Tên sheet trong file báo cáo
const (
	SheetTransactionHistory = "TransactionHistory"
	SheetStaffSummary       = "StaffSummary"
	SheetStockHistory       = "StockHistory"
)

// ExportFilename ghép tên file báo cáo dạng "<Report>_<YYYYMMDD>.xlsx"
func ExportFilename(report string, at time.Time) string {
	return fmt.Sprintf("%s_%s.xlsx", report, at.Format("20060102"))
}

// ExportSalesWorkbook dựng workbook hai sheet TransactionHistory và
// StaffSummary cho một tháng. Trả về file cùng tên file gợi ý cho header
// Content-Disposition
func (s *ReportService) ExportSalesWorkbook(ctx context.Context, month string) (*excelize.File, string, error) {
	from, to, err := MonthRange(month)
	if err != nil {
		return nil, "", err
	}
	orders, err := s.orderService.ListHistory(ctx, from, to)
	if err != nil {
		return nil, "", err
	}

	file := excelize.NewFile()
	if err := writeTransactionSheet(file, orders); err != nil {
		return nil, "", err
	}
	if err := writeStaffSummarySheet(file, AggregateStaffSummaries(orders)); err != nil {
		return nil, "", err
	}
	// Sheet mặc định của excelize không dùng tới
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, "", exportError(err)
	}
	return file, ExportFilename("SalesReport", time.Now()), nil
}

// ExportStockHistoryWorkbook dựng workbook một sheet StockHistory từ nhật ký kho
func (s *ReportService) ExportStockHistoryWorkbook(ctx context.Context) (*excelize.File, string, error) {
	entries, err := s.stockService.History(ctx, bson.M{})
	if err != nil {
		return nil, "", err
	}

	file := excelize.NewFile()
	sheet, err := file.NewSheet(SheetStockHistory)
	if err != nil {
		return nil, "", exportError(err)
	}
	file.SetActiveSheet(sheet)

	headers := []interface{}{"Date", "Item Name", "Action", "Quantity"}
	if err := file.SetSheetRow(SheetStockHistory, "A1", &headers); err != nil {
		return nil, "", exportError(err)
	}
	for i, entry := range entries {
		row := []interface{}{entry.Date, entry.ItemName, entry.Action, entry.Quantity}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(SheetStockHistory, cell, &row); err != nil {
			return nil, "", exportError(err)
		}
	}
	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, "", exportError(err)
	}
	return file, ExportFilename("StockHistory", time.Now()), nil
}

func writeTransactionSheet(file *excelize.File, orders []ordermodels.Order) error {
	sheet, err := file.NewSheet(SheetTransactionHistory)
	if err != nil {
		return exportError(err)
	}
	file.SetActiveSheet(sheet)

	headers := []interface{}{"Order Number", "Date", "Customer", "Staff", "Preference", "Quantity", "Subtotal", "Discount", "Total"}
	if err := file.SetSheetRow(SheetTransactionHistory, "A1", &headers); err != nil {
		return exportError(err)
	}
	for i := range orders {
		order := &orders[i]
		row := []interface{}{
			order.OrderNumber,
			time.UnixMilli(order.OrderDateTime).Format("2006-01-02 15:04"),
			order.CustomerName,
			order.StaffName,
			order.Preference,
			order.TotalQuantity(),
			order.Subtotal,
			order.Discount,
			order.Total,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(SheetTransactionHistory, cell, &row); err != nil {
			return exportError(err)
		}
	}
	return nil
}

func writeStaffSummarySheet(file *excelize.File, summaries []reportdto.StaffSummary) error {
	if _, err := file.NewSheet(SheetStaffSummary); err != nil {
		return exportError(err)
	}

	headers := []interface{}{"Staff", "Orders", "Quantity", "Amount"}
	if err := file.SetSheetRow(SheetStaffSummary, "A1", &headers); err != nil {
		return exportError(err)
	}
	for i, summary := range summaries {
		row := []interface{}{summary.StaffName, summary.TotalOrders, summary.TotalQuantity, summary.TotalAmount}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(SheetStaffSummary, cell, &row); err != nil {
			return exportError(err)
		}
	}
	return nil
}

// exportError gói lỗi dựng workbook vào mã lỗi hệ thống
func exportError(err error) error {
	return common.NewError(common.ErrCodeInternalServer, "Không dựng được file báo cáo", common.StatusInternalServerError, err.Error())
}
