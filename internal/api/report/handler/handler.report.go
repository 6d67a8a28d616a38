// Package reporthdl - handler báo cáo doanh thu và xuất file.
package reporthdl

import (
	"fmt"

	basehdl "winzen_admin/internal/api/base/handler"
	reportdto "winzen_admin/internal/api/report/dto"
	reportsvc "winzen_admin/internal/api/report/service"

	"github.com/gofiber/fiber/v3"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler xử lý các request báo cáo
type ReportHandler struct {
	reportService *reportsvc.ReportService
}

// NewReportHandler tạo instance mới của ReportHandler
func NewReportHandler() (*ReportHandler, error) {
	reportService, err := reportsvc.NewReportService()
	if err != nil {
		return nil, fmt.Errorf("failed to create report service: %v", err)
	}
	return &ReportHandler{reportService: reportService}, nil
}

// HandleMonthlySales trả về báo cáo doanh thu của tháng ?month=YYYY-MM
func (h *ReportHandler) HandleMonthlySales(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reportdto.ReportQueryInput
		if err := basehdl.ParseQuery(c, &input); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		report, err := h.reportService.MonthlySales(c.Context(), input.Month)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, report)
		return nil
	})
}

// HandleStaffSummary trả về bảng gộp giao dịch theo nhân viên của tháng
func (h *ReportHandler) HandleStaffSummary(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reportdto.ReportQueryInput
		if err := basehdl.ParseQuery(c, &input); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		summaries, err := h.reportService.StaffSummaries(c.Context(), input.Month)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		basehdl.HandleSuccess(c, summaries)
		return nil
	})
}

// HandleExportSales stream file xlsx hai sheet TransactionHistory + StaffSummary
func (h *ReportHandler) HandleExportSales(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		var input reportdto.ReportQueryInput
		if err := basehdl.ParseQuery(c, &input); err != nil {
			basehdl.HandleError(c, err)
			return nil
		}

		file, filename, err := h.reportService.ExportSalesWorkbook(c.Context(), input.Month)
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return sendWorkbook(c, file, filename)
	})
}

// HandleExportStockHistory stream file xlsx một sheet StockHistory
func (h *ReportHandler) HandleExportStockHistory(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		file, filename, err := h.reportService.ExportStockHistoryWorkbook(c.Context())
		if err != nil {
			basehdl.HandleError(c, err)
			return nil
		}
		return sendWorkbook(c, file, filename)
	})
}

func sendWorkbook(c fiber.Ctx, file *excelize.File, filename string) error {
	buf, err := file.WriteToBuffer()
	if err != nil {
		basehdl.HandleError(c, err)
		return nil
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(buf.Bytes())
}
