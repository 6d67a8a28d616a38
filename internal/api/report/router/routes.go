// Package router đăng ký các route thuộc domain báo cáo.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"winzen_admin/internal/api/middleware"
	reporthdl "winzen_admin/internal/api/report/handler"
	apirouter "winzen_admin/internal/api/router"
)

// Register đăng ký tất cả route báo cáo lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	reportHandler, err := reporthdl.NewReportHandler()
	if err != nil {
		return fmt.Errorf("create report handler: %w", err)
	}

	readChain := []fiber.Handler{middleware.AuthRequired()}

	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/monthly-sales", readChain, reportHandler.HandleMonthlySales)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/staff-summary", readChain, reportHandler.HandleStaffSummary)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/export-sales", readChain, reportHandler.HandleExportSales)
	apirouter.RegisterRouteWithMiddleware(v1, "/report", "GET", "/export-stock-history", readChain, reportHandler.HandleExportStockHistory)

	return nil
}
