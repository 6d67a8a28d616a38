// Package router đăng ký các route thuộc domain đơn hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"winzen_admin/internal/api/middleware"
	orderhdl "winzen_admin/internal/api/order/handler"
	apirouter "winzen_admin/internal/api/router"
)

// Register đăng ký tất cả route đơn hàng lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}
	canceledHandler, err := orderhdl.NewCanceledHandler()
	if err != nil {
		return fmt.Errorf("create canceled handler: %w", err)
	}
	historyHandler, err := orderhdl.NewHistoryHandler()
	if err != nil {
		return fmt.Errorf("create history handler: %w", err)
	}

	authMiddleware := middleware.AuthRequired()
	adminWriteMiddleware := middleware.RequireRole(apirouter.AdminRoles...)
	readChain := []fiber.Handler{authMiddleware}
	writeChain := []fiber.Handler{authMiddleware, adminWriteMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/create", writeChain, orderHandler.HandleCreateOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "GET", "/list", readChain, orderHandler.HandleListOrders)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/cancel/:orderNumber", writeChain, orderHandler.HandleCancelOrder)
	apirouter.RegisterRouteWithMiddleware(v1, "/order", "POST", "/complete/:orderNumber", writeChain, orderHandler.HandleCompleteOrder)
	r.RegisterCRUDRoutes(v1, "/order", orderHandler, apirouter.ReadWriteConfig, apirouter.AdminRoles)

	// Kho lưu trữ chỉ đọc: đơn đã hủy và đơn đã hoàn tất
	apirouter.RegisterRouteWithMiddleware(v1, "/canceled", "GET", "/list", readChain, orderHandler.HandleListCanceled)
	r.RegisterCRUDRoutes(v1, "/canceled", canceledHandler, apirouter.ReadOnlyConfig, apirouter.AdminRoles)

	apirouter.RegisterRouteWithMiddleware(v1, "/history", "GET", "/list", readChain, orderHandler.HandleListHistory)
	apirouter.RegisterRouteWithMiddleware(v1, "/history", "GET", "/order/:orderNumber", readChain, orderHandler.HandleGetHistoryOrder)
	r.RegisterCRUDRoutes(v1, "/history", historyHandler, apirouter.ReadOnlyConfig, apirouter.AdminRoles)

	return nil
}
