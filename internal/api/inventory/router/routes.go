// Package router đăng ký các route thuộc domain kho.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	inventoryhdl "winzen_admin/internal/api/inventory/handler"
	"winzen_admin/internal/api/middleware"
	apirouter "winzen_admin/internal/api/router"
)

// Register đăng ký tất cả route kho lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	stockHandler, err := inventoryhdl.NewStockHandler()
	if err != nil {
		return fmt.Errorf("create stock handler: %w", err)
	}

	authMiddleware := middleware.AuthRequired()
	adminWriteMiddleware := middleware.RequireRole(apirouter.AdminRoles...)
	readChain := []fiber.Handler{authMiddleware}
	writeChain := []fiber.Handler{authMiddleware, adminWriteMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "POST", "/create", writeChain, stockHandler.HandleCreateItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "PUT", "/add/:code", writeChain, stockHandler.HandleAddStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "PUT", "/decrement/:code", writeChain, stockHandler.HandleDecrementStock)
	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "PUT", "/rename/:code", writeChain, stockHandler.HandleRenameItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "DELETE", "/remove/:code", writeChain, stockHandler.HandleRemoveItem)
	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "GET", "/family/:family", readChain, stockHandler.HandleListByFamily)
	apirouter.RegisterRouteWithMiddleware(v1, "/stock", "GET", "/history", readChain, stockHandler.HandleStockHistory)
	r.RegisterCRUDRoutes(v1, "/stock", stockHandler, apirouter.ReadWriteConfig, apirouter.AdminRoles)

	return nil
}
