// Package router đăng ký các route thuộc domain danh mục và sản phẩm.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "winzen_admin/internal/api/catalog/handler"
	"winzen_admin/internal/api/middleware"
	apirouter "winzen_admin/internal/api/router"
)

// Register đăng ký tất cả route danh mục và sản phẩm lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}

	authMiddleware := middleware.AuthRequired()
	adminWriteMiddleware := middleware.RequireRole(apirouter.AdminRoles...)
	readChain := []fiber.Handler{authMiddleware}
	writeChain := []fiber.Handler{authMiddleware, adminWriteMiddleware}

	apirouter.RegisterRouteWithMiddleware(v1, "/category", "POST", "/create", writeChain, categoryHandler.HandleCreateCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "PUT", "/rename/:code", writeChain, categoryHandler.HandleRenameCategory)
	apirouter.RegisterRouteWithMiddleware(v1, "/category", "DELETE", "/delete/:code", writeChain, categoryHandler.HandleDeleteCategory)
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig, apirouter.AdminRoles)

	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/create", writeChain, productHandler.HandleCreateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/update/:code", writeChain, productHandler.HandleUpdateProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "DELETE", "/delete/:code", writeChain, productHandler.HandleDeleteProduct)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "GET", "/search", readChain, productHandler.HandleSearchProducts)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/upload-image/:code", writeChain, productHandler.HandleUploadProductImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "PUT", "/stock-status/:code", writeChain, productHandler.HandleSetStockStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/product", "POST", "/import-legacy", []fiber.Handler{authMiddleware, middleware.RequireRole(apirouter.SuperAdminOnly...)}, productHandler.HandleImportLegacy)
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig, apirouter.AdminRoles)

	return nil
}
