// Package router đăng ký các route thuộc domain xác thực: đăng nhập, phiên, nhân viên.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "winzen_admin/internal/api/auth/handler"
	"winzen_admin/internal/api/middleware"
	apirouter "winzen_admin/internal/api/router"
)

// Register đăng ký tất cả route xác thực và nhân viên lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	staffHandler, err := authhdl.NewStaffHandler()
	if err != nil {
		return fmt.Errorf("create staff handler: %w", err)
	}

	authMiddleware := middleware.AuthRequired()
	superAdminMiddleware := middleware.RequireRole(apirouter.SuperAdminOnly...)

	// Đăng nhập là route công khai duy nhất của domain này
	v1.Group("/auth").Post("/login", staffHandler.HandleLogin)

	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "POST", "/logout", []fiber.Handler{authMiddleware}, staffHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "GET", "/profile", []fiber.Handler{authMiddleware}, staffHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/auth", "PUT", "/change-password", []fiber.Handler{authMiddleware}, staffHandler.HandleChangePassword)

	// Quản lý nhân viên chỉ dành cho Super Admin
	apirouter.RegisterRouteWithMiddleware(v1, "/staff", "POST", "/create", []fiber.Handler{authMiddleware, superAdminMiddleware}, staffHandler.HandleCreateStaff)
	r.RegisterCRUDRoutes(v1, "/staff", staffHandler, apirouter.ReadWriteConfig, apirouter.SuperAdminOnly)

	return nil
}
