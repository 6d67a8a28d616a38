// Package middleware - các middleware xác thực và phân quyền.
package middleware

import (
	"strings"
	"time"

	models "winzen_admin/internal/api/auth/models"
	authsvc "winzen_admin/internal/api/auth/service"
	basehdl "winzen_admin/internal/api/base/handler"
	"winzen_admin/internal/common"
	"winzen_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// verifiedStaffCache cache kết quả verify token trong thời gian ngắn
// để không phải query staffs + tokens trên mọi request
var verifiedStaffCache = utility.NewCache(30*time.Second, 5*time.Minute)

// AuthRequired middleware xác thực bearer JWT.
// Parse token, kiểm tra phiên còn hiệu lực và lưu staff_code, staff_role, jwt_token vào Locals.
func AuthRequired() fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			basehdl.HandleError(c, common.ErrTokenMissing)
			return nil
		}

		var staff models.Staff
		if cached, ok := verifiedStaffCache.Get(tokenString); ok {
			staff = cached.(models.Staff)
		} else {
			staffService, err := authsvc.NewStaffService()
			if err != nil {
				basehdl.HandleError(c, err)
				return nil
			}
			staff, err = staffService.VerifyToken(c.Context(), tokenString)
			if err != nil {
				basehdl.HandleError(c, err)
				return nil
			}
			verifiedStaffCache.Set(tokenString, staff)
		}

		c.Locals("staff_code", staff.StaffCode)
		c.Locals("staff_role", staff.Role)
		c.Locals("jwt_token", tokenString)
		return c.Next()
	}
}

// RequireRole middleware chặn các vai trò không nằm trong danh sách cho phép.
// Phải đặt sau AuthRequired.
func RequireRole(roles ...string) fiber.Handler {
	return func(c fiber.Ctx) error {
		role, ok := c.Locals("staff_role").(string)
		if !ok || role == "" {
			basehdl.HandleError(c, common.ErrTokenMissing)
			return nil
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		basehdl.HandleError(c, common.ErrRoleNotAllowed)
		return nil
	}
}

// extractBearerToken lấy JWT từ header Authorization dạng "Bearer <token>"
func extractBearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
