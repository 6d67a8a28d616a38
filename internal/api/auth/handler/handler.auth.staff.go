// Package authhdl - handler nhân viên và phiên đăng nhập.
package authhdl

import (
	"fmt"
	"strings"

	authdto "winzen_admin/internal/api/auth/dto"
	models "winzen_admin/internal/api/auth/models"
	authsvc "winzen_admin/internal/api/auth/service"
	basehdl "winzen_admin/internal/api/base/handler"
	"winzen_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// StaffHandler xử lý các request xác thực và quản lý nhân viên
type StaffHandler struct {
	*basehdl.BaseHandler[models.Staff, authdto.StaffCreateInput, authdto.StaffUpdateInput]
	staffService *authsvc.StaffService
}

// NewStaffHandler tạo instance mới của StaffHandler
func NewStaffHandler() (*StaffHandler, error) {
	staffService, err := authsvc.NewStaffService()
	if err != nil {
		return nil, fmt.Errorf("failed to create staff service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Staff, authdto.StaffCreateInput, authdto.StaffUpdateInput](staffService)
	return &StaffHandler{
		BaseHandler:  baseHandler,
		staffService: staffService,
	}, nil
}

// HandleLogin xử lý đăng nhập bằng staffCode + mật khẩu
func (h *StaffHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.StaffLoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.staffService.Login(c.Context(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleLogout thu hồi phiên đăng nhập hiện tại
func (h *StaffHandler) HandleLogout(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		err := h.staffService.Logout(c.Context(), tokenString)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleCreateStaff tạo nhân viên mới (mật khẩu được hash phía service)
func (h *StaffHandler) HandleCreateStaff(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input authdto.StaffCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		staff, err := h.staffService.CreateStaff(c.Context(), &input)
		staff.PasswordHash = ""
		h.HandleResponse(c, staff, err)
		return nil
	})
}

// HandleGetProfile trả về thông tin nhân viên của phiên hiện tại
func (h *StaffHandler) HandleGetProfile(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		staffCode, ok := c.Locals("staff_code").(string)
		if !ok || staffCode == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		staff, err := h.staffService.FindOne(c.Context(), map[string]interface{}{"staffCode": staffCode}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		staff.PasswordHash = ""
		h.HandleResponse(c, staff, nil)
		return nil
	})
}

// HandleChangePassword đổi mật khẩu của phiên hiện tại
func (h *StaffHandler) HandleChangePassword(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		staffCode, ok := c.Locals("staff_code").(string)
		if !ok || staffCode == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		var input authdto.StaffChangePasswordInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.staffService.ChangePassword(c.Context(), staffCode, &input)
		h.HandleResponse(c, nil, err)
		return nil
	})
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
