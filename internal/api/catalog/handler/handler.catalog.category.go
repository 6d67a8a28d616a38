// Package cataloghdl - handler danh mục và sản phẩm.
package cataloghdl

import (
	"fmt"

	basehdl "winzen_admin/internal/api/base/handler"
	catalogdto "winzen_admin/internal/api/catalog/dto"
	models "winzen_admin/internal/api/catalog/models"
	catalogsvc "winzen_admin/internal/api/catalog/service"
	"winzen_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	*basehdl.BaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
	categoryService *catalogsvc.CategoryService
}

// NewCategoryHandler tạo instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler:     baseHandler,
		categoryService: categoryService,
	}, nil
}

// HandleCreateCategory tạo danh mục mới với mã "category_<n>" cấp từ bộ đếm
func (h *CategoryHandler) HandleCreateCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.CreateCategory(c.Context(), &input)
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleRenameCategory đổi tên danh mục theo mã
func (h *CategoryHandler) HandleRenameCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input catalogdto.CategoryUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.RenameCategory(c.Context(), code, &input)
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleDeleteCategory xóa danh mục theo mã. Sản phẩm thuộc danh mục bị xóa
// vẫn được giữ nguyên và trở thành sản phẩm mồ côi
func (h *CategoryHandler) HandleDeleteCategory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		err := h.categoryService.DeleteCategory(c.Context(), code)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
