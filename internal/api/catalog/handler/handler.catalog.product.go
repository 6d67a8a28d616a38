package cataloghdl

import (
	"fmt"

	basehdl "winzen_admin/internal/api/base/handler"
	catalogdto "winzen_admin/internal/api/catalog/dto"
	models "winzen_admin/internal/api/catalog/models"
	catalogsvc "winzen_admin/internal/api/catalog/service"
	"winzen_admin/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    baseHandler,
		productService: productService,
	}, nil
}

// HandleCreateProduct tạo sản phẩm mới với mã "Product<n>" cấp từ bộ đếm
func (h *ProductHandler) HandleCreateProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.productService.CreateProduct(c.Context(), &input)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleUpdateProduct cập nhật từng phần sản phẩm theo mã
func (h *ProductHandler) HandleUpdateProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.productService.UpdateProduct(c.Context(), code, &input)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleDeleteProduct xóa sản phẩm theo mã kèm ảnh trên storage
func (h *ProductHandler) HandleDeleteProduct(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		err := h.productService.DeleteProduct(c.Context(), code)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleSearchProducts lọc và sắp xếp sản phẩm theo query/category/sort.
// Việc match chạy trên bộ nhớ để từ khóa khớp được cả token size và giá
// trong biến thể, không chỉ các field phẳng
func (h *ProductHandler) HandleSearchProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductFilterInput
		if err := basehdl.ParseQuery(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		products, err := h.productService.Find(c.Context(), bson.M{}, nil)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result := catalogsvc.FilterProducts(products, input.Query, input.Category, input.Sort)
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleUploadProductImage nhận ảnh raw trong body và đẩy lên storage.
// Content-Type của request chính là content type của object
func (h *ProductHandler) HandleUploadProductImage(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		data := c.Body()
		if len(data) == 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Body rỗng, cần dữ liệu ảnh", common.StatusBadRequest, nil))
			return nil
		}

		contentType := c.Get("Content-Type")
		if contentType == "" {
			contentType = "image/jpeg"
		}

		product, err := h.productService.UploadProductImage(c.Context(), code, data, contentType)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleSetStockStatus chuyển trạng thái còn hàng / hết hàng của sản phẩm
func (h *ProductHandler) HandleSetStockStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input struct {
			StockStatus string `json:"stockStatus" validate:"required,oneof='In Stock' 'Out of Stock'"`
		}
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.productService.SetStockStatus(c.Context(), code, input.StockStatus)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleImportLegacy nhập bản export JSON của hệ thống cũ
func (h *ProductHandler) HandleImportLegacy(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data := c.Body()
		if len(data) == 0 {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Body rỗng, cần JSON export", common.StatusBadRequest, nil))
			return nil
		}

		result, err := h.productService.ImportLegacyExport(c.Context(), data)
		h.HandleResponse(c, result, err)
		return nil
	})
}
