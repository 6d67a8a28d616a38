// Package inventoryhdl - handler kho nguyên liệu, dụng cụ và vật tư.
package inventoryhdl

import (
	"context"
	"fmt"

	basehdl "winzen_admin/internal/api/base/handler"
	inventorydto "winzen_admin/internal/api/inventory/dto"
	models "winzen_admin/internal/api/inventory/models"
	inventorysvc "winzen_admin/internal/api/inventory/service"
	"winzen_admin/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// StockHandler xử lý các request quản lý tồn kho
type StockHandler struct {
	*basehdl.BaseHandler[models.StockItem, inventorydto.StockItemCreateInput, inventorydto.StockItemUpdateInput]
	stockService *inventorysvc.StockService
}

// NewStockHandler tạo instance mới của StockHandler
func NewStockHandler() (*StockHandler, error) {
	stockService, err := inventorysvc.NewStockService()
	if err != nil {
		return nil, fmt.Errorf("failed to create stock service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.StockItem, inventorydto.StockItemCreateInput, inventorydto.StockItemUpdateInput](stockService)
	return &StockHandler{
		BaseHandler:  baseHandler,
		stockService: stockService,
	}, nil
}

// HandleCreateItem tạo mặt hàng kho mới
func (h *StockHandler) HandleCreateItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input inventorydto.StockItemCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := h.stockService.CreateItem(c.Context(), &input)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleAddStock cộng thêm hàng vào kho
func (h *StockHandler) HandleAddStock(c fiber.Ctx) error {
	return h.adjustStock(c, h.stockService.AddStock)
}

// HandleDecrementStock trừ hàng khỏi kho, không bao giờ xuống dưới 0
func (h *StockHandler) HandleDecrementStock(c fiber.Ctx) error {
	return h.adjustStock(c, h.stockService.DecrementStock)
}

func (h *StockHandler) adjustStock(c fiber.Ctx, adjust func(ctx context.Context, code string, quantity int64) (models.StockItem, error)) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input inventorydto.StockAdjustInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		item, err := adjust(c.Context(), code, input.Quantity)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleRemoveItem xóa mặt hàng và ghi dòng nhật ký âm bằng tồn kho lúc xóa
func (h *StockHandler) HandleRemoveItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		err := h.stockService.RemoveItem(c.Context(), code)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleRenameItem đổi tên mặt hàng
func (h *StockHandler) HandleRenameItem(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		code := c.Params("code")
		if code == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input inventorydto.StockItemUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if input.Name == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		item, err := h.stockService.RenameItem(c.Context(), code, input.Name)
		h.HandleResponse(c, item, err)
		return nil
	})
}

// HandleListByFamily liệt kê mặt hàng của một họ kèm trạng thái tồn kho
func (h *StockHandler) HandleListByFamily(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		family := c.Params("family")
		if family != models.FamilyIngredients && family != models.FamilyUtensils && family != models.FamilyExternal {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Họ kho '%s' không hợp lệ", family), common.StatusBadRequest, nil))
			return nil
		}

		views, err := h.stockService.ListByFamily(c.Context(), family)
		h.HandleResponse(c, views, err)
		return nil
	})
}

// HandleStockHistory đọc nhật ký biến động kho, có thể lọc theo itemName hoặc date
func (h *StockHandler) HandleStockHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		filter := bson.M{}
		if itemName := c.Query("itemName"); itemName != "" {
			filter["itemName"] = itemName
		}
		if date := c.Query("date"); date != "" {
			filter["date"] = date
		}

		entries, err := h.stockService.History(c.Context(), filter)
		if entries == nil {
			entries = []models.StockHistoryEntry{}
		}
		h.HandleResponse(c, entries, err)
		return nil
	})
}
