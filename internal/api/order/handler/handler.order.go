// Package orderhdl - handler đơn hàng và kho lưu trữ.
package orderhdl

import (
	"context"
	"fmt"

	basehdl "winzen_admin/internal/api/base/handler"
	orderdto "winzen_admin/internal/api/order/dto"
	models "winzen_admin/internal/api/order/models"
	ordersvc "winzen_admin/internal/api/order/service"
	"winzen_admin/internal/common"
	"winzen_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	baseHandler := basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  baseHandler,
		orderService: orderService,
	}, nil
}

// HandleCreateOrder tạo đơn hàng mới
func (h *OrderHandler) HandleCreateOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		order, err := h.orderService.CreateOrder(c.Context(), &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleListOrders liệt kê đơn đang hoạt động theo bộ lọc
func (h *OrderHandler) HandleListOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.OrderFilterInput
		if err := basehdl.ParseQuery(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		orders, err := h.orderService.ListOrders(c.Context(), &input)
		if orders == nil {
			orders = []models.Order{}
		}
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleCancelOrder chuyển đơn sang canceled rồi xóa khỏi orders
func (h *OrderHandler) HandleCancelOrder(c fiber.Ctx) error {
	return h.moveOrder(c, h.orderService.CancelOrder)
}

// HandleCompleteOrder chuyển đơn sang kho lưu trữ history
func (h *OrderHandler) HandleCompleteOrder(c fiber.Ctx) error {
	return h.moveOrder(c, h.orderService.CompleteOrder)
}

func (h *OrderHandler) moveOrder(c fiber.Ctx, move func(ctx context.Context, orderNumber string) (models.Order, error)) error {
	return h.SafeHandler(c, func() error {
		orderNumber := c.Params("orderNumber")
		if orderNumber == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		order, err := move(c.Context(), orderNumber)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleListCanceled đọc danh sách đơn đã hủy
func (h *OrderHandler) HandleListCanceled(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orders, err := h.orderService.ListCanceled(c.Context())
		if orders == nil {
			orders = []models.Order{}
		}
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleListHistory đọc kho lưu trữ đơn hoàn tất, lọc tùy chọn theo from/to
// (UnixMilli)
func (h *OrderHandler) HandleListHistory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		from := utility.P2Int64(c.Query("from"))
		to := utility.P2Int64(c.Query("to"))

		orders, err := h.orderService.ListHistory(c.Context(), from, to)
		if orders == nil {
			orders = []models.Order{}
		}
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleGetHistoryOrder đọc một đơn trong kho lưu trữ theo mã
func (h *OrderHandler) HandleGetHistoryOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orderNumber := c.Params("orderNumber")
		if orderNumber == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		order, err := h.orderService.FindHistoryByOrderNumber(c.Context(), orderNumber)
		h.HandleResponse(c, order, err)
		return nil
	})
}
