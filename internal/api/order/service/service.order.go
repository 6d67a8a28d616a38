// Package ordersvc - service đơn hàng, hủy đơn và kho lưu trữ.
package ordersvc

import (
	"context"
	"fmt"
	"strings"
	"time"

	basesvc "winzen_admin/internal/api/base/service"
	countermodels "winzen_admin/internal/api/counter/models"
	countersvc "winzen_admin/internal/api/counter/service"
	orderdto "winzen_admin/internal/api/order/dto"
	models "winzen_admin/internal/api/order/models"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService là cấu trúc chứa các phương thức quản lý đơn hàng.
// Ba collection orders / canceled / history dùng cùng model Order
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	canceledService *basesvc.BaseServiceMongoImpl[models.Order]
	historyService  *basesvc.BaseServiceMongoImpl[models.Order]
	counterService  *countersvc.CounterService
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}
	canceledCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Canceled)
	if !exist {
		return nil, fmt.Errorf("failed to get canceled collection: %v", common.ErrNotFound)
	}
	historyCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.History)
	if !exist {
		return nil, fmt.Errorf("failed to get history collection: %v", common.ErrNotFound)
	}
	counterService, err := countersvc.NewCounterService()
	if err != nil {
		return nil, err
	}
	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		canceledService:      basesvc.NewBaseServiceMongo[models.Order](canceledCollection),
		historyService:       basesvc.NewBaseServiceMongo[models.Order](historyCollection),
		counterService:       counterService,
	}, nil
}

// CreateOrder tạo đơn hàng mới với mã "Order_<n>" cấp từ bộ đếm.
// Subtotal và total tính lại phía server từ các dòng hàng, không tin client
func (s *OrderService) CreateOrder(ctx context.Context, input *orderdto.OrderCreateInput) (models.Order, error) {
	var zero models.Order

	orderNumber, err := s.counterService.AllocateID(ctx, countermodels.CounterOrders)
	if err != nil {
		return zero, err
	}

	items := lo.Map(input.Items, func(item orderdto.OrderItemInput, _ int) models.OrderItem {
		return models.OrderItem{
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Variation:   item.Variation,
			Size:        item.Size,
		}
	})
	subtotal := lo.SumBy(items, func(item models.OrderItem) float64 {
		return item.Price * float64(item.Quantity)
	})
	total := subtotal - input.Discount
	if total < 0 {
		return zero, common.NewError(common.ErrCodeValidationInput, "Giảm giá không được vượt quá tạm tính", common.StatusBadRequest, nil)
	}

	now := time.Now()
	order := models.Order{
		OrderNumber:   orderNumber,
		CustomerName:  input.CustomerName,
		StaffName:     input.StaffName,
		OrderDateTime: now.UnixMilli(),
		Preference:    input.Preference,
		Subtotal:      subtotal,
		Discount:      input.Discount,
		Total:         total,
		Items:         items,
		CreatedAt:     now.UnixMilli(),
		UpdatedAt:     now.UnixMilli(),
	}
	return s.InsertOne(ctx, order)
}

// ListOrders liệt kê đơn đang hoạt động, lọc theo hình thức phục vụ và
// từ khóa trên mã đơn
func (s *OrderService) ListOrders(ctx context.Context, input *orderdto.OrderFilterInput) ([]models.Order, error) {
	filter := bson.M{}
	if input.Preference != "" && input.Preference != "All" {
		filter["preference"] = input.Preference
	}

	opts := options.Find().SetSort(bson.D{{Key: "orderDateTime", Value: -1}})
	orders, err := s.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	if input.Search == "" {
		return orders, nil
	}
	search := strings.ToLower(input.Search)
	return lo.Filter(orders, func(order models.Order, _ int) bool {
		return strings.Contains(strings.ToLower(order.OrderNumber), search)
	}), nil
}

// CancelOrder chuyển đơn sang collection canceled rồi mới xóa khỏi orders.
// Nếu bước xóa hỏng, bản sao trong canceled được xóa bù để đơn không xuất
// hiện ở cả hai nơi. Hai bước không nằm trong một transaction nên giữa hai
// lần ghi vẫn có khoảnh khắc đơn tồn tại ở cả hai collection
func (s *OrderService) CancelOrder(ctx context.Context, orderNumber string) (models.Order, error) {
	var zero models.Order

	order, err := s.FindOne(ctx, bson.M{"orderNumber": orderNumber}, nil)
	if err != nil {
		return zero, err
	}

	alreadyCanceled, err := s.canceledService.DocumentExists(ctx, bson.M{"orderNumber": orderNumber})
	if err != nil {
		return zero, err
	}
	if alreadyCanceled {
		return zero, common.ErrOrderAlreadyMoved
	}

	copied := order
	copied.ID = primitive.NilObjectID
	copied.UpdatedAt = time.Now().UnixMilli()
	canceled, err := s.canceledService.InsertOne(ctx, copied)
	if err != nil {
		return zero, err
	}

	if err := s.DeleteOne(ctx, bson.M{"orderNumber": orderNumber}); err != nil {
		// Bù trừ: gỡ bản sao để không còn đơn nằm ở cả hai collection
		if compErr := s.canceledService.DeleteOne(ctx, bson.M{"orderNumber": orderNumber}); compErr != nil {
			logger.GetAppLogger().WithError(compErr).WithField("orderNumber", orderNumber).
				Error("Không gỡ được bản sao trong canceled sau khi xóa đơn thất bại")
		}
		return zero, err
	}
	return canceled, nil
}

// CompleteOrder chuyển đơn sang kho lưu trữ history với cùng quy trình
// sao chép rồi xóa như hủy đơn
func (s *OrderService) CompleteOrder(ctx context.Context, orderNumber string) (models.Order, error) {
	var zero models.Order

	order, err := s.FindOne(ctx, bson.M{"orderNumber": orderNumber}, nil)
	if err != nil {
		return zero, err
	}

	alreadyArchived, err := s.historyService.DocumentExists(ctx, bson.M{"orderNumber": orderNumber})
	if err != nil {
		return zero, err
	}
	if alreadyArchived {
		return zero, common.ErrOrderAlreadyMoved
	}

	copied := order
	copied.ID = primitive.NilObjectID
	copied.UpdatedAt = time.Now().UnixMilli()
	archived, err := s.historyService.InsertOne(ctx, copied)
	if err != nil {
		return zero, err
	}

	if err := s.DeleteOne(ctx, bson.M{"orderNumber": orderNumber}); err != nil {
		if compErr := s.historyService.DeleteOne(ctx, bson.M{"orderNumber": orderNumber}); compErr != nil {
			logger.GetAppLogger().WithError(compErr).WithField("orderNumber", orderNumber).
				Error("Không gỡ được bản sao trong history sau khi xóa đơn thất bại")
		}
		return zero, err
	}
	return archived, nil
}

// ListCanceled đọc các đơn đã hủy, mới nhất trước
func (s *OrderService) ListCanceled(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "orderDateTime", Value: -1}})
	return s.canceledService.Find(ctx, bson.M{}, opts)
}

// ListHistory đọc kho lưu trữ đơn hoàn tất trong khoảng thời gian tùy chọn.
// from/to là mốc UnixMilli, bằng 0 thì bỏ qua
func (s *OrderService) ListHistory(ctx context.Context, from int64, to int64) ([]models.Order, error) {
	filter := bson.M{}
	dateRange := bson.M{}
	if from > 0 {
		dateRange["$gte"] = from
	}
	if to > 0 {
		dateRange["$lt"] = to
	}
	if len(dateRange) > 0 {
		filter["orderDateTime"] = dateRange
	}
	opts := options.Find().SetSort(bson.D{{Key: "orderDateTime", Value: -1}})
	return s.historyService.Find(ctx, filter, opts)
}

// FindHistoryByOrderNumber đọc một đơn trong kho lưu trữ theo mã
func (s *OrderService) FindHistoryByOrderNumber(ctx context.Context, orderNumber string) (models.Order, error) {
	return s.historyService.FindOne(ctx, bson.M{"orderNumber": orderNumber}, nil)
}
