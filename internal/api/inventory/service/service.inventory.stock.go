// Package inventorysvc - service quản lý tồn kho và nhật ký kho.
package inventorysvc

import (
	"context"
	"fmt"
	"time"

	basesvc "winzen_admin/internal/api/base/service"
	countermodels "winzen_admin/internal/api/counter/models"
	countersvc "winzen_admin/internal/api/counter/service"
	inventorydto "winzen_admin/internal/api/inventory/dto"
	models "winzen_admin/internal/api/inventory/models"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// StockService là cấu trúc chứa các phương thức quản lý mặt hàng kho
type StockService struct {
	*basesvc.BaseServiceMongoImpl[models.StockItem]
	historyService *basesvc.BaseServiceMongoImpl[models.StockHistoryEntry]
	counterService *countersvc.CounterService
}

// NewStockService tạo mới StockService
func NewStockService() (*StockService, error) {
	stockCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.StockItems)
	if !exist {
		return nil, fmt.Errorf("failed to get stock_items collection: %v", common.ErrNotFound)
	}
	historyCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.StockHistory)
	if !exist {
		return nil, fmt.Errorf("failed to get stocks_history collection: %v", common.ErrNotFound)
	}
	counterService, err := countersvc.NewCounterService()
	if err != nil {
		return nil, err
	}
	return &StockService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.StockItem](stockCollection),
		historyService:       basesvc.NewBaseServiceMongo[models.StockHistoryEntry](historyCollection),
		counterService:       counterService,
	}, nil
}

// counterNameFor chọn bộ đếm mint mã cho mặt hàng theo họ và nhóm
func counterNameFor(family string, category string) string {
	if family == models.FamilyUtensils {
		return countermodels.CounterUtensils
	}
	switch category {
	case models.CategoryCurve:
		return countermodels.CounterCurve
	case models.CategoryBread:
		return countermodels.CounterBread
	case models.CategoryCookies:
		return countermodels.CounterCookies
	case models.CategoryCakes:
		return countermodels.CounterCakes
	}
	return ""
}

// CreateItem tạo mặt hàng kho mới với mã cấp từ bộ đếm của nhóm.
// Nhóm Cakes khởi tạo tồn kho hai đơn vị với slice = whole * 8
func (s *StockService) CreateItem(ctx context.Context, input *inventorydto.StockItemCreateInput) (models.StockItem, error) {
	var zero models.StockItem

	counterName := counterNameFor(input.Family, input.Category)
	if counterName == "" {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Không có bộ đếm cho họ '%s' nhóm '%s'", input.Family, input.Category), common.StatusBadRequest, nil)
	}
	code, err := s.counterService.AllocateID(ctx, counterName)
	if err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	item := models.StockItem{
		Code:      code,
		Name:      input.Name,
		Family:    input.Family,
		Category:  input.Category,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if input.Category == models.CategoryCakes {
		item.CakeStock = &models.CakeStock{
			Whole: input.Stocks,
			Slice: input.Stocks * models.SliceFactor,
		}
	} else {
		item.Stocks = input.Stocks
	}

	created, err := s.InsertOne(ctx, item)
	if err != nil {
		return zero, err
	}

	if err := s.appendHistory(ctx, created.Name, models.ActionAdded, input.Stocks); err != nil {
		return created, err
	}
	return created, nil
}

// AddStock cộng thêm quantity vào tồn kho của mặt hàng code.
// Cakes cập nhật whole và slice trong cùng một lần ghi document
func (s *StockService) AddStock(ctx context.Context, code string, quantity int64) (models.StockItem, error) {
	var zero models.StockItem

	item, err := s.FindOne(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	var update mongo.Pipeline
	if item.IsCake() {
		update = mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"cakeStock.whole": bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$cakeStock.whole", 0}}, quantity}},
			}}},
			{{Key: "$set", Value: bson.M{
				"cakeStock.slice": bson.M{"$multiply": bson.A{"$cakeStock.whole", models.SliceFactor}},
				"updatedAt":       now,
			}}},
		}
	} else {
		update = mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"stocks":    bson.M{"$add": bson.A{bson.M{"$ifNull": bson.A{"$stocks", 0}}, quantity}},
				"updatedAt": now,
			}}},
		}
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"code": code}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err != nil {
		return zero, err
	}

	if err := s.appendHistory(ctx, updated.Name, models.ActionRestocked, quantity); err != nil {
		return updated, err
	}
	return updated, nil
}

// DecrementStock trừ quantity khỏi tồn kho, chặn ở 0 bằng $max trong pipeline
// nên không bao giờ âm kể cả khi hai request trừ cùng lúc
func (s *StockService) DecrementStock(ctx context.Context, code string, quantity int64) (models.StockItem, error) {
	var zero models.StockItem

	item, err := s.FindOne(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return zero, err
	}

	now := time.Now().UnixMilli()
	var update mongo.Pipeline
	if item.IsCake() {
		update = mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"cakeStock.whole": bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$cakeStock.whole", 0}}, quantity}}}},
			}}},
			{{Key: "$set", Value: bson.M{
				"cakeStock.slice": bson.M{"$multiply": bson.A{"$cakeStock.whole", models.SliceFactor}},
				"updatedAt":       now,
			}}},
		}
	} else {
		update = mongo.Pipeline{
			{{Key: "$set", Value: bson.M{
				"stocks":    bson.M{"$max": bson.A{0, bson.M{"$subtract": bson.A{bson.M{"$ifNull": bson.A{"$stocks", 0}}, quantity}}}},
				"updatedAt": now,
			}}},
		}
	}

	updated, err := s.FindOneAndUpdate(ctx, bson.M{"code": code}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After))
	if err != nil {
		return zero, err
	}

	// Lượng thực trừ có thể nhỏ hơn quantity khi kho chạm đáy 0
	deducted := item.Quantity() - updated.Quantity()
	if err := s.appendHistory(ctx, updated.Name, models.ActionDeducted, -deducted); err != nil {
		return updated, err
	}
	return updated, nil
}

// RemoveItem xóa mặt hàng và ghi vào nhật ký một dòng âm đúng bằng tồn kho
// tại thời điểm xóa
func (s *StockService) RemoveItem(ctx context.Context, code string) error {
	item, err := s.FindOneAndDelete(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return err
	}
	return s.appendHistory(ctx, item.Name, models.ActionRemoved, -item.Quantity())
}

// RenameItem đổi tên hiển thị của mặt hàng
func (s *StockService) RenameItem(ctx context.Context, code string, name string) (models.StockItem, error) {
	update := &basesvc.UpdateData{Set: map[string]interface{}{"name": name}}
	return s.UpdateOne(ctx, bson.M{"code": code}, update, nil)
}

// ListByFamily trả về mặt hàng của một họ kèm trạng thái tồn kho suy ra
func (s *StockService) ListByFamily(ctx context.Context, family string) ([]inventorydto.StockItemView, error) {
	items, err := s.Find(ctx, bson.M{"family": family}, nil)
	if err != nil {
		return nil, err
	}
	views := make([]inventorydto.StockItemView, 0, len(items))
	for i := range items {
		views = append(views, toStockView(&items[i]))
	}
	return views, nil
}

// History đọc nhật ký kho, mới nhất trước
func (s *StockService) History(ctx context.Context, filter interface{}) ([]models.StockHistoryEntry, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.historyService.Find(ctx, filter, opts)
}

// appendHistory ghi một dòng nhật ký sau khi kho đã đổi. Bản ghi số lượng là
// nguồn sự thật, nhật ký ghi sau; ghi hỏng thì log và trả lỗi lên caller chứ
// không nuốt im lặng
func (s *StockService) appendHistory(ctx context.Context, itemName string, action string, quantity int64) error {
	now := time.Now()
	entry := models.StockHistoryEntry{
		Date:      now.Format("2006-01-02"),
		ItemName:  itemName,
		Action:    action,
		Quantity:  quantity,
		CreatedAt: now.UnixMilli(),
		UpdatedAt: now.UnixMilli(),
	}
	if _, err := s.historyService.InsertOne(ctx, entry); err != nil {
		logger.GetAppLogger().WithError(err).WithFields(map[string]interface{}{
			"itemName": itemName,
			"action":   action,
			"quantity": quantity,
		}).Error("Kho đã cập nhật nhưng không ghi được nhật ký")
		return common.NewError(common.ErrCodeBusinessOperation, "Kho đã cập nhật nhưng nhật ký chưa ghi được", common.StatusInternalServerError, err.Error())
	}
	return nil
}

func toStockView(item *models.StockItem) inventorydto.StockItemView {
	view := inventorydto.StockItemView{
		Code:      item.Code,
		Name:      item.Name,
		Family:    item.Family,
		Category:  item.Category,
		Stocks:    item.Stocks,
		Status:    item.Status(),
		UpdatedAt: item.UpdatedAt,
	}
	if item.CakeStock != nil {
		view.Whole = item.CakeStock.Whole
		view.Slice = item.CakeStock.Slice
	}
	return view
}
