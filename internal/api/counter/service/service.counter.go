// Package countersvc - service cấp mã định danh tuần tự.
package countersvc

import (
	"context"
	"fmt"

	models "winzen_admin/internal/api/counter/models"
	basesvc "winzen_admin/internal/api/base/service"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Allocator cấp số thứ tự tuần tự cho một họ định danh.
// Interface để test có thể thay bằng allocator giả.
type Allocator interface {
	Allocate(ctx context.Context, name string) (int64, error)
}

// CounterService là cấu trúc chứa các phương thức cấp mã định danh tuần tự
type CounterService struct {
	*basesvc.BaseServiceMongoImpl[models.Counter]
}

// NewCounterService tạo mới CounterService
func NewCounterService() (*CounterService, error) {
	counterCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Counters)
	if !exist {
		return nil, fmt.Errorf("failed to get counters collection: %v", common.ErrNotFound)
	}
	return &CounterService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Counter](counterCollection),
	}, nil
}

// Allocate cấp số tiếp theo cho bộ đếm name bằng một thao tác $inc nguyên tử.
// Bộ đếm chưa tồn tại sẽ được upsert với giá trị 1.
// Hai lời gọi đồng thời không bao giờ nhận cùng một số.
func (s *CounterService) Allocate(ctx context.Context, name string) (int64, error) {
	filter := bson.M{"name": name}
	update := bson.M{
		"$inc":         bson.M{"value": int64(1)},
		"$setOnInsert": bson.M{"name": name},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var counter models.Counter
	err := s.Collection().FindOneAndUpdate(ctx, filter, update, opts).Decode(&counter)
	if err != nil {
		return 0, common.ErrCounterUnavailable
	}
	return counter.Value, nil
}

// RaiseTo nâng bộ đếm name lên ít nhất value bằng $max, không bao giờ hạ xuống.
// Dùng khi nhập dữ liệu cũ để các mã cấp sau không trùng với mã đã nhập.
func (s *CounterService) RaiseTo(ctx context.Context, name string, value int64) error {
	filter := bson.M{"name": name}
	update := bson.M{
		"$max":         bson.M{"value": value},
		"$setOnInsert": bson.M{"name": name},
	}
	_, err := s.Collection().UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Peek đọc giá trị hiện tại của bộ đếm mà không tăng. Trả về 0 nếu chưa tồn tại
func (s *CounterService) Peek(ctx context.Context, name string) (int64, error) {
	counter, err := s.FindOne(ctx, bson.M{"name": name}, nil)
	if err != nil {
		if err == common.ErrNotFound {
			return 0, nil
		}
		return 0, err
	}
	return counter.Value, nil
}

// FormatID ghép prefix với số thứ tự thành mã định danh dạng người đọc được.
// Ví dụ: FormatID("Product", 7) = "Product7", FormatID("category_", 3) = "category_3"
func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s%d", prefix, n)
}

// Prefix của từng họ định danh, giữ nguyên quy ước mã của dữ liệu gốc
var counterPrefixes = map[string]string{
	models.CounterProducts:   "Product",
	models.CounterCategories: "category_",
	models.CounterCurve:      "CR",
	models.CounterBread:      "B",
	models.CounterCookies:    "CO",
	models.CounterCakes:      "CA",
	models.CounterUtensils:   "util",
	models.CounterOrders:     "Order_",
}

// PrefixFor trả về prefix mã định danh của bộ đếm name, chuỗi rỗng nếu không có
func PrefixFor(name string) string {
	return counterPrefixes[name]
}

// AllocateID cấp và format luôn mã định danh tiếp theo cho bộ đếm name
func (s *CounterService) AllocateID(ctx context.Context, name string) (string, error) {
	n, err := s.Allocate(ctx, name)
	if err != nil {
		return "", err
	}
	prefix := PrefixFor(name)
	if prefix == "" {
		return "", common.NewError(common.ErrCodeBusinessOperation, fmt.Sprintf("Không có prefix cho bộ đếm '%s'", name), common.StatusBadRequest, nil)
	}
	return FormatID(prefix, n), nil
}
