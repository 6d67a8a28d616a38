// Package catalogsvc - service danh mục và sản phẩm.
package catalogsvc

import (
	"context"
	"fmt"

	basesvc "winzen_admin/internal/api/base/service"
	catalogdto "winzen_admin/internal/api/catalog/dto"
	models "winzen_admin/internal/api/catalog/models"
	countermodels "winzen_admin/internal/api/counter/models"
	countersvc "winzen_admin/internal/api/counter/service"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục sản phẩm
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[models.Category]
	counterService *countersvc.CounterService
	productService *basesvc.BaseServiceMongoImpl[models.Product]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	counterService, err := countersvc.NewCounterService()
	if err != nil {
		return nil, err
	}
	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Category](categoryCollection),
		counterService:       counterService,
		productService:       basesvc.NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// CreateCategory tạo danh mục mới với code "category_<n>" cấp từ bộ đếm.
// Tên danh mục là duy nhất, kiểm tra trước khi cấp số để không đốt số đếm vô ích.
func (s *CategoryService) CreateCategory(ctx context.Context, input *catalogdto.CategoryCreateInput) (models.Category, error) {
	var zero models.Category

	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Danh mục '%s' đã tồn tại", input.Name), common.StatusConflict, nil)
	}

	code, err := s.counterService.AllocateID(ctx, countermodels.CounterCategories)
	if err != nil {
		return zero, err
	}

	return s.InsertOne(ctx, models.Category{
		Code: code,
		Name: input.Name,
	})
}

// RenameCategory đổi tên danh mục. Sản phẩm tham chiếu theo tên cũ không được
// cập nhật theo, giữ nguyên hành vi của hệ thống gốc.
func (s *CategoryService) RenameCategory(ctx context.Context, code string, input *catalogdto.CategoryUpdateInput) (models.Category, error) {
	var zero models.Category

	exists, err := s.DocumentExists(ctx, bson.M{"name": input.Name, "code": bson.M{"$ne": code}})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Danh mục '%s' đã tồn tại", input.Name), common.StatusConflict, nil)
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"name": input.Name}}
	return s.UpdateOne(ctx, bson.M{"code": code}, update, nil)
}

// DeleteCategory xóa danh mục theo code.
// Các sản phẩm đang tham chiếu danh mục theo tên bị bỏ mồ côi chứ không bị xóa hay sửa.
func (s *CategoryService) DeleteCategory(ctx context.Context, code string) error {
	category, err := s.FindOne(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return err
	}

	if err := s.DeleteOne(ctx, bson.M{"code": code}); err != nil {
		return err
	}

	orphans, err := s.productService.CountDocuments(ctx, bson.M{"categoryName": category.Name})
	if err == nil && orphans > 0 {
		logger.GetAppLogger().WithFields(logrus.Fields{
			"category": category.Name,
			"orphans":  orphans,
		}).Warn("Xóa danh mục để lại sản phẩm mồ côi")
	}
	return nil
}

// AdjustProductCount tăng/giảm productCount của danh mục theo tên bằng $inc nguyên tử
func (s *CategoryService) AdjustProductCount(ctx context.Context, categoryName string, delta int64) error {
	_, err := s.Collection().UpdateOne(ctx,
		bson.M{"name": categoryName},
		bson.M{"$inc": bson.M{"productCount": delta}},
	)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}
