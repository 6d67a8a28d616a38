package catalogsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "winzen_admin/internal/api/base/service"
	catalogdto "winzen_admin/internal/api/catalog/dto"
	models "winzen_admin/internal/api/catalog/models"
	countermodels "winzen_admin/internal/api/counter/models"
	countersvc "winzen_admin/internal/api/counter/service"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"
	"winzen_admin/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	counterService  *countersvc.CounterService
	categoryService *CategoryService
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}
	counterService, err := countersvc.NewCounterService()
	if err != nil {
		return nil, err
	}
	categoryService, err := NewCategoryService()
	if err != nil {
		return nil, err
	}
	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
		counterService:       counterService,
		categoryService:      categoryService,
	}, nil
}

// CreateProduct tạo sản phẩm mới với code "Product<n>" cấp từ bộ đếm.
// Biến thể phải hợp lệ (có ít nhất một mức giá) và danh mục phải tồn tại.
// Sau khi tạo, productCount của danh mục được tăng lên.
func (s *ProductService) CreateProduct(ctx context.Context, input *catalogdto.ProductCreateInput) (models.Product, error) {
	var zero models.Product

	if err := input.Variation.Validate(); err != nil {
		return zero, err
	}

	categoryExists, err := s.categoryService.DocumentExists(ctx, bson.M{"name": input.CategoryName})
	if err != nil {
		return zero, err
	}
	if !categoryExists {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Danh mục '%s' không tồn tại", input.CategoryName), common.StatusBadRequest, nil)
	}

	code, err := s.counterService.AllocateID(ctx, countermodels.CounterProducts)
	if err != nil {
		return zero, err
	}

	stockStatus := input.StockStatus
	if stockStatus == "" {
		stockStatus = models.StockStatusIn
	}

	product, err := s.InsertOne(ctx, models.Product{
		Code:         code,
		Name:         input.Name,
		Description:  input.Description,
		CategoryName: input.CategoryName,
		StockStatus:  stockStatus,
		Variation:    input.Variation,
	})
	if err != nil {
		return zero, err
	}

	if err := s.categoryService.AdjustProductCount(ctx, input.CategoryName, 1); err != nil {
		logger.GetErrorLogger().WithError(err).Warn("CreateProduct: không cập nhật được productCount của danh mục")
	}
	return product, nil
}

// UpdateProduct cập nhật sản phẩm theo code, chỉ ghi các trường có trong input.
// Đổi danh mục sẽ chuyển productCount giữa hai danh mục.
func (s *ProductService) UpdateProduct(ctx context.Context, code string, input *catalogdto.ProductUpdateInput) (models.Product, error) {
	var zero models.Product

	current, err := s.FindOne(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return zero, err
	}

	update := &basesvc.UpdateData{Set: make(map[string]interface{})}
	if input.Name != "" {
		update.Set["name"] = input.Name
	}
	if input.Description != "" {
		update.Set["description"] = input.Description
	}
	if input.StockStatus != "" {
		update.Set["stockStatus"] = input.StockStatus
	}
	if input.CategoryName != "" && input.CategoryName != current.CategoryName {
		categoryExists, err := s.categoryService.DocumentExists(ctx, bson.M{"name": input.CategoryName})
		if err != nil {
			return zero, err
		}
		if !categoryExists {
			return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Danh mục '%s' không tồn tại", input.CategoryName), common.StatusBadRequest, nil)
		}
		update.Set["categoryName"] = input.CategoryName
	}
	if input.Variation != nil {
		if err := input.Variation.Validate(); err != nil {
			return zero, err
		}
		update.Set["variations"] = *input.Variation
	}

	if len(update.Set) == 0 {
		return current, nil
	}

	updated, err := s.UpdateOne(ctx, bson.M{"code": code}, update, nil)
	if err != nil {
		return zero, err
	}

	if newCategory, ok := update.Set["categoryName"].(string); ok {
		if err := s.categoryService.AdjustProductCount(ctx, current.CategoryName, -1); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("UpdateProduct: không giảm được productCount danh mục cũ")
		}
		if err := s.categoryService.AdjustProductCount(ctx, newCategory, 1); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("UpdateProduct: không tăng được productCount danh mục mới")
		}
	}
	return updated, nil
}

// DeleteProduct xóa sản phẩm theo code, giảm productCount của danh mục
// và dọn ảnh sản phẩm trên storage nếu có.
func (s *ProductService) DeleteProduct(ctx context.Context, code string) error {
	product, err := s.FindOne(ctx, bson.M{"code": code}, nil)
	if err != nil {
		return err
	}

	if err := s.DeleteOne(ctx, bson.M{"code": code}); err != nil {
		return err
	}

	if err := s.categoryService.AdjustProductCount(ctx, product.CategoryName, -1); err != nil {
		logger.GetErrorLogger().WithError(err).Warn("DeleteProduct: không giảm được productCount của danh mục")
	}

	if product.ImageURL != "" {
		if err := utility.DeleteImage(ctx, imageObjectPath(code)); err != nil {
			logger.GetErrorLogger().WithError(err).Warn("DeleteProduct: không xóa được ảnh sản phẩm trên storage")
		}
	}
	return nil
}

// UploadProductImage đẩy ảnh sản phẩm lên object storage theo đường dẫn "OM/<code>.jpg"
// và lưu public URL vào bản ghi sản phẩm.
func (s *ProductService) UploadProductImage(ctx context.Context, code string, data []byte, contentType string) (models.Product, error) {
	var zero models.Product

	exists, err := s.DocumentExists(ctx, bson.M{"code": code})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrNotFound
	}

	publicURL, err := utility.UploadImage(ctx, imageObjectPath(code), data, contentType)
	if err != nil {
		return zero, common.NewError(common.ErrCodeBusinessOperation, "Lỗi upload ảnh sản phẩm", common.StatusInternalServerError, err)
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"imageUrl": publicURL}}
	return s.UpdateOne(ctx, bson.M{"code": code}, update, nil)
}

// SetStockStatus cập nhật nhanh trạng thái tồn kho trên thực đơn
func (s *ProductService) SetStockStatus(ctx context.Context, code string, status string) (models.Product, error) {
	var zero models.Product
	if status != models.StockStatusIn && status != models.StockStatusOut {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Trạng thái '%s' không hợp lệ", status), common.StatusBadRequest, nil)
	}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"stockStatus": status}}
	updated, err := s.UpdateOne(ctx, bson.M{"code": code}, update, nil)
	if err != nil && errors.Is(err, common.ErrNotFound) {
		return zero, common.ErrNotFound
	}
	return updated, err
}

// imageObjectPath đường dẫn ảnh sản phẩm trên object storage, giữ quy ước "OM/<code>.jpg" của dữ liệu gốc
func imageObjectPath(code string) string {
	return fmt.Sprintf("OM/%s.jpg", code)
}
