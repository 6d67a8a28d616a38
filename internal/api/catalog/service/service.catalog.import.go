package catalogsvc

import (
	"context"
	"strconv"
	"strings"
	"time"

	catalogdto "winzen_admin/internal/api/catalog/dto"
	models "winzen_admin/internal/api/catalog/models"
	countermodels "winzen_admin/internal/api/counter/models"
	"winzen_admin/internal/common"
	"winzen_admin/internal/logger"

	"github.com/tidwall/gjson"
	"go.mongodb.org/mongo-driver/bson"
)

// ImportLegacyExport nhập một bản export JSON từ hệ thống cũ vào Mongo.
// Export cũ có dạng cây: "categories" chứa các node "category_<n>" với field
// "Name", "products" chứa các node "Product<n>" với biến thể hoặc là
// {temperature:{hot:{Small:100}}} hoặc là {price:85}. Field trong dữ liệu cũ
// viết hoa không nhất quán nên mọi lookup đều thử cả hai kiểu.
// Bản ghi đã tồn tại hoặc không đọc được đều bị bỏ qua và đếm vào Skipped.
func (s *ProductService) ImportLegacyExport(ctx context.Context, raw []byte) (*catalogdto.LegacyImportResult, error) {
	if !gjson.ValidBytes(raw) {
		return nil, common.ErrInvalidFormat
	}
	root := gjson.ParseBytes(raw)
	result := &catalogdto.LegacyImportResult{}

	maxCategoryN := s.importLegacyCategories(ctx, root.Get("categories"), result)
	maxProductN, perCategory := s.importLegacyProducts(ctx, root.Get("products"), result)

	for categoryName, count := range perCategory {
		if err := s.categoryService.AdjustProductCount(ctx, categoryName, count); err != nil {
			logger.GetAppLogger().WithError(err).WithField("category", categoryName).
				Warn("Không cập nhật được productCount của danh mục sau khi nhập dữ liệu cũ")
		}
	}

	if err := s.raiseCounterFromLegacy(ctx, countermodels.CounterCategories, root.Get("categoryCount"), maxCategoryN); err != nil {
		return nil, err
	}
	if err := s.raiseCounterFromLegacy(ctx, countermodels.CounterProducts, root.Get("productCount"), maxProductN); err != nil {
		return nil, err
	}

	logger.GetAppLogger().WithFields(map[string]interface{}{
		"categories": result.Categories,
		"products":   result.Products,
		"skipped":    result.Skipped,
	}).Info("Đã nhập xong dữ liệu export cũ")
	return result, nil
}

func (s *ProductService) importLegacyCategories(ctx context.Context, node gjson.Result, result *catalogdto.LegacyImportResult) int64 {
	var maxN int64
	node.ForEach(func(key, value gjson.Result) bool {
		code := key.String()
		maxN = maxInt64(maxN, legacyCodeNumber(code, "category_"))

		name := legacyField(value, "Name").String()
		if name == "" {
			result.Skipped++
			return true
		}

		exists, err := s.categoryService.DocumentExists(ctx, bson.M{"code": code})
		if err != nil || exists {
			result.Skipped++
			return true
		}

		now := time.Now().UnixMilli()
		_, err = s.categoryService.InsertOne(ctx, models.Category{
			Code:      code,
			Name:      name,
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			result.Skipped++
			return true
		}
		result.Categories++
		return true
	})
	return maxN
}

func (s *ProductService) importLegacyProducts(ctx context.Context, node gjson.Result, result *catalogdto.LegacyImportResult) (int64, map[string]int64) {
	var maxN int64
	perCategory := map[string]int64{}
	node.ForEach(func(key, value gjson.Result) bool {
		code := key.String()
		maxN = maxInt64(maxN, legacyCodeNumber(code, "Product"))

		product, ok := legacyProduct(code, value)
		if !ok {
			result.Skipped++
			return true
		}

		exists, err := s.DocumentExists(ctx, bson.M{"code": code})
		if err != nil || exists {
			result.Skipped++
			return true
		}

		if _, err := s.InsertOne(ctx, product); err != nil {
			result.Skipped++
			return true
		}
		result.Products++
		perCategory[product.CategoryName]++
		return true
	})
	return maxN, perCategory
}

// legacyProduct đọc một node sản phẩm của export cũ thành model đã định kiểu.
// Hình dạng biến thể được phân biệt bằng gjson: node có "price" là bánh,
// có "temperature" là đồ uống. Không có cả hai thì coi là hỏng.
func legacyProduct(code string, value gjson.Result) (models.Product, bool) {
	var zero models.Product

	name := legacyField(value, "Name").String()
	categoryName := legacyField(value, "Category").String()
	if name == "" || categoryName == "" {
		return zero, false
	}

	variations := legacyField(value, "Variations")
	variation, ok := legacyVariation(variations)
	if !ok {
		return zero, false
	}

	stockStatus := legacyField(value, "StockStatus").String()
	if stockStatus != models.StockStatusOut {
		stockStatus = models.StockStatusIn
	}

	now := time.Now().UnixMilli()
	return models.Product{
		Code:         code,
		Name:         name,
		Description:  legacyField(value, "Description").String(),
		CategoryName: categoryName,
		ImageURL:     legacyField(value, "ImageURL").String(),
		StockStatus:  stockStatus,
		Variation:    variation,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, true
}

func legacyVariation(node gjson.Result) (models.Variation, bool) {
	var zero models.Variation
	if !node.Exists() {
		return zero, false
	}

	if price := legacyField(node, "Price"); price.Exists() {
		v := models.NewPastryVariation(price.Float())
		if err := v.Validate(); err != nil {
			return zero, false
		}
		return v, true
	}

	temperature := legacyField(node, "Temperature")
	if !temperature.Exists() {
		return zero, false
	}
	sizesByTemperature := map[string]map[string]float64{}
	temperature.ForEach(func(temp, sizes gjson.Result) bool {
		sizePrices := map[string]float64{}
		sizes.ForEach(func(size, price gjson.Result) bool {
			sizePrices[size.String()] = price.Float()
			return true
		})
		if len(sizePrices) > 0 {
			sizesByTemperature[strings.ToLower(temp.String())] = sizePrices
		}
		return true
	})
	v := models.NewDrinkVariation(sizesByTemperature)
	if err := v.Validate(); err != nil {
		return zero, false
	}
	return v, true
}

// legacyField tìm field theo tên, thử nguyên bản, viết thường chữ đầu và
// viết hoa chữ đầu vì export cũ đặt tên không nhất quán
func legacyField(node gjson.Result, name string) gjson.Result {
	if v := node.Get(name); v.Exists() {
		return v
	}
	lower := strings.ToLower(name[:1]) + name[1:]
	if v := node.Get(lower); v.Exists() {
		return v
	}
	upper := strings.ToUpper(name[:1]) + name[1:]
	return node.Get(upper)
}

// legacyCodeNumber tách phần số trong mã cũ, ví dụ "Product12" -> 12
func legacyCodeNumber(code string, prefix string) int64 {
	if !strings.HasPrefix(code, prefix) {
		return 0
	}
	n, err := strconv.ParseInt(strings.TrimPrefix(code, prefix), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// raiseCounterFromLegacy nâng bộ đếm lên giá trị lớn nhất giữa counter trong
// export (dạng số trần hoặc {value: n} tùy màn hình cũ ghi ra) và suffix số
// lớn nhất quan sát được trong mã đã nhập
func (s *ProductService) raiseCounterFromLegacy(ctx context.Context, name string, node gjson.Result, observedMax int64) error {
	target := observedMax
	if node.Exists() {
		if v := node.Get("value"); v.Exists() {
			target = maxInt64(target, v.Int())
		} else {
			target = maxInt64(target, node.Int())
		}
	}
	if target <= 0 {
		return nil
	}
	return s.counterService.RaiseTo(ctx, name, target)
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}
