package catalogsvc

import (
	"sort"
	"strings"

	models "winzen_admin/internal/api/catalog/models"

	"github.com/samber/lo"
)

// Các chế độ sắp xếp danh sách sản phẩm
const (
	SortCodeAsc  = "code_asc"
	SortCodeDesc = "code_desc"
	SortNameAsc  = "name_asc"
	SortNameDesc = "name_desc"
)

// FilterProducts là hàm thuần lọc và sắp xếp danh sách sản phẩm trong bộ nhớ.
// Matching là substring không phân biệt hoa thường trên name, code, categoryName
// và các token size/giá đã flatten từ biến thể (vd: "sm" khớp size "Small",
// "85" khớp bánh giá 85). Category rỗng nghĩa là mọi danh mục.
func FilterProducts(products []models.Product, query string, category string, sortMode string) []models.Product {
	filtered := lo.Filter(products, func(p models.Product, _ int) bool {
		if category != "" && p.CategoryName != category {
			return false
		}
		return productMatches(p, query)
	})
	sortProducts(filtered, sortMode)
	return filtered
}

func productMatches(p models.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Code), q) ||
		strings.Contains(strings.ToLower(p.CategoryName), q) {
		return true
	}
	return lo.SomeBy(p.Variation.FlattenTokens(), func(token string) bool {
		return strings.Contains(strings.ToLower(token), q)
	})
}

func sortProducts(products []models.Product, sortMode string) {
	switch sortMode {
	case SortCodeDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return compareFold(products[i].Code, products[j].Code) > 0
		})
	case SortNameAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return compareFold(products[i].Name, products[j].Name) < 0
		})
	case SortNameDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return compareFold(products[i].Name, products[j].Name) > 0
		})
	default: // SortCodeAsc
		sort.SliceStable(products, func(i, j int) bool {
			return compareFold(products[i].Code, products[j].Code) < 0
		})
	}
}

// compareFold so sánh chuỗi không phân biệt hoa thường
func compareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
