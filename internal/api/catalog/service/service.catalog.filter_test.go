// Package catalogsvc - test lọc và sắp xếp sản phẩm trong bộ nhớ.
package catalogsvc

import (
	"testing"

	models "winzen_admin/internal/api/catalog/models"

	"github.com/stretchr/testify/assert"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{
			Code:         "Product1",
			Name:         "Latte",
			CategoryName: "Coffee",
			Variation: models.NewDrinkVariation(map[string]map[string]float64{
				"hot":  {"Small": 100, "Medium": 120},
				"iced": {"Medium": 130},
			}),
		},
		{
			Code:         "Product2",
			Name:         "Croissant",
			CategoryName: "Pastry",
			Variation:    models.NewPastryVariation(85),
		},
		{
			Code:         "Product3",
			Name:         "americano",
			CategoryName: "Coffee",
			Variation: models.NewDrinkVariation(map[string]map[string]float64{
				"iced": {"Large": 90},
			}),
		},
	}
}

func codes(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Code)
	}
	return out
}

func TestFilterProducts_QueryMatchesName(t *testing.T) {
	got := FilterProducts(sampleProducts(), "latte", "", SortCodeAsc)
	assert.Equal(t, []string{"Product1"}, codes(got))
}

func TestFilterProducts_QueryMatchesSizeToken(t *testing.T) {
	// "sm" khớp size "Small" qua token đã flatten từ biến thể
	got := FilterProducts(sampleProducts(), "sm", "", SortCodeAsc)
	assert.Equal(t, []string{"Product1"}, codes(got))
}

func TestFilterProducts_QueryMatchesPastryPrice(t *testing.T) {
	// "85" khớp giá bánh 85
	got := FilterProducts(sampleProducts(), "85", "", SortCodeAsc)
	assert.Equal(t, []string{"Product2"}, codes(got))
}

func TestFilterProducts_CategoryNarrows(t *testing.T) {
	got := FilterProducts(sampleProducts(), "", "Coffee", SortCodeAsc)
	assert.Equal(t, []string{"Product1", "Product3"}, codes(got))

	// Query và category kết hợp theo AND
	got = FilterProducts(sampleProducts(), "85", "Coffee", SortCodeAsc)
	assert.Empty(t, got)
}

func TestFilterProducts_EmptyQueryReturnsAll(t *testing.T) {
	got := FilterProducts(sampleProducts(), "", "", SortCodeAsc)
	assert.Len(t, got, 3)
}

func TestFilterProducts_SortModes(t *testing.T) {
	products := sampleProducts()

	got := FilterProducts(products, "", "", SortCodeDesc)
	assert.Equal(t, []string{"Product3", "Product2", "Product1"}, codes(got))

	// Sắp theo tên không phân biệt hoa thường: "americano" đứng trước "Croissant"
	got = FilterProducts(products, "", "", SortNameAsc)
	assert.Equal(t, []string{"Product3", "Product2", "Product1"}, codes(got))

	got = FilterProducts(products, "", "", SortNameDesc)
	assert.Equal(t, []string{"Product1", "Product2", "Product3"}, codes(got))

	// Chế độ không hợp lệ rơi về code tăng dần
	got = FilterProducts(products, "", "", "bogus")
	assert.Equal(t, []string{"Product1", "Product2", "Product3"}, codes(got))
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := sampleProducts()
	FilterProducts(products, "", "", SortCodeDesc)
	assert.Equal(t, "Product1", products[0].Code)
}
