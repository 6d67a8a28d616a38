// Package catalogsvc - test đọc dữ liệu export cũ (các hàm thuần, không chạm Mongo).
package catalogsvc

import (
	"testing"

	models "winzen_admin/internal/api/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestLegacyField_TriesBothCasings(t *testing.T) {
	node := gjson.Parse(`{"Name":"Latte","category":"Coffee","description":"ngon"}`)

	assert.Equal(t, "Latte", legacyField(node, "Name").String())
	assert.Equal(t, "Coffee", legacyField(node, "Category").String())
	assert.Equal(t, "ngon", legacyField(node, "Description").String())
	assert.False(t, legacyField(node, "ImageURL").Exists())
}

func TestLegacyCodeNumber(t *testing.T) {
	assert.Equal(t, int64(12), legacyCodeNumber("Product12", "Product"))
	assert.Equal(t, int64(3), legacyCodeNumber("category_3", "category_"))
	assert.Equal(t, int64(0), legacyCodeNumber("Order_5", "Product"))
	assert.Equal(t, int64(0), legacyCodeNumber("Productabc", "Product"))
	assert.Equal(t, int64(0), legacyCodeNumber("Product", "Product"))
}

func TestLegacyVariation_Pastry(t *testing.T) {
	v, ok := legacyVariation(gjson.Parse(`{"price":85}`))
	require.True(t, ok)
	require.NotNil(t, v.Pastry)
	assert.Equal(t, float64(85), v.Pastry.Price)
}

func TestLegacyVariation_Drink_NormalizesTemperature(t *testing.T) {
	v, ok := legacyVariation(gjson.Parse(`{"temperature":{"Hot":{"Small":100},"iced":{"Medium":130}}}`))
	require.True(t, ok)
	require.NotNil(t, v.Drink)
	assert.Equal(t, float64(100), v.Drink.SizesByTemperature["hot"]["Small"])
	assert.Equal(t, float64(130), v.Drink.SizesByTemperature["iced"]["Medium"])
}

func TestLegacyVariation_Invalid(t *testing.T) {
	cases := map[string]string{
		"thiếu cả hai dạng": `{"foo":1}`,
		"giá 0":             `{"price":0}`,
		"temperature rỗng":  `{"temperature":{}}`,
		"nhiệt độ lạ":       `{"temperature":{"warm":{"Small":100}}}`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, ok := legacyVariation(gjson.Parse(raw))
			assert.False(t, ok)
		})
	}

	_, ok := legacyVariation(gjson.Parse(`{}`).Get("variations"))
	assert.False(t, ok, "node không tồn tại phải bị từ chối")
}

func TestLegacyProduct(t *testing.T) {
	node := gjson.Parse(`{
		"Category": "Pastry",
		"Name": "Croissant",
		"Description": "bơ Pháp",
		"Variations": {"price": 85},
		"imageURL": "https://example.com/p2.jpg",
		"stockStatus": "Out of Stock"
	}`)

	p, ok := legacyProduct("Product2", node)
	require.True(t, ok)
	assert.Equal(t, "Product2", p.Code)
	assert.Equal(t, "Croissant", p.Name)
	assert.Equal(t, "Pastry", p.CategoryName)
	assert.Equal(t, "https://example.com/p2.jpg", p.ImageURL)
	assert.Equal(t, models.StockStatusOut, p.StockStatus)
	require.NotNil(t, p.Variation.Pastry)
}

func TestLegacyProduct_DefaultsToInStock(t *testing.T) {
	node := gjson.Parse(`{"Name":"Latte","Category":"Coffee","Variations":{"temperature":{"hot":{"Small":100}}}}`)
	p, ok := legacyProduct("Product1", node)
	require.True(t, ok)
	assert.Equal(t, models.StockStatusIn, p.StockStatus)
}

func TestLegacyProduct_RejectsMissingFields(t *testing.T) {
	_, ok := legacyProduct("Product1", gjson.Parse(`{"Category":"Coffee","Variations":{"price":85}}`))
	assert.False(t, ok, "thiếu tên phải bị bỏ qua")

	_, ok = legacyProduct("Product1", gjson.Parse(`{"Name":"Latte","Variations":{"price":85}}`))
	assert.False(t, ok, "thiếu danh mục phải bị bỏ qua")

	_, ok = legacyProduct("Product1", gjson.Parse(`{"Name":"Latte","Category":"Coffee"}`))
	assert.False(t, ok, "thiếu biến thể phải bị bỏ qua")
}
