// Package countersvc - test format mã định danh và bảng prefix.
package countersvc

import (
	"testing"

	models "winzen_admin/internal/api/counter/models"

	"github.com/stretchr/testify/assert"
)

func TestFormatID(t *testing.T) {
	assert.Equal(t, "Product7", FormatID("Product", 7))
	assert.Equal(t, "category_3", FormatID("category_", 3))
	assert.Equal(t, "Order_120", FormatID("Order_", 120))
	assert.Equal(t, "util1", FormatID("util", 1))
}

func TestPrefixFor(t *testing.T) {
	// Prefix giữ nguyên quy ước mã của dữ liệu gốc
	assert.Equal(t, "Product", PrefixFor(models.CounterProducts))
	assert.Equal(t, "category_", PrefixFor(models.CounterCategories))
	assert.Equal(t, "CR", PrefixFor(models.CounterCurve))
	assert.Equal(t, "B", PrefixFor(models.CounterBread))
	assert.Equal(t, "CO", PrefixFor(models.CounterCookies))
	assert.Equal(t, "CA", PrefixFor(models.CounterCakes))
	assert.Equal(t, "util", PrefixFor(models.CounterUtensils))
	assert.Equal(t, "Order_", PrefixFor(models.CounterOrders))
}

func TestPrefixFor_UnknownCounter(t *testing.T) {
	assert.Equal(t, "", PrefixFor("unknownCount"))
}
