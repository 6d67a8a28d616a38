// Package inventorysvc - test chọn bộ đếm theo nhóm hàng và dựng view tồn kho.
package inventorysvc

import (
	"testing"

	countermodels "winzen_admin/internal/api/counter/models"
	models "winzen_admin/internal/api/inventory/models"

	"github.com/stretchr/testify/assert"
)

func TestCounterNameFor(t *testing.T) {
	tests := []struct {
		family   string
		category string
		want     string
	}{
		{models.FamilyUtensils, "", countermodels.CounterUtensils},
		{models.FamilyUtensils, models.CategoryBread, countermodels.CounterUtensils},
		{models.FamilyIngredients, models.CategoryCurve, countermodels.CounterCurve},
		{models.FamilyIngredients, models.CategoryBread, countermodels.CounterBread},
		{models.FamilyIngredients, models.CategoryCookies, countermodels.CounterCookies},
		{models.FamilyIngredients, models.CategoryCakes, countermodels.CounterCakes},
		{models.FamilyExternal, models.CategoryBread, countermodels.CounterBread},
		{models.FamilyIngredients, "Unknown", ""},
		{models.FamilyIngredients, "", ""},
	}
	for _, tt := range tests {
		got := counterNameFor(tt.family, tt.category)
		assert.Equal(t, tt.want, got, "family=%s category=%s", tt.family, tt.category)
	}
}

func TestToStockView_Scalar(t *testing.T) {
	item := models.StockItem{
		Code:      "B1",
		Name:      "Baguette",
		Family:    models.FamilyIngredients,
		Category:  models.CategoryBread,
		Stocks:    3,
		UpdatedAt: 1700000000000,
	}
	view := toStockView(&item)

	assert.Equal(t, "B1", view.Code)
	assert.Equal(t, int64(3), view.Stocks)
	assert.Equal(t, int64(0), view.Whole)
	assert.Equal(t, int64(0), view.Slice)
	assert.Equal(t, models.StockStatusLow, view.Status)
}

func TestToStockView_Cake(t *testing.T) {
	item := models.StockItem{
		Code:      "CA2",
		Name:      "Tiramisu",
		Family:    models.FamilyIngredients,
		Category:  models.CategoryCakes,
		CakeStock: &models.CakeStock{Whole: 4, Slice: 32},
	}
	view := toStockView(&item)

	assert.Equal(t, int64(4), view.Whole)
	assert.Equal(t, int64(32), view.Slice)
	assert.Equal(t, models.StockStatusIn, view.Status)
}
