// Package models - test phân loại trạng thái tồn kho và quy đổi bánh nguyên/lát.
package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func cake(whole int64) StockItem {
	return StockItem{
		Code:      "CA1",
		Name:      "Tiramisu",
		Family:    FamilyIngredients,
		Category:  CategoryCakes,
		CakeStock: &CakeStock{Whole: whole, Slice: whole * SliceFactor},
	}
}

func scalar(stocks int64) StockItem {
	return StockItem{
		Code:     "B1",
		Name:     "Baguette",
		Family:   FamilyIngredients,
		Category: CategoryBread,
		Stocks:   stocks,
	}
}

func TestStockItem_Quantity(t *testing.T) {
	c := cake(3)
	assert.Equal(t, int64(3), c.Quantity())

	s := scalar(7)
	assert.Equal(t, int64(7), s.Quantity())

	// Cakes chưa có CakeStock rơi về Stocks
	broken := StockItem{Category: CategoryCakes, Stocks: 4}
	assert.Equal(t, int64(4), broken.Quantity())
}

func TestStockItem_Status_Cakes(t *testing.T) {
	tests := []struct {
		whole int64
		want  string
	}{
		{0, StockStatusOut},
		{1, StockStatusLow},
		{2, StockStatusLow},
		{3, StockStatusIn},
		{10, StockStatusIn},
	}
	for _, tt := range tests {
		c := cake(tt.whole)
		assert.Equal(t, tt.want, c.Status(), "whole=%d", tt.whole)
	}
}

func TestStockItem_Status_Scalar(t *testing.T) {
	tests := []struct {
		stocks int64
		want   string
	}{
		{0, StockStatusOut},
		{1, StockStatusLow},
		{5, StockStatusLow},
		{6, StockStatusIn},
		{100, StockStatusIn},
	}
	for _, tt := range tests {
		s := scalar(tt.stocks)
		assert.Equal(t, tt.want, s.Status(), "stocks=%d", tt.stocks)
	}
}

func TestStockItem_IsCake(t *testing.T) {
	c := cake(1)
	assert.True(t, c.IsCake())

	for _, category := range []string{CategoryCurve, CategoryBread, CategoryCookies, ""} {
		item := StockItem{Category: category}
		assert.False(t, item.IsCake(), "category=%q", category)
	}
}

func TestCakeStock_SliceInvariant(t *testing.T) {
	// Slice luôn bằng Whole * SliceFactor sau mỗi lần khởi tạo
	for whole := int64(0); whole <= 5; whole++ {
		c := cake(whole)
		assert.Equal(t, c.CakeStock.Whole*SliceFactor, c.CakeStock.Slice)
	}
}
