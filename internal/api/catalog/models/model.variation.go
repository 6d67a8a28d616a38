// Package models - model danh mục, sản phẩm và biến thể thuộc domain catalog.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"winzen_admin/internal/common"

	"go.mongodb.org/mongo-driver/bson"
)

// Các nhiệt độ hợp lệ của biến thể đồ uống
const (
	TemperatureHot  = "hot"
	TemperatureIced = "iced"
)

// DrinkVariation biến thể đồ uống: giá theo nhiệt độ rồi theo size.
// Ví dụ: {"hot": {"Small": 100, "Medium": 120}, "iced": {"Medium": 130}}
type DrinkVariation struct {
	SizesByTemperature map[string]map[string]float64
}

// PastryVariation biến thể bánh: một giá duy nhất
type PastryVariation struct {
	Price float64
}

// Variation là tagged union của hai dạng biến thể sản phẩm.
// Đúng một trong hai con trỏ khác nil. Wire format giữ nguyên shape của
// dữ liệu gốc: {"temperature": {...}} cho đồ uống, {"price": ...} cho bánh.
type Variation struct {
	Drink  *DrinkVariation
	Pastry *PastryVariation
}

// NewDrinkVariation tạo biến thể đồ uống
func NewDrinkVariation(sizesByTemperature map[string]map[string]float64) Variation {
	return Variation{Drink: &DrinkVariation{SizesByTemperature: sizesByTemperature}}
}

// NewPastryVariation tạo biến thể bánh với giá cố định
func NewPastryVariation(price float64) Variation {
	return Variation{Pastry: &PastryVariation{Price: price}}
}

// IsZero trả về true nếu variation chưa được set dạng nào
func (v Variation) IsZero() bool {
	return v.Drink == nil && v.Pastry == nil
}

// Validate kiểm tra các bất biến của biến thể:
// phải có đúng một dạng, có ít nhất một mức giá, nhiệt độ chỉ nhận hot/iced,
// tối đa hai nhiệt độ và mỗi nhiệt độ phải còn ít nhất một size.
func (v Variation) Validate() error {
	switch {
	case v.Drink != nil && v.Pastry != nil:
		return common.NewError(common.ErrCodeValidationInput, "Biến thể không được vừa là đồ uống vừa là bánh", common.StatusBadRequest, nil)
	case v.Drink != nil:
		if len(v.Drink.SizesByTemperature) == 0 {
			return common.ErrNoVariation
		}
		if len(v.Drink.SizesByTemperature) > 2 {
			return common.NewError(common.ErrCodeValidationInput, "Biến thể đồ uống chỉ có tối đa hai nhiệt độ", common.StatusBadRequest, nil)
		}
		for temp, sizes := range v.Drink.SizesByTemperature {
			if temp != TemperatureHot && temp != TemperatureIced {
				return common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Nhiệt độ '%s' không hợp lệ, chỉ nhận hot hoặc iced", temp), common.StatusBadRequest, nil)
			}
			if len(sizes) == 0 {
				return common.ErrLastSize
			}
		}
		return nil
	case v.Pastry != nil:
		if v.Pastry.Price <= 0 {
			return common.ErrNoVariation
		}
		return nil
	default:
		return common.ErrNoVariation
	}
}

// FlattenTokens trả về các token size và giá của biến thể, phục vụ tìm kiếm text.
// Đồ uống: tên size và giá của từng size. Bánh: giá.
func (v Variation) FlattenTokens() []string {
	var tokens []string
	switch {
	case v.Drink != nil:
		for _, sizes := range v.Drink.SizesByTemperature {
			for size, price := range sizes {
				tokens = append(tokens, size, formatPrice(price))
			}
		}
	case v.Pastry != nil:
		tokens = append(tokens, formatPrice(v.Pastry.Price))
	}
	return tokens
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}

// variationWire là shape trung gian để marshal/unmarshal theo format gốc
type variationWire struct {
	Temperature map[string]map[string]float64 `json:"temperature,omitempty" bson:"temperature,omitempty"`
	Price       *float64                      `json:"price,omitempty" bson:"price,omitempty"`
}

func (v Variation) toWire() variationWire {
	var wire variationWire
	if v.Drink != nil {
		wire.Temperature = v.Drink.SizesByTemperature
	}
	if v.Pastry != nil {
		price := v.Pastry.Price
		wire.Price = &price
	}
	return wire
}

func (v *Variation) fromWire(wire variationWire) error {
	// Sniff shape: price thắng khi cả hai cùng xuất hiện, giống logic đọc dữ liệu gốc
	switch {
	case wire.Price != nil:
		v.Drink = nil
		v.Pastry = &PastryVariation{Price: *wire.Price}
	case wire.Temperature != nil:
		v.Pastry = nil
		v.Drink = &DrinkVariation{SizesByTemperature: wire.Temperature}
	default:
		v.Drink = nil
		v.Pastry = nil
	}
	return nil
}

// MarshalJSON giữ wire format gốc của variation
func (v Variation) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.toWire())
}

// UnmarshalJSON sniff shape từ wire format gốc
func (v *Variation) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		v.Drink = nil
		v.Pastry = nil
		return nil
	}
	var wire variationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	return v.fromWire(wire)
}

// MarshalBSON giữ wire format gốc khi lưu xuống MongoDB
func (v Variation) MarshalBSON() ([]byte, error) {
	return bson.Marshal(v.toWire())
}

// UnmarshalBSON sniff shape từ document MongoDB
func (v *Variation) UnmarshalBSON(data []byte) error {
	var wire variationWire
	if err := bson.Unmarshal(data, &wire); err != nil {
		return err
	}
	return v.fromWire(wire)
}
