// Package models - test codec và bất biến của Variation (tagged union).
package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestVariation_JSONRoundTrip_Drink(t *testing.T) {
	v := NewDrinkVariation(map[string]map[string]float64{
		"hot":  {"Small": 100, "Medium": 120},
		"iced": {"Medium": 130},
	})

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"temperature":{"hot":{"Small":100,"Medium":120},"iced":{"Medium":130}}}`, string(data))

	var decoded Variation
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Drink)
	assert.Nil(t, decoded.Pastry)
	assert.Equal(t, v.Drink.SizesByTemperature, decoded.Drink.SizesByTemperature)
}

func TestVariation_JSONRoundTrip_Pastry(t *testing.T) {
	v := NewPastryVariation(85)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"price":85}`, string(data))

	var decoded Variation
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.NotNil(t, decoded.Pastry)
	assert.Nil(t, decoded.Drink)
	assert.Equal(t, float64(85), decoded.Pastry.Price)
}

func TestVariation_UnmarshalJSON_SniffShape(t *testing.T) {
	// Price thắng khi cả hai cùng xuất hiện, giống logic đọc dữ liệu gốc
	var both Variation
	require.NoError(t, json.Unmarshal([]byte(`{"temperature":{"hot":{"Small":100}},"price":85}`), &both))
	assert.Nil(t, both.Drink)
	require.NotNil(t, both.Pastry)
	assert.Equal(t, float64(85), both.Pastry.Price)

	var empty Variation
	require.NoError(t, json.Unmarshal([]byte(`{}`), &empty))
	assert.True(t, empty.IsZero())

	var null Variation
	require.NoError(t, json.Unmarshal([]byte(`null`), &null))
	assert.True(t, null.IsZero())
}

func TestVariation_BSONRoundTrip(t *testing.T) {
	type doc struct {
		Variation Variation `bson:"variations"`
	}

	original := doc{Variation: NewDrinkVariation(map[string]map[string]float64{
		"iced": {"Large": 150},
	})}
	raw, err := bson.Marshal(original)
	require.NoError(t, err)

	var decoded doc
	require.NoError(t, bson.Unmarshal(raw, &decoded))
	require.NotNil(t, decoded.Variation.Drink)
	assert.Equal(t, float64(150), decoded.Variation.Drink.SizesByTemperature["iced"]["Large"])
}

func TestVariation_Validate(t *testing.T) {
	tests := []struct {
		name    string
		v       Variation
		wantErr bool
	}{
		{"drink hợp lệ", NewDrinkVariation(map[string]map[string]float64{"hot": {"Small": 100}}), false},
		{"pastry hợp lệ", NewPastryVariation(85), false},
		{"zero", Variation{}, true},
		{"cả hai dạng", Variation{Drink: &DrinkVariation{SizesByTemperature: map[string]map[string]float64{"hot": {"Small": 100}}}, Pastry: &PastryVariation{Price: 85}}, true},
		{"drink rỗng", NewDrinkVariation(map[string]map[string]float64{}), true},
		{"nhiệt độ lạ", NewDrinkVariation(map[string]map[string]float64{"warm": {"Small": 100}}), true},
		{"nhiệt độ hết size", NewDrinkVariation(map[string]map[string]float64{"hot": {}}), true},
		{"pastry giá 0", NewPastryVariation(0), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestVariation_FlattenTokens(t *testing.T) {
	drink := NewDrinkVariation(map[string]map[string]float64{"hot": {"Small": 100}})
	tokens := drink.FlattenTokens()
	assert.Contains(t, tokens, "Small")
	assert.Contains(t, tokens, "100")

	pastry := NewPastryVariation(85.5)
	assert.Equal(t, []string{"85.5"}, pastry.FlattenTokens())
}
