// Package models - model bộ đếm tuần tự (Counter) dùng để cấp mã định danh.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Counter định nghĩa bộ đếm tuần tự cho một họ định danh (sản phẩm, danh mục, nguyên liệu...)
// Value chỉ tăng qua thao tác $inc nguyên tử, không bao giờ đọc-rồi-ghi
type Counter struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" index:"unique"`
	Value     int64              `json:"value" bson:"value"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// Tên các bộ đếm của hệ thống, giữ nguyên key của dữ liệu gốc
const (
	CounterProducts   = "productCount"
	CounterCategories = "categoryCount"
	CounterCurve      = "curveCount"
	CounterBread      = "breadCount"
	CounterCookies    = "cookiesCount"
	CounterCakes      = "cakesCount"
	CounterUtensils   = "utilCount"
	CounterOrders     = "orderCount"
)
