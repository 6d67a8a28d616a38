package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category định nghĩa danh mục sản phẩm.
// Code dạng "category_<n>" được cấp từ bộ đếm tuần tự.
// ProductCount là số sản phẩm đang thuộc danh mục, duy trì bằng $inc khi thêm/xóa sản phẩm.
type Category struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Code         string             `json:"code" bson:"code" index:"unique"`
	Name         string             `json:"name" bson:"name" index:"unique"`
	ProductCount int64              `json:"productCount" bson:"productCount"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
