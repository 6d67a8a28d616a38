// Package models - model nhân viên (Staff) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các vai trò nhân viên của hệ thống
const (
	RoleSuperAdmin = "Super Admin"
	RoleAdmin      = "Admin"
	RoleCashier    = "Cashier"
)

// Birthday ngày sinh của nhân viên, giữ cấu trúc ba trường của dữ liệu gốc
type Birthday struct {
	Date  int `json:"date" bson:"date"`
	Month int `json:"month" bson:"month"`
	Year  int `json:"year" bson:"year"`
}

// Staff định nghĩa mô hình nhân viên.
// StaffCode là mã đăng nhập dạng người đọc được (vd: SA1, C2).
// PasswordHash là bcrypt hash, không bao giờ trả về cho client.
type Staff struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StaffCode    string             `json:"staffCode" bson:"staffCode" index:"unique"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	Age          int                `json:"age,omitempty" bson:"age,omitempty"`
	Phone        string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Birthday     Birthday           `json:"birthday" bson:"birthday"`
	PasswordHash string             `json:"-" bson:"passwordHash"`
	Role         string             `json:"role" bson:"role" index:"single"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
