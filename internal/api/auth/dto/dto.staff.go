// Package authdto - các DTO của domain auth.
package authdto

import (
	models "winzen_admin/internal/api/auth/models"
)

// StaffCreateInput đầu vào khi tạo nhân viên mới
type StaffCreateInput struct {
	StaffCode string          `json:"staffCode" validate:"required,no_xss"`
	Name      string          `json:"name" validate:"required,no_xss"`
	Email     string          `json:"email,omitempty" validate:"omitempty,email"`
	Age       int             `json:"age,omitempty" validate:"omitempty,gte=15,lte=100"`
	Phone     string          `json:"phone,omitempty"`
	Birthday  models.Birthday `json:"birthday"`
	Password  string          `json:"password" validate:"required,strong_password"`
	Role      string          `json:"role" validate:"required,oneof='Super Admin' 'Admin' 'Cashier'"`
}

// StaffUpdateInput đầu vào khi cập nhật thông tin nhân viên.
// Không nhận password, đổi mật khẩu đi qua endpoint riêng.
type StaffUpdateInput struct {
	Name     string          `json:"name,omitempty" validate:"omitempty,no_xss"`
	Email    string          `json:"email,omitempty" validate:"omitempty,email"`
	Age      int             `json:"age,omitempty" validate:"omitempty,gte=15,lte=100"`
	Phone    string          `json:"phone,omitempty"`
	Birthday models.Birthday `json:"birthday,omitempty"`
	Role     string          `json:"role,omitempty" validate:"omitempty,oneof='Super Admin' 'Admin' 'Cashier'"`
}

// StaffLoginInput đầu vào khi đăng nhập
type StaffLoginInput struct {
	StaffCode string `json:"staffCode" validate:"required"`
	Password  string `json:"password" validate:"required"`
}

// StaffLoginResult kết quả đăng nhập trả về cho client
type StaffLoginResult struct {
	Staff models.Staff `json:"staff"`
	Token string       `json:"token"`
}

// StaffChangePasswordInput đầu vào khi đổi mật khẩu
type StaffChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
