// Package models - Token, JwtClaims thuộc domain auth.
package models

import (
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// JwtClaims chứa data được mã hóa trong JWT token
type JwtClaims struct {
	StaffCode string `json:"staffCode"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// Token phiên đăng nhập đang hiệu lực của một nhân viên.
// Token bị xóa khi logout nên middleware có thể thu hồi phiên trước khi JWT hết hạn.
type Token struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	StaffCode string             `json:"staffCode" bson:"staffCode" index:"single"`
	JwtToken  string             `json:"jwtToken" bson:"jwtToken" index:"unique"`
	ExpiredAt int64              `json:"expiredAt" bson:"expiredAt"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
