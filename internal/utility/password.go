package utility

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
// @params - mật khẩu dạng plaintext
// @returns - chuỗi hash và lỗi nếu có
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// ComparePassword so sánh mật khẩu plaintext với hash đã lưu
// @params - hash đã lưu và mật khẩu cần kiểm tra
// @returns - nil nếu khớp, lỗi bcrypt nếu không khớp
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
