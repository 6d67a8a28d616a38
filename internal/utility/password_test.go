package utility

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("Matkhau@123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "Matkhau@123", hash, "mật khẩu gốc không bao giờ được lưu trần")

	assert.NoError(t, ComparePassword(hash, "Matkhau@123"))
	assert.Error(t, ComparePassword(hash, "saimatkhau"))
}

func TestHashPassword_SaltedPerCall(t *testing.T) {
	first, err := HashPassword("Matkhau@123")
	require.NoError(t, err)
	second, err := HashPassword("Matkhau@123")
	require.NoError(t, err)
	assert.NotEqual(t, first, second, "bcrypt salt khác nhau mỗi lần hash")
}
