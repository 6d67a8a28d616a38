// Package authsvc - test tạo và parse JWT phiên đăng nhập.
package authsvc

import (
	"testing"
	"time"

	"winzen_admin/config"
	models "winzen_admin/internal/api/auth/models"
	"winzen_admin/internal/global"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTestConfig(t *testing.T, ttlSeconds int) {
	t.Helper()
	old := global.ServerConfig
	global.ServerConfig = &config.Configuration{
		JwtSecret: "test-secret",
		JwtTTL:    ttlSeconds,
	}
	t.Cleanup(func() { global.ServerConfig = old })
}

func TestGenerateToken_RoundTrip(t *testing.T) {
	withTestConfig(t, 3600)

	s := &StaffService{}
	staff := models.Staff{StaffCode: "SA1", Role: models.RoleSuperAdmin}

	tokenString, expiredAt, err := s.generateToken(staff)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "SA1", claims.StaffCode)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
	assert.Equal(t, "SA1", claims.Subject)

	// Hạn token tính theo JwtTTL (giây)
	wantExpiry := time.Now().Add(3600 * time.Second).UnixMilli()
	assert.InDelta(t, wantExpiry, expiredAt, 5000)
}

func TestGenerateToken_RejectedWithWrongSecret(t *testing.T) {
	withTestConfig(t, 3600)

	s := &StaffService{}
	tokenString, _, err := s.generateToken(models.Staff{StaffCode: "SA1", Role: models.RoleAdmin})
	require.NoError(t, err)

	claims := &models.JwtClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}

func TestGenerateToken_ExpiredTokenFailsParse(t *testing.T) {
	// TTL âm tạo token đã hết hạn ngay khi ký
	withTestConfig(t, -60)

	s := &StaffService{}
	tokenString, _, err := s.generateToken(models.Staff{StaffCode: "SA1", Role: models.RoleAdmin})
	require.NoError(t, err)

	claims := &models.JwtClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}
