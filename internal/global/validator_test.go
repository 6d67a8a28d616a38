package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noXSSInput struct {
	Name string `validate:"no_xss"`
}

type passwordInput struct {
	Password string `validate:"strong_password"`
}

type temperatureInput struct {
	Temperature string `validate:"temperature"`
}

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	require.NoError(t, Validate.Struct(noXSSInput{Name: "Cà phê sữa đá"}))
	assert.Error(t, Validate.Struct(noXSSInput{Name: "<script>alert(1)</script>"}))
	assert.Error(t, Validate.Struct(noXSSInput{Name: "javascript:void(0)"}))
	assert.Error(t, Validate.Struct(noXSSInput{Name: "x onerror=alert(1)"}))
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	// Đạt ít nhất 3 trong 4 nhóm ký tự, tối thiểu 8 ký tự
	require.NoError(t, Validate.Struct(passwordInput{Password: "Matkhau123"}))
	require.NoError(t, Validate.Struct(passwordInput{Password: "matkhau@1"}))

	assert.Error(t, Validate.Struct(passwordInput{Password: "Ngan1@"}), "quá ngắn")
	assert.Error(t, Validate.Struct(passwordInput{Password: "matkhaudai"}), "chỉ một nhóm ký tự")
	assert.Error(t, Validate.Struct(passwordInput{Password: "matkhau123"}), "chỉ hai nhóm ký tự")
}

func TestValidateTemperature(t *testing.T) {
	InitValidator()

	require.NoError(t, Validate.Struct(temperatureInput{Temperature: "hot"}))
	require.NoError(t, Validate.Struct(temperatureInput{Temperature: "Iced"}))
	assert.Error(t, Validate.Struct(temperatureInput{Temperature: "warm"}))
	assert.Error(t, Validate.Struct(temperatureInput{Temperature: ""}))
}
