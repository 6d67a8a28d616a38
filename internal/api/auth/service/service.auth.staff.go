// Package authsvc - service nhân viên và phiên đăng nhập.
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"time"

	authdto "winzen_admin/internal/api/auth/dto"
	models "winzen_admin/internal/api/auth/models"
	basesvc "winzen_admin/internal/api/base/service"
	"winzen_admin/internal/common"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"
	"winzen_admin/internal/utility"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
)

// StaffService là cấu trúc chứa các phương thức liên quan đến nhân viên
type StaffService struct {
	*basesvc.BaseServiceMongoImpl[models.Staff]
	tokenService *basesvc.BaseServiceMongoImpl[models.Token]
}

// NewStaffService tạo mới StaffService
func NewStaffService() (*StaffService, error) {
	staffCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Staffs)
	if !exist {
		return nil, fmt.Errorf("failed to get staffs collection: %v", common.ErrNotFound)
	}
	tokenCollection, exist := global.RegistryCollections.Get(global.MongoDB_CollectionNames.Tokens)
	if !exist {
		return nil, fmt.Errorf("failed to get tokens collection: %v", common.ErrNotFound)
	}
	return &StaffService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Staff](staffCollection),
		tokenService:         basesvc.NewBaseServiceMongo[models.Token](tokenCollection),
	}, nil
}

// CreateStaff tạo nhân viên mới với mật khẩu đã hash bằng bcrypt.
// Mật khẩu gốc không bao giờ được lưu xuống database.
func (s *StaffService) CreateStaff(ctx context.Context, input *authdto.StaffCreateInput) (models.Staff, error) {
	var zero models.Staff

	exists, err := s.DocumentExists(ctx, bson.M{"staffCode": input.StaffCode})
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, common.NewError(common.ErrCodeValidationInput, fmt.Sprintf("Mã nhân viên '%s' đã tồn tại", input.StaffCode), common.StatusConflict, nil)
	}

	hash, err := utility.HashPassword(input.Password)
	if err != nil {
		return zero, common.NewError(common.ErrCodeInternalServer, "Lỗi mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	staff := models.Staff{
		StaffCode:    input.StaffCode,
		Name:         input.Name,
		Email:        input.Email,
		Age:          input.Age,
		Phone:        input.Phone,
		Birthday:     input.Birthday,
		PasswordHash: hash,
		Role:         input.Role,
	}
	return s.InsertOne(ctx, staff)
}

// Login xác thực nhân viên bằng staffCode + mật khẩu.
// Chỉ Admin và Super Admin được cấp phiên cho trang quản trị, Cashier bị từ chối.
// Token phiên là JWT ký HS256, đồng thời lưu vào collection tokens để có thể thu hồi.
func (s *StaffService) Login(ctx context.Context, input *authdto.StaffLoginInput) (*authdto.StaffLoginResult, error) {
	staff, err := s.FindOne(ctx, bson.M{"staffCode": input.StaffCode}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			// Không phân biệt sai mã với sai mật khẩu để tránh dò tài khoản
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := utility.ComparePassword(staff.PasswordHash, input.Password); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if staff.Role != models.RoleAdmin && staff.Role != models.RoleSuperAdmin {
		return nil, common.ErrRoleNotAllowed
	}

	tokenString, expiredAt, err := s.generateToken(staff)
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Lỗi tạo token phiên đăng nhập", common.StatusInternalServerError, err)
	}

	_, err = s.tokenService.InsertOne(ctx, models.Token{
		StaffCode: staff.StaffCode,
		JwtToken:  tokenString,
		ExpiredAt: expiredAt,
	})
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(logrus.Fields{
		"staffCode": staff.StaffCode,
		"role":      staff.Role,
	}).Info("Đăng nhập thành công")

	staff.PasswordHash = ""
	return &authdto.StaffLoginResult{Staff: staff, Token: tokenString}, nil
}

// Logout thu hồi phiên đăng nhập hiện tại (xóa token khỏi collection tokens)
func (s *StaffService) Logout(ctx context.Context, tokenString string) error {
	err := s.tokenService.DeleteOne(ctx, bson.M{"jwtToken": tokenString})
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	return err
}

// ChangePassword đổi mật khẩu sau khi xác nhận mật khẩu cũ.
// Thu hồi toàn bộ phiên đang mở của nhân viên sau khi đổi.
func (s *StaffService) ChangePassword(ctx context.Context, staffCode string, input *authdto.StaffChangePasswordInput) error {
	staff, err := s.FindOne(ctx, bson.M{"staffCode": staffCode}, nil)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(staff.PasswordHash, input.OldPassword); err != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := utility.HashPassword(input.NewPassword)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Lỗi mã hóa mật khẩu", common.StatusInternalServerError, err)
	}

	update := &basesvc.UpdateData{Set: map[string]interface{}{"passwordHash": hash}}
	if _, err := s.UpdateById(ctx, staff.ID, update); err != nil {
		return err
	}

	if _, err := s.tokenService.DeleteMany(ctx, bson.M{"staffCode": staffCode}); err != nil {
		logger.GetErrorLogger().WithError(err).Warn("ChangePassword: không thu hồi được các phiên cũ")
	}
	return nil
}

// VerifyToken parse và xác thực JWT, đồng thời kiểm tra token còn trong collection tokens.
// Trả về nhân viên sở hữu phiên.
func (s *StaffService) VerifyToken(ctx context.Context, tokenString string) (models.Staff, error) {
	var zero models.Staff

	claims := &models.JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(global.ServerConfig.JwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return zero, common.ErrTokenExpired
		}
		return zero, common.ErrTokenInvalid
	}
	if !token.Valid {
		return zero, common.ErrTokenInvalid
	}

	// Token phải còn trong collection tokens (chưa bị logout thu hồi)
	exists, err := s.tokenService.DocumentExists(ctx, bson.M{"jwtToken": tokenString})
	if err != nil {
		return zero, err
	}
	if !exists {
		return zero, common.ErrTokenInvalid
	}

	staff, err := s.FindOne(ctx, bson.M{"staffCode": claims.StaffCode}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return zero, common.ErrStaffNotFound
		}
		return zero, err
	}
	return staff, nil
}

// generateToken tạo JWT ký HS256 với hạn từ cấu hình JwtTTL (giây)
func (s *StaffService) generateToken(staff models.Staff) (string, int64, error) {
	now := time.Now()
	expiredAt := now.Add(time.Duration(global.ServerConfig.JwtTTL) * time.Second)

	claims := models.JwtClaims{
		StaffCode: staff.StaffCode,
		Role:      staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.StaffCode,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiredAt),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(global.ServerConfig.JwtSecret))
	if err != nil {
		return "", 0, err
	}
	return tokenString, expiredAt.UnixMilli(), nil
}
