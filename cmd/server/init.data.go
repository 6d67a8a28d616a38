package main

import (
	"context"
	"time"

	authdto "winzen_admin/internal/api/auth/dto"
	authmodels "winzen_admin/internal/api/auth/models"
	authsvc "winzen_admin/internal/api/auth/service"
	countermodels "winzen_admin/internal/api/counter/models"
	countersvc "winzen_admin/internal/api/counter/service"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData khởi tạo dữ liệu mặc định khi chạy với INITMODE=true:
// tài khoản Super Admin gốc và các bộ đếm cấp mã định danh.
func InitDefaultData() {
	log := logger.GetAppLogger()

	if !global.ServerConfig.InitMode {
		log.Info("InitMode disabled, skipping default data initialization")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initRootStaff(ctx)
	initCounters(ctx)

	log.Info("Default data initialized")
}

// initRootStaff tạo tài khoản Super Admin gốc nếu chưa tồn tại.
// Mật khẩu lấy từ ROOT_PASSWORD, bắt buộc phải có khi chạy INITMODE lần đầu.
func initRootStaff(ctx context.Context) {
	log := logger.GetAppLogger()
	cfg := global.ServerConfig

	staffService, err := authsvc.NewStaffService()
	if err != nil {
		log.Fatalf("Failed to create staff service: %v", err)
	}

	exists, err := staffService.DocumentExists(ctx, bson.M{"staffCode": cfg.RootStaffCode})
	if err != nil {
		log.Fatalf("Failed to check root staff: %v", err)
	}
	if exists {
		log.Infof("Root staff %s already exists", cfg.RootStaffCode)
		return
	}

	if cfg.RootPassword == "" {
		log.Warn("ROOT_PASSWORD chưa được cấu hình, bỏ qua tạo tài khoản Super Admin gốc")
		return
	}

	_, err = staffService.CreateStaff(ctx, &authdto.StaffCreateInput{
		StaffCode: cfg.RootStaffCode,
		Name:      "Super Admin",
		Password:  cfg.RootPassword,
		Role:      authmodels.RoleSuperAdmin,
	})
	if err != nil {
		log.Fatalf("Failed to create root staff: %v", err)
	}
	log.Infof("Root staff %s created successfully", cfg.RootStaffCode)
}

// initCounters đảm bảo các bộ đếm cấp mã tồn tại với giá trị tối thiểu 0.
// RaiseTo không bao giờ hạ giá trị nên an toàn khi chạy lại trên dữ liệu cũ.
func initCounters(ctx context.Context) {
	log := logger.GetAppLogger()

	counterService, err := countersvc.NewCounterService()
	if err != nil {
		log.Fatalf("Failed to create counter service: %v", err)
	}

	counterNames := []string{
		countermodels.CounterProducts,
		countermodels.CounterCategories,
		countermodels.CounterCurve,
		countermodels.CounterBread,
		countermodels.CounterCookies,
		countermodels.CounterCakes,
		countermodels.CounterUtensils,
		countermodels.CounterOrders,
	}
	for _, name := range counterNames {
		if err := counterService.RaiseTo(ctx, name, 0); err != nil {
			log.Warnf("Failed to initialize counter %s: %v", name, err)
		}
	}
	log.Info("Counters initialized")
}
