package main

import (
	"context"

	"winzen_admin/config"
	authmodels "winzen_admin/internal/api/auth/models"
	catalogmodels "winzen_admin/internal/api/catalog/models"
	countermodels "winzen_admin/internal/api/counter/models"
	inventorymodels "winzen_admin/internal/api/inventory/models"
	ordermodels "winzen_admin/internal/api/order/models"
	"winzen_admin/internal/database"
	"winzen_admin/internal/global"
	"winzen_admin/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase Storage (ảnh sản phẩm)
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, temperature, ...)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	db := global.GetDB()
	names := global.MongoDB_CollectionNames
	database.CreateIndexes(context.TODO(), db.Collection(names.Staffs), authmodels.Staff{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Tokens), authmodels.Token{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Counters), countermodels.Counter{})
	database.CreateIndexes(context.TODO(), db.Collection(names.StockItems), inventorymodels.StockItem{})
	database.CreateIndexes(context.TODO(), db.Collection(names.StockHistory), inventorymodels.StockHistoryEntry{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(names.Canceled), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(names.History), ordermodels.Order{})
}

// initFirebase khởi tạo Firebase Admin SDK cho Storage
func initFirebase() {
	cfg := global.ServerConfig

	// Kiểm tra Firebase config có đầy đủ không
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" || cfg.FirebaseStorageBucket == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase (upload ảnh sản phẩm sẽ không hoạt động)")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath, cfg.FirebaseStorageBucket)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		// Không fatal, chỉ log warning để hệ thống vẫn chạy được
		return
	}

	logrus.Info("Firebase initialized successfully")
}
