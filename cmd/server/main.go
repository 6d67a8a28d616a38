package main

import (
	"context"
	"fmt"
	"time"

	catalogsvc "winzen_admin/internal/api/catalog/service"
	"winzen_admin/internal/api/mirror"
	"winzen_admin/internal/global"
	"winzen_admin/internal/logger"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự động đọc environment variables để cấu hình
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// initMirror khởi tạo bản sao Redis của products và categories.
// Mirror không bắt buộc để server chạy, lỗi Redis chỉ ghi warning.
func initMirror() *mirror.Mirror {
	log := logger.GetAppLogger()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	m, err := mirror.NewMirror(ctx)
	if err != nil {
		log.WithError(err).Warn("Không kết nối được Redis, mirror bị tắt")
		return nil
	}
	m.Register()

	// Dựng lại mirror từ dữ liệu hiện tại để Redis không lệch sau khi restart
	syncCollection := func(collectionName string, records []interface{}) {
		if err := m.SyncAll(ctx, collectionName, records); err != nil {
			log.WithError(err).WithField("collection", collectionName).Warn("Không đồng bộ được mirror")
		}
	}

	productService, err := catalogsvc.NewProductService()
	if err == nil {
		products, findErr := productService.Find(ctx, bson.M{}, nil)
		if findErr == nil {
			records := make([]interface{}, 0, len(products))
			for _, p := range products {
				records = append(records, p)
			}
			syncCollection(global.MongoDB_CollectionNames.Products, records)
		}
	}

	categoryService, err := catalogsvc.NewCategoryService()
	if err == nil {
		categories, findErr := categoryService.Find(ctx, bson.M{}, nil)
		if findErr == nil {
			records := make([]interface{}, 0, len(categories))
			for _, c := range categories {
				records = append(records, c)
			}
			syncCollection(global.MongoDB_CollectionNames.Categories, records)
		}
	}

	log.Info("Redis mirror registered")
	return m
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	app := InitFiberApp()

	cfg := global.ServerConfig
	address := ":" + cfg.Address

	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address": address,
	}).Info("Starting Fiber server")

	if err := app.Listen(address, fiber.ListenConfig{}); err != nil {
		log.Fatalf("Error in Fiber Listen: %v", err)
	}
}

// Hàm main
func main() {
	// Khởi tạo logger
	initLogger()

	// Khởi tạo các biến toàn cục
	InitGlobal()

	// Khởi tạo registry
	InitRegistry()

	// Khởi tạo dữ liệu mặc định
	InitDefaultData()

	// Khởi tạo Redis mirror cho products/categories
	m := initMirror()
	if m != nil {
		defer m.Close()
	}

	// Chạy Fiber server trên main thread
	main_thread()
}
