package global

import (
	"winzen_admin/config"
	"winzen_admin/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong database
type CollectionName struct {
	Staffs       string // Nhân viên cửa hàng
	Categories   string // Danh mục sản phẩm
	Products     string // Sản phẩm
	Counters     string // Bộ đếm cấp ID tuần tự
	StockItems   string // Vật phẩm tồn kho (nguyên liệu, dụng cụ, hàng ngoài)
	StockHistory string // Lịch sử thao tác tồn kho
	Orders       string // Đơn hàng đang hoạt động
	Canceled     string // Đơn hàng đã hủy
	History      string // Đơn hàng đã hoàn tất (lưu trữ)
	Tokens       string // Session token đã cấp
}

var (
	// MongoDB_CollectionNames tên các collection được sử dụng
	MongoDB_CollectionNames = CollectionName{
		Staffs:       "staffs",
		Categories:   "categories",
		Products:     "products",
		Counters:     "counters",
		StockItems:   "stock_items",
		StockHistory: "stocks_history",
		Orders:       "orders",
		Canceled:     "canceled",
		History:      "history",
		Tokens:       "tokens",
	}

	// Validate đối tượng validator dùng chung toàn ứng dụng
	Validate *validator.Validate

	// ServerConfig cấu hình server
	ServerConfig *config.Configuration

	// MongoDB_Session phiên kết nối MongoDB
	MongoDB_Session *mongo.Client

	// RegistryCollections registry chứa các collection theo tên
	RegistryCollections = registry.NewRegistry[*mongo.Collection]()
)

// GetDB trả về database đang được cấu hình
func GetDB() *mongo.Database {
	return MongoDB_Session.Database(ServerConfig.MongoDB_DBName)
}
