package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng.
// Nó chứa thông tin server, cơ sở dữ liệu, session và các collaborator bên ngoài.
type Configuration struct {
	InitMode  bool   `env:"INITMODE" envDefault:"false"` // Chế độ khởi tạo dữ liệu mặc định
	Address   string `env:"ADDRESS" envDefault:"8080"`   // Cổng server
	JwtSecret string `env:"JWT_SECRET,required"`         // Bí mật ký JWT session token
	JwtTTL    int    `env:"JWT_TTL" envDefault:"43200"`  // Thời gian sống của session token (giây, mặc định 12 giờ)

	// MongoDB
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"` // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`         // Tên cơ sở dữ liệu

	// Redis (mirror cache cho products/categories)
	Redis_Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"` // Địa chỉ Redis
	Redis_Password string `env:"REDIS_PASSWORD"`                            // Mật khẩu Redis (rỗng nếu không có)
	Redis_DB       int    `env:"REDIS_DB" envDefault:"0"`                   // Redis DB index
	StoreName      string `env:"STORE_NAME" envDefault:"winzen"`            // Tên cửa hàng, dùng làm key prefix cho mirror

	// CORS
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	// Rate limiting
	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// Firebase Storage (lưu ảnh sản phẩm)
	FirebaseProjectID       string `env:"FIREBASE_PROJECT_ID"`       // Firebase Project ID
	FirebaseCredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"` // Đường dẫn đến service account JSON
	FirebaseStorageBucket   string `env:"FIREBASE_STORAGE_BUCKET"`   // Bucket lưu ảnh sản phẩm

	// Tài khoản Super Admin mặc định (chỉ dùng khi INITMODE=true)
	RootStaffCode string `env:"ROOT_STAFF_CODE" envDefault:"SA1"` // Mã nhân viên của Super Admin mặc định
	RootPassword  string `env:"ROOT_PASSWORD"`                    // Mật khẩu ban đầu của Super Admin mặc định
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env bằng cách đi lên từ working directory
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc dữ liệu cấu hình từ file env và environment variables
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			// File env không bắt buộc, cấu hình có thể đến hoàn toàn từ environment
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
