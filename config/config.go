package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu và các dịch vụ bên ngoài
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo
	Address               string `env:"ADDRESS" envDefault:":8080"`               // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET" envDefault:"gsn-secret-key-change-in-production"` // Bí mật JWT
	MongoDB_ConnectionURI string `env:"MONGO_URL" envDefault:"mongodb://localhost:27017"`            // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"DB_NAME" envDefault:"gameshop"`            // Tên cơ sở dữ liệu
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`              // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`          // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`        // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`     // Bật/tắt rate limiting
	// Admin Configuration (tài khoản admin cố định)
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"gsnadmin"` // Tên đăng nhập admin
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"gsnadmin"` // Mật khẩu admin
	// Upload Configuration
	UploadDir string `env:"UPLOAD_DIR" envDefault:"uploads"` // Thư mục lưu file upload
	// Take.app Configuration (tạo đơn hàng qua Take.app)
	TakeAppAPIKey     string `env:"TAKEAPP_API_KEY"`                                          // API key của Take.app (bắt buộc khi tạo đơn)
	TakeAppBaseURL    string `env:"TAKEAPP_BASE_URL" envDefault:"https://take.app/api/platform"` // Base URL của Take.app platform API
	TakeAppStoreAlias string `env:"TAKEAPP_STORE_ALIAS" envDefault:"gsn"`                     // Alias của store trên Take.app
	// Trustpilot Configuration (đồng bộ review từ Trustpilot)
	TrustpilotDomain string `env:"TRUSTPILOT_DOMAIN" envDefault:"gameshopnepal.com"` // Domain được review trên Trustpilot
	TrustpilotAPIKey string `env:"TRUSTPILOT_API_KEY"`                               // API key Trustpilot (optional)
	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL frontend
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env (nếu có) và biến môi trường
func NewConfig(files ...string) *Configuration {
	envPath := getEnvPath()
	if envPath != "" {
		// File env là optional, mọi giá trị đều có default hoặc đọc từ env
		if err := godotenv.Load(envPath); err != nil {
			// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
			fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		}
	}

	cfg := Configuration{}
	err := env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
