package global

import (
	"gameshop_commerce/config"
	"gameshop_commerce/core/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Products         string // Tên collection cho sản phẩm
	Categories       string // Tên collection cho danh mục sản phẩm
	Reviews          string // Tên collection cho đánh giá của khách hàng
	Faqs             string // Tên collection cho câu hỏi thường gặp
	Pages            string // Tên collection cho nội dung trang tĩnh
	SocialLinks      string // Tên collection cho liên kết mạng xã hội
	PaymentMethods   string // Tên collection cho phương thức thanh toán
	BlogPosts        string // Tên collection cho bài viết blog
	NotificationBar  string // Tên collection cho thanh thông báo
	SiteSettings     string // Tên collection cho cấu hình site
	Orders           string // Tên collection cho đơn hàng nội bộ
	TakeAppOrders    string // Tên collection cho bản sao đơn hàng từ Take.app
	TrustpilotConfig string // Tên collection cho cấu hình đồng bộ Trustpilot
}

// Các biến toàn cục
var Validate *validator.Validate               // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client              // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration         // Cấu hình của server
var ColNames = *new(MongoDB_CollectionName)    // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
