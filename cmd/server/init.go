package main

import (
	"context"

	"gameshop_commerce/config"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/database"
	"gameshop_commerce/core/global"

	"github.com/sirupsen/logrus"
)

// InitGlobal khởi tạo các biến toàn cục cho ứng dụng
func InitGlobal() {
	initColNames()
	initValidator()
	initConfig()
	initDatabase_MongoDB()
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	// Dữ liệu storefront
	global.ColNames.Products = "products"
	global.ColNames.Categories = "categories"
	global.ColNames.Reviews = "reviews"
	global.ColNames.Faqs = "faqs"
	global.ColNames.Pages = "pages"
	global.ColNames.SocialLinks = "social_links"
	global.ColNames.PaymentMethods = "payment_methods"
	global.ColNames.BlogPosts = "blog_posts"
	global.ColNames.NotificationBar = "notification_bar"
	global.ColNames.SiteSettings = "site_settings"

	// Đơn hàng và tích hợp bên ngoài
	global.ColNames.Orders = "orders"
	global.ColNames.TakeAppOrders = "takeapp_orders"
	global.ColNames.TrustpilotConfig = "trustpilot_config"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, ...)
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
	database.EnsureDatabaseAndCollections(global.MongoDB_Session)
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_DBName
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Products), models.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Categories), models.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Reviews), models.Review{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Faqs), models.Faq{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.PaymentMethods), models.PaymentMethod{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.BlogPosts), models.BlogPost{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Orders), models.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.TrustpilotConfig), models.SyncConfig{})
}
