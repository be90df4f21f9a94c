package main

import (
	"fmt"

	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"
)

// initLogger khởi tạo và cấu hình logger cho toàn bộ ứng dụng
func initLogger() {
	// Logger tự đọc environment variables để cấu hình (level, format, file rotation)
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}

	log := logger.GetAppLogger()
	log.Info("Logger system initialized successfully")
}

// main_thread khởi tạo và chạy Fiber server
func main_thread() {
	// Khởi tạo app với cấu hình
	app, err := InitFiberApp()
	if err != nil {
		logger.GetAppLogger().Fatalf("Failed to initialize Fiber app: %v", err)
	}

	cfg := global.ServerConfig
	log := logger.GetAppLogger()
	log.WithFields(map[string]interface{}{
		"address":  cfg.Address,
		"protocol": "HTTP",
	}).Info("Starting Fiber server")

	if err := app.Listen(cfg.Address); err != nil {
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

	// Nạp dữ liệu mặc định (social links, reviews, FAQ) nếu chưa có
	InitDefaultData()

	// Chạy Fiber server trên main thread
	main_thread()
}
