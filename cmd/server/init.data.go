package main

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"
)

// InitDefaultData nạp dữ liệu mặc định cho storefront (social links, reviews, FAQ).
// Seed dùng upsert theo id cố định nên chạy lại mỗi lần khởi động không nhân bản dữ liệu.
func InitDefaultData() {
	log := logger.GetAppLogger()

	seedService, err := newStartupSeedService()
	if err != nil {
		log.Fatalf("Failed to initialize seed service: %v", err)
	}

	if err := seedService.Seed(context.Background()); err != nil {
		// Không fatal, dữ liệu mặc định có thể nạp lại qua endpoint seed
		log.Warnf("Failed to seed default data: %v", err)
		return
	}

	log.Info("Default data seeded successfully")
}

// newStartupSeedService gom việc khởi tạo các service mà SeedService cần
func newStartupSeedService() (*services.SeedService, error) {
	products, err := services.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	categories, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}
	trustpilot, err := services.NewTrustpilotService(global.ServerConfig, services.NewTrustpilotFetcher(global.ServerConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create trustpilot service: %v", err)
	}
	reviews, err := services.NewReviewService(trustpilot)
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}
	faqs, err := services.NewFaqService()
	if err != nil {
		return nil, fmt.Errorf("failed to create faq service: %v", err)
	}
	socialLinks, err := services.NewSocialLinkService()
	if err != nil {
		return nil, fmt.Errorf("failed to create social link service: %v", err)
	}

	return services.NewSeedService(products, categories, reviews, faqs, socialLinks), nil
}
