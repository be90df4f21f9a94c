package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"

	"github.com/gofiber/fiber/v3"
)

// MaintenanceHandler xử lý các request vận hành: seed dữ liệu và dọn dữ liệu
type MaintenanceHandler struct {
	BaseHandler
	seedService *services.SeedService
}

// NewMaintenanceHandler tạo một instance mới của MaintenanceHandler
func NewMaintenanceHandler() (*MaintenanceHandler, error) {
	seedService, err := newSeedService()
	if err != nil {
		return nil, err
	}

	return &MaintenanceHandler{
		seedService: seedService,
	}, nil
}

// newSeedService gom việc khởi tạo các service mà SeedService cần
func newSeedService() (*services.SeedService, error) {
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

// HandleSeed nạp dữ liệu khởi tạo, chạy lại nhiều lần an toàn
func (h *MaintenanceHandler) HandleSeed(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.seedService.Seed(context.Background()); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Data seeded successfully"}, nil)
		return nil
	})
}

// HandleClearProducts xóa toàn bộ sản phẩm và danh mục
func (h *MaintenanceHandler) HandleClearProducts(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if err := h.seedService.ClearProducts(context.Background()); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.GetAuditLogger().Info("Products and categories cleared")
		h.HandleResponse(c, fiber.Map{"message": "All products and categories cleared"}, nil)
		return nil
	})
}

// HandleRoot là endpoint gốc của API
func (h *MaintenanceHandler) HandleRoot(c fiber.Ctx) error {
	return JSONResponse(c, 200, fiber.Map{"message": "GameShop Nepal API"})
}
