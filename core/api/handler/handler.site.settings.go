package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// SiteSettingsHandler xử lý các request liên quan đến cấu hình chung của site
type SiteSettingsHandler struct {
	BaseHandler
	settingsService *services.SiteSettingsService
}

// NewSiteSettingsHandler tạo một instance mới của SiteSettingsHandler
func NewSiteSettingsHandler() (*SiteSettingsHandler, error) {
	settingsService, err := services.NewSiteSettingsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create site settings service: %v", err)
	}

	return &SiteSettingsHandler{
		settingsService: settingsService,
	}, nil
}

// HandleGet trả về cấu hình hiện tại, fallback về mặc định nếu chưa lưu
func (h *SiteSettingsHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		settings, err := h.settingsService.GetSettings(context.Background())
		h.HandleResponse(c, settings, err)
		return nil
	})
}

// HandleUpdate ghi đè cấu hình, chấp nhận mọi key vì cấu hình là schemaless
func (h *SiteSettingsHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input map[string]interface{}
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		settings, err := h.settingsService.UpdateSettings(context.Background(), input)
		h.HandleResponse(c, settings, err)
		return nil
	})
}
