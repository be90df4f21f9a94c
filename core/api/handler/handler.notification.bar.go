package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// NotificationBarHandler xử lý các request liên quan đến thanh thông báo
type NotificationBarHandler struct {
	BaseHandler
	barService *services.NotificationBarService
}

// NewNotificationBarHandler tạo một instance mới của NotificationBarHandler
func NewNotificationBarHandler() (*NotificationBarHandler, error) {
	barService, err := services.NewNotificationBarService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification bar service: %v", err)
	}

	return &NotificationBarHandler{
		barService: barService,
	}, nil
}

// HandleGet trả về thanh thông báo nếu đang bật, null nếu tắt hoặc chưa cấu hình
func (h *NotificationBarHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		bar, err := h.barService.GetActive(context.Background())
		h.HandleResponse(c, bar, err)
		return nil
	})
}

// HandleUpdate ghi đè cấu hình thanh thông báo
func (h *NotificationBarHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.NotificationBarInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		bar, err := h.barService.Update(context.Background(), &input)
		h.HandleResponse(c, bar, err)
		return nil
	})
}
