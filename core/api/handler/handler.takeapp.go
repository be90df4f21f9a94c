package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"

	"github.com/gofiber/fiber/v3"
)

// TakeAppHandler xử lý các request tra cứu trực tiếp lên Take.app
type TakeAppHandler struct {
	BaseHandler
	client       services.TakeAppClient
	mirrorOrders *services.TakeAppOrderService
}

// NewTakeAppHandler tạo một instance mới của TakeAppHandler
func NewTakeAppHandler() (*TakeAppHandler, error) {
	mirrorOrders, err := services.NewTakeAppOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create takeapp order service: %v", err)
	}

	return &TakeAppHandler{
		client:       services.NewTakeAppClient(global.ServerConfig),
		mirrorOrders: mirrorOrders,
	}, nil
}

// requireAPIKey kiểm tra API key trước khi gọi gateway
func (h *TakeAppHandler) requireAPIKey(c fiber.Ctx) bool {
	if global.ServerConfig.TakeAppAPIKey == "" {
		h.HandleResponse(c, nil, common.ErrConfigMissing)
		return false
	}
	return true
}

// HandleStore trả về thông tin store trên Take.app
func (h *TakeAppHandler) HandleStore(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if !h.requireAPIKey(c) {
			return nil
		}

		store, err := h.client.GetStore(context.Background())
		h.HandleResponse(c, store, err)
		return nil
	})
}

// HandleOrders trả về danh sách đơn hàng trên Take.app và lưu bản sao nội bộ
func (h *TakeAppHandler) HandleOrders(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if !h.requireAPIKey(c) {
			return nil
		}

		orders, err := h.client.GetOrders(context.Background())
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		h.mirrorOrders.MirrorOrders(context.Background(), orders)
		h.HandleResponse(c, orders, nil)
		return nil
	})
}

// HandleInventory trả về thông tin tồn kho trên Take.app
func (h *TakeAppHandler) HandleInventory(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if !h.requireAPIKey(c) {
			return nil
		}

		inventory, err := h.client.GetInventory(context.Background())
		h.HandleResponse(c, inventory, err)
		return nil
	})
}
