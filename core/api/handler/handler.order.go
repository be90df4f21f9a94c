package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/global"

	"github.com/gofiber/fiber/v3"
)

// OrderHandler xử lý các request liên quan đến đơn hàng
type OrderHandler struct {
	BaseHandler
	orderService *services.OrderService
}

// NewOrderHandler tạo một instance mới của OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := services.NewOrderService(global.ServerConfig, services.NewTakeAppClient(global.ServerConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	return &OrderHandler{
		orderService: orderService,
	}, nil
}

// HandleCreate tạo đơn hàng mới qua Take.app
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.orderService.CreateOrder(context.Background(), &input)
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleList trả về danh sách đơn hàng nội bộ, mới nhất trước
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		orders, err := h.orderService.ListOrders(context.Background())
		h.HandleResponse(c, orders, err)
		return nil
	})
}
