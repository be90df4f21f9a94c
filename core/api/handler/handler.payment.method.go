package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// PaymentMethodHandler xử lý các request liên quan đến phương thức thanh toán
type PaymentMethodHandler struct {
	BaseHandler
	methodService *services.PaymentMethodService
}

// NewPaymentMethodHandler tạo một instance mới của PaymentMethodHandler
func NewPaymentMethodHandler() (*PaymentMethodHandler, error) {
	methodService, err := services.NewPaymentMethodService()
	if err != nil {
		return nil, fmt.Errorf("failed to create payment method service: %v", err)
	}

	return &PaymentMethodHandler{
		methodService: methodService,
	}, nil
}

// HandleListActive trả về các phương thức đang bật cho trang công khai
func (h *PaymentMethodHandler) HandleListActive(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		methods, err := h.methodService.ListPaymentMethods(context.Background(), true)
		h.HandleResponse(c, methods, err)
		return nil
	})
}

// HandleListAll trả về toàn bộ phương thức cho admin
func (h *PaymentMethodHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		methods, err := h.methodService.ListPaymentMethods(context.Background(), false)
		h.HandleResponse(c, methods, err)
		return nil
	})
}

// HandleCreate tạo phương thức thanh toán mới
func (h *PaymentMethodHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.PaymentMethodInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		method, err := h.methodService.CreatePaymentMethod(context.Background(), &input)
		h.HandleResponse(c, method, err)
		return nil
	})
}

// HandleUpdate ghi đè một phương thức thanh toán theo id
func (h *PaymentMethodHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.PaymentMethodInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		method, err := h.methodService.UpdatePaymentMethod(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, method, err)
		return nil
	})
}

// HandleDelete xóa một phương thức thanh toán theo id
func (h *PaymentMethodHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.methodService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "Payment method deleted"}, err)
		return nil
	})
}
