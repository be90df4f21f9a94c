package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// FaqHandler xử lý các request liên quan đến câu hỏi thường gặp
type FaqHandler struct {
	BaseHandler
	faqService *services.FaqService
}

// NewFaqHandler tạo một instance mới của FaqHandler
func NewFaqHandler() (*FaqHandler, error) {
	faqService, err := services.NewFaqService()
	if err != nil {
		return nil, fmt.Errorf("failed to create faq service: %v", err)
	}

	return &FaqHandler{
		faqService: faqService,
	}, nil
}

// HandleList trả về toàn bộ câu hỏi theo thứ tự hiển thị
func (h *FaqHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		faqs, err := h.faqService.ListFaqs(context.Background())
		h.HandleResponse(c, faqs, err)
		return nil
	})
}

// HandleCreate tạo câu hỏi mới
func (h *FaqHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.FaqCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		faq, err := h.faqService.CreateFaq(context.Background(), &input)
		h.HandleResponse(c, faq, err)
		return nil
	})
}

// HandleUpdate cập nhật một câu hỏi theo id
func (h *FaqHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.FaqCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		faq, err := h.faqService.UpdateFaq(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, faq, err)
		return nil
	})
}

// HandleDelete xóa một câu hỏi theo id
func (h *FaqHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.faqService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "FAQ deleted"}, err)
		return nil
	})
}

// HandleReorder gán lại thứ tự hiển thị, body là mảng id thuần
func (h *FaqHandler) HandleReorder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var faqIds []string
		if err := h.ParseRequestBody(c, &faqIds); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		if err := h.faqService.Reorder(context.Background(), faqIds); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "FAQs reordered successfully"}, nil)
		return nil
	})
}
