package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// PageHandler xử lý các request liên quan đến trang tĩnh
type PageHandler struct {
	BaseHandler
	pageService *services.PageService
}

// NewPageHandler tạo một instance mới của PageHandler
func NewPageHandler() (*PageHandler, error) {
	pageService, err := services.NewPageService()
	if err != nil {
		return nil, fmt.Errorf("failed to create page service: %v", err)
	}

	return &PageHandler{
		pageService: pageService,
	}, nil
}

// HandleGet trả về nội dung trang theo page_key, fallback về nội dung mặc định
func (h *PageHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		page, err := h.pageService.GetPage(context.Background(), c.Params("page_key"))
		h.HandleResponse(c, page, err)
		return nil
	})
}

// HandleUpdate ghi đè nội dung trang, tạo mới nếu chưa có
func (h *PageHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.PageUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		page, err := h.pageService.UpdatePage(context.Background(), c.Params("page_key"), &input)
		h.HandleResponse(c, page, err)
		return nil
	})
}
