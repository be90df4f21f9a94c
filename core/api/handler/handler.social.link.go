package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// SocialLinkHandler xử lý các request liên quan đến liên kết mạng xã hội
type SocialLinkHandler struct {
	BaseHandler
	linkService *services.SocialLinkService
}

// NewSocialLinkHandler tạo một instance mới của SocialLinkHandler
func NewSocialLinkHandler() (*SocialLinkHandler, error) {
	linkService, err := services.NewSocialLinkService()
	if err != nil {
		return nil, fmt.Errorf("failed to create social link service: %v", err)
	}

	return &SocialLinkHandler{
		linkService: linkService,
	}, nil
}

// HandleList trả về toàn bộ liên kết mạng xã hội
func (h *SocialLinkHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		links, err := h.linkService.ListSocialLinks(context.Background())
		h.HandleResponse(c, links, err)
		return nil
	})
}

// HandleCreate tạo liên kết mới
func (h *SocialLinkHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.SocialLinkCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		link, err := h.linkService.CreateSocialLink(context.Background(), &input)
		h.HandleResponse(c, link, err)
		return nil
	})
}

// HandleUpdate cập nhật một liên kết theo id
func (h *SocialLinkHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.SocialLinkCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		link, err := h.linkService.UpdateSocialLink(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, link, err)
		return nil
	})
}

// HandleDelete xóa một liên kết theo id
func (h *SocialLinkHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.linkService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "Social link deleted"}, err)
		return nil
	})
}
