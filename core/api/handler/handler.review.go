package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/global"

	"github.com/gofiber/fiber/v3"
)

// ReviewHandler xử lý các request liên quan đến đánh giá của khách hàng
type ReviewHandler struct {
	BaseHandler
	reviewService *services.ReviewService
}

// NewReviewHandler tạo một instance mới của ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	trustpilotService, err := services.NewTrustpilotService(global.ServerConfig, services.NewTrustpilotFetcher(global.ServerConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to create trustpilot service: %v", err)
	}

	reviewService, err := services.NewReviewService(trustpilotService)
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}

	return &ReviewHandler{
		reviewService: reviewService,
	}, nil
}

// HandleList trả về toàn bộ đánh giá
func (h *ReviewHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		reviews, err := h.reviewService.ListReviews(context.Background())
		h.HandleResponse(c, reviews, err)
		return nil
	})
}

// HandleCreate tạo đánh giá thủ công từ admin
func (h *ReviewHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ReviewCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		review, err := h.reviewService.CreateReview(context.Background(), &input)
		h.HandleResponse(c, review, err)
		return nil
	})
}

// HandleUpdate cập nhật một đánh giá theo id
func (h *ReviewHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ReviewCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		review, err := h.reviewService.UpdateReview(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, review, err)
		return nil
	})
}

// HandleDelete xóa một đánh giá theo id
func (h *ReviewHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.reviewService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "Review deleted"}, err)
		return nil
	})
}

// HandleSyncTrustpilot kéo đánh giá mới từ Trustpilot về store
func (h *ReviewHandler) HandleSyncTrustpilot(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		result, err := h.reviewService.SyncTrustpilot(context.Background())
		h.HandleResponse(c, result, err)
		return nil
	})
}

// HandleTrustpilotStatus trả về trạng thái đồng bộ Trustpilot
func (h *ReviewHandler) HandleTrustpilotStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		status, err := h.reviewService.TrustpilotStatus(context.Background())
		h.HandleResponse(c, status, err)
		return nil
	})
}
