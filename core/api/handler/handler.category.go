package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	BaseHandler
	categoryService *services.CategoryService
}

// NewCategoryHandler tạo một instance mới của CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := services.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	return &CategoryHandler{
		categoryService: categoryService,
	}, nil
}

// HandleList trả về toàn bộ danh mục
func (h *CategoryHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categories, err := h.categoryService.ListCategories(context.Background())
		h.HandleResponse(c, categories, err)
		return nil
	})
}

// HandleCreate tạo danh mục mới
func (h *CategoryHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.CreateCategory(context.Background(), &input)
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleUpdate đổi tên danh mục theo id
func (h *CategoryHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.CategoryCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		category, err := h.categoryService.UpdateCategory(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, category, err)
		return nil
	})
}

// HandleDelete xóa danh mục theo id
func (h *CategoryHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.categoryService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "Category deleted"}, err)
		return nil
	})
}
