package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// BlogHandler xử lý các request liên quan đến bài viết blog
type BlogHandler struct {
	BaseHandler
	blogService *services.BlogService
}

// NewBlogHandler tạo một instance mới của BlogHandler
func NewBlogHandler() (*BlogHandler, error) {
	blogService, err := services.NewBlogService()
	if err != nil {
		return nil, fmt.Errorf("failed to create blog service: %v", err)
	}

	return &BlogHandler{
		blogService: blogService,
	}, nil
}

// HandleListPublished trả về các bài viết đã xuất bản cho trang công khai
func (h *BlogHandler) HandleListPublished(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		posts, err := h.blogService.ListPosts(context.Background(), true)
		h.HandleResponse(c, posts, err)
		return nil
	})
}

// HandleListAll trả về toàn bộ bài viết cho admin, gồm cả bản nháp
func (h *BlogHandler) HandleListAll(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		posts, err := h.blogService.ListPosts(context.Background(), false)
		h.HandleResponse(c, posts, err)
		return nil
	})
}

// HandleGetBySlug trả về bài viết đã xuất bản theo slug
func (h *BlogHandler) HandleGetBySlug(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		post, err := h.blogService.GetPublishedBySlug(context.Background(), c.Params("slug"))
		h.HandleResponse(c, post, err)
		return nil
	})
}

// HandleCreate tạo bài viết mới
func (h *BlogHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BlogPostInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.blogService.CreatePost(context.Background(), &input)
		h.HandleResponse(c, post, err)
		return nil
	})
}

// HandleUpdate ghi đè nội dung bài viết theo id
func (h *BlogHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.BlogPostInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		post, err := h.blogService.UpdatePost(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, post, err)
		return nil
	})
}

// HandleDelete xóa một bài viết theo id
func (h *BlogHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.blogService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "Blog post deleted"}, err)
		return nil
	})
}
