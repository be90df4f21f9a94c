package handler

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	BaseHandler
	productService *services.ProductService
}

// NewProductHandler tạo một instance mới của ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := services.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	return &ProductHandler{
		productService: productService,
	}, nil
}

// HandleList trả về danh sách sản phẩm.
// Query: category_id lọc theo danh mục, active_only=false để admin xem cả sản phẩm ẩn.
func (h *ProductHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		categoryID := c.Query("category_id")
		activeOnly := c.Query("active_only", "true") != "false"

		products, err := h.productService.ListProducts(context.Background(), categoryID, activeOnly)
		h.HandleResponse(c, products, err)
		return nil
	})
}

// HandleGet trả về một sản phẩm theo id
func (h *ProductHandler) HandleGet(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		product, err := h.productService.FindOneById(context.Background(), c.Params("id"))
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleCreate tạo sản phẩm mới
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.productService.CreateProduct(context.Background(), &input)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleUpdate cập nhật một sản phẩm theo id
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product, err := h.productService.UpdateProduct(context.Background(), c.Params("id"), &input)
		h.HandleResponse(c, product, err)
		return nil
	})
}

// HandleDelete xóa một sản phẩm theo id
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		err := h.productService.DeleteById(context.Background(), c.Params("id"))
		h.HandleResponse(c, fiber.Map{"message": "Product deleted"}, err)
		return nil
	})
}

// HandleReorder gán lại thứ tự hiển thị theo danh sách id
func (h *ProductHandler) HandleReorder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.ProductReorderInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		err := h.productService.Reorder(context.Background(), input.ProductIds)
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		h.HandleResponse(c, fiber.Map{"message": "Products reordered successfully"}, nil)
		return nil
	})
}
