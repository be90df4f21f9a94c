// Package handler chứa các handler xử lý request HTTP trong ứng dụng.
// Mỗi handler nhận request, gọi service tương ứng và chuẩn hóa response.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"runtime/debug"

	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
)

// JSONResponse trả về JSON response với Content-Type: application/json; charset=utf-8
func JSONResponse(c fiber.Ctx, statusCode int, data interface{}) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(statusCode).JSON(data)
}

// BaseHandler cung cấp các tiện ích parse / validate / response chung cho mọi handler
type BaseHandler struct{}

// ParseRequestBody parse và validate body JSON của request.
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số.
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	decoder := json.NewDecoder(bytes.NewReader(body))
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgValidationError, common.StatusBadRequest, err)
	}

	return h.validateInput(input)
}

// validateInput validate input theo các validate tag, trả về danh sách field lỗi
func (h *BaseHandler) validateInput(input interface{}) error {
	if err := global.Validate.Struct(input); err != nil {
		// Input không phải struct (mảng id thuần, map) thì không có tag để validate
		var invalidErr *validator.InvalidValidationError
		if errors.As(err, &invalidErr) {
			return nil
		}

		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			details := make(map[string]string, len(validationErrors))
			for _, fieldErr := range validationErrors {
				details[fieldErr.Field()] = fieldErr.Tag()
			}
			return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, details)
		}
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err)
	}
	return nil
}

// HandleResponse xử lý và chuẩn hóa response trả về cho client.
// Phương thức này đảm bảo format response thống nhất trong toàn bộ ứng dụng.
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) {
	if err != nil {
		var customErr *common.Error
		if errors.As(err, &customErr) {
			JSONResponse(c, customErr.StatusCode, fiber.Map{
				"code":    customErr.Code.Code,
				"message": customErr.Message,
				"details": customErr.Details,
				"status":  "error",
			})
			return
		}
		JSONResponse(c, common.StatusInternalServerError, fiber.Map{
			"code":    common.ErrCodeDatabase.Code,
			"message": err.Error(),
			"status":  "error",
		})
		return
	}

	JSONResponse(c, common.StatusOK, fiber.Map{
		"code":    common.StatusOK,
		"message": common.MsgSuccess,
		"data":    data,
		"status":  "success",
	})
}

// SafeHandler bọc các handler với recover để bắt panic và xử lý lỗi an toàn.
// Hàm này đảm bảo server luôn trả về response cho client, kể cả khi có panic xảy ra.
func (h *BaseHandler) SafeHandler(c fiber.Ctx, handler func() error) error {
	defer func() {
		if r := recover(); r != nil {
			debug.PrintStack()
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeInternalServer,
				fmt.Sprintf("Lỗi hệ thống không mong muốn: %v", r),
				common.StatusInternalServerError,
				nil,
			))
		}
	}()
	return handler()
}
