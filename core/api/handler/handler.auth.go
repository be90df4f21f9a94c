package handler

import (
	"gameshop_commerce/core/api/dto"
	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// AuthHandler xử lý các request liên quan đến xác thực admin
type AuthHandler struct {
	BaseHandler
	authService *services.AuthService
}

// NewAuthHandler tạo một instance mới của AuthHandler
func NewAuthHandler() (*AuthHandler, error) {
	return &AuthHandler{
		authService: services.NewAuthService(global.ServerConfig),
	}, nil
}

// HandleLogin xử lý đăng nhập bằng tài khoản admin cố định
func (h *AuthHandler) HandleLogin(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input dto.LoginInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		result, err := h.authService.Login(&input)
		if err != nil {
			logger.GetAuditLogger().WithFields(logrus.Fields{
				"username": input.Username,
				"ip":       c.IP(),
			}).Warn("Login failed")
			h.HandleResponse(c, nil, err)
			return nil
		}

		logger.GetAuditLogger().WithFields(logrus.Fields{
			"username": input.Username,
			"ip":       c.IP(),
		}).Info("Login succeeded")
		h.HandleResponse(c, result, nil)
		return nil
	})
}

// HandleMe trả về thông tin admin đang đăng nhập
func (h *AuthHandler) HandleMe(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		userID, ok := c.Locals("user_id").(string)
		if !ok || userID == "" {
			h.HandleResponse(c, nil, common.ErrTokenMissing)
			return nil
		}

		h.HandleResponse(c, h.authService.CurrentAdmin(), nil)
		return nil
	})
}

// HandleRegister luôn từ chối, hệ thống chỉ có một tài khoản admin cố định
func (h *AuthHandler) HandleRegister(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		h.HandleResponse(c, nil, common.NewError(
			common.ErrCodeAuth,
			"Đăng ký đã bị vô hiệu hóa, hãy dùng tài khoản admin",
			common.StatusForbidden,
			nil,
		))
		return nil
	})
}
