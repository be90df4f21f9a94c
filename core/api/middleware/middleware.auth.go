package middleware

import (
	"strings"

	"gameshop_commerce/core/api/services"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có bug với cách đăng ký middleware trực tiếp trong route:
//    router.Get("/path", authMiddleware, handler)
// → middleware sẽ KHÔNG được gọi, request bỏ qua xác thực!
//
// Dùng group.Use() cũng không được vì middleware áp theo prefix đường dẫn,
// sẽ chặn luôn các route công khai cùng prefix (GET /products là công khai
// nhưng PUT /products/:id cần auth).
//
// ✅ CÁCH ĐÚNG: bọc handler bằng RequireAuth, middleware chạy trong chính
// handler nên không phụ thuộc cơ chế đăng ký của fiber:
//    router.Put("/products/:id", middleware.RequireAuth(h.HandleUpdate))
// ============================================================================

// RequireAuth bọc một handler, chỉ gọi handler khi request mang token admin hợp lệ.
// Hệ thống chỉ có một admin cố định nên không có phân quyền theo role,
// token hợp lệ với đúng user_id là đủ để truy cập mọi route admin.
func RequireAuth(next fiber.Handler) fiber.Handler {
	authService := services.NewAuthService(global.ServerConfig)

	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("Missing Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		userID, err := authService.VerifyToken(parts[1])
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("Token verification failed")
			HandleErrorResponse(c, err)
			return nil
		}

		if userID != services.AdminUserID {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		c.Locals("user_id", userID)
		return next(c)
	}
}
