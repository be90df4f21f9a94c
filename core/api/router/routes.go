package router

import (
	"fmt"

	"gameshop_commerce/core/api/handler"
	"gameshop_commerce/core/api/middleware"

	"github.com/gofiber/fiber/v3"
)

// Router quản lý việc định tuyến cho API.
// Route admin được bọc bằng middleware.RequireAuth thay vì group.Use
// vì nhiều prefix trộn lẫn route công khai và route cần xác thực
// (xem ghi chú trong middleware.auth.go).
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới Router
func NewRouter(app *fiber.App) *Router {
	return &Router{app: app}
}

// SetupRoutes đăng ký toàn bộ route của ứng dụng
func (r *Router) SetupRoutes() error {
	authHandler, err := handler.NewAuthHandler()
	if err != nil {
		return fmt.Errorf("failed to create auth handler: %v", err)
	}
	uploadHandler, err := handler.NewUploadHandler()
	if err != nil {
		return fmt.Errorf("failed to create upload handler: %v", err)
	}
	categoryHandler, err := handler.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %v", err)
	}
	productHandler, err := handler.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %v", err)
	}
	reviewHandler, err := handler.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("failed to create review handler: %v", err)
	}
	faqHandler, err := handler.NewFaqHandler()
	if err != nil {
		return fmt.Errorf("failed to create faq handler: %v", err)
	}
	pageHandler, err := handler.NewPageHandler()
	if err != nil {
		return fmt.Errorf("failed to create page handler: %v", err)
	}
	socialLinkHandler, err := handler.NewSocialLinkHandler()
	if err != nil {
		return fmt.Errorf("failed to create social link handler: %v", err)
	}
	paymentMethodHandler, err := handler.NewPaymentMethodHandler()
	if err != nil {
		return fmt.Errorf("failed to create payment method handler: %v", err)
	}
	notificationBarHandler, err := handler.NewNotificationBarHandler()
	if err != nil {
		return fmt.Errorf("failed to create notification bar handler: %v", err)
	}
	blogHandler, err := handler.NewBlogHandler()
	if err != nil {
		return fmt.Errorf("failed to create blog handler: %v", err)
	}
	siteSettingsHandler, err := handler.NewSiteSettingsHandler()
	if err != nil {
		return fmt.Errorf("failed to create site settings handler: %v", err)
	}
	orderHandler, err := handler.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %v", err)
	}
	takeAppHandler, err := handler.NewTakeAppHandler()
	if err != nil {
		return fmt.Errorf("failed to create takeapp handler: %v", err)
	}
	maintenanceHandler, err := handler.NewMaintenanceHandler()
	if err != nil {
		return fmt.Errorf("failed to create maintenance handler: %v", err)
	}

	auth := middleware.RequireAuth

	// Health check cho load balancer, nằm ngoài /api
	r.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := r.app.Group("/api")

	// Root
	api.Get("/", maintenanceHandler.HandleRoot)

	// Auth
	api.Post("/auth/login", authHandler.HandleLogin)
	api.Post("/auth/register", authHandler.HandleRegister)
	api.Get("/auth/me", auth(authHandler.HandleMe))

	// Upload
	api.Post("/upload", auth(uploadHandler.HandleUpload))
	api.Get("/uploads/:filename", uploadHandler.HandleServe)

	// Categories
	api.Get("/categories", categoryHandler.HandleList)
	api.Post("/categories", auth(categoryHandler.HandleCreate))
	api.Put("/categories/:id", auth(categoryHandler.HandleUpdate))
	api.Delete("/categories/:id", auth(categoryHandler.HandleDelete))

	// Products, route /reorder phải đứng trước /:id
	api.Get("/products", productHandler.HandleList)
	api.Put("/products/reorder", auth(productHandler.HandleReorder))
	api.Get("/products/:id", productHandler.HandleGet)
	api.Post("/products", auth(productHandler.HandleCreate))
	api.Put("/products/:id", auth(productHandler.HandleUpdate))
	api.Delete("/products/:id", auth(productHandler.HandleDelete))

	// Reviews và đồng bộ Trustpilot
	api.Get("/reviews", reviewHandler.HandleList)
	api.Post("/reviews/sync-trustpilot", auth(reviewHandler.HandleSyncTrustpilot))
	api.Get("/reviews/trustpilot-status", auth(reviewHandler.HandleTrustpilotStatus))
	api.Post("/reviews", auth(reviewHandler.HandleCreate))
	api.Put("/reviews/:id", auth(reviewHandler.HandleUpdate))
	api.Delete("/reviews/:id", auth(reviewHandler.HandleDelete))

	// FAQs, route /reorder phải đứng trước /:id
	api.Get("/faqs", faqHandler.HandleList)
	api.Put("/faqs/reorder", auth(faqHandler.HandleReorder))
	api.Post("/faqs", auth(faqHandler.HandleCreate))
	api.Put("/faqs/:id", auth(faqHandler.HandleUpdate))
	api.Delete("/faqs/:id", auth(faqHandler.HandleDelete))

	// Pages
	api.Get("/pages/:page_key", pageHandler.HandleGet)
	api.Put("/pages/:page_key", auth(pageHandler.HandleUpdate))

	// Social links
	api.Get("/social-links", socialLinkHandler.HandleList)
	api.Post("/social-links", auth(socialLinkHandler.HandleCreate))
	api.Put("/social-links/:id", auth(socialLinkHandler.HandleUpdate))
	api.Delete("/social-links/:id", auth(socialLinkHandler.HandleDelete))

	// Payment methods
	api.Get("/payment-methods", paymentMethodHandler.HandleListActive)
	api.Get("/payment-methods/all", auth(paymentMethodHandler.HandleListAll))
	api.Post("/payment-methods", auth(paymentMethodHandler.HandleCreate))
	api.Put("/payment-methods/:id", auth(paymentMethodHandler.HandleUpdate))
	api.Delete("/payment-methods/:id", auth(paymentMethodHandler.HandleDelete))

	// Notification bar
	api.Get("/notification-bar", notificationBarHandler.HandleGet)
	api.Put("/notification-bar", auth(notificationBarHandler.HandleUpdate))

	// Blog, route /all/admin phải đứng trước /:slug
	api.Get("/blog", blogHandler.HandleListPublished)
	api.Get("/blog/all/admin", auth(blogHandler.HandleListAll))
	api.Get("/blog/:slug", blogHandler.HandleGetBySlug)
	api.Post("/blog", auth(blogHandler.HandleCreate))
	api.Put("/blog/:id", auth(blogHandler.HandleUpdate))
	api.Delete("/blog/:id", auth(blogHandler.HandleDelete))

	// Site settings
	api.Get("/settings", siteSettingsHandler.HandleGet)
	api.Put("/settings", auth(siteSettingsHandler.HandleUpdate))

	// Orders
	api.Post("/orders/create", orderHandler.HandleCreate)
	api.Get("/orders", auth(orderHandler.HandleList))

	// Take.app passthrough
	api.Get("/takeapp/store", auth(takeAppHandler.HandleStore))
	api.Get("/takeapp/orders", auth(takeAppHandler.HandleOrders))
	api.Get("/takeapp/inventory", auth(takeAppHandler.HandleInventory))

	// Maintenance
	api.Post("/seed", maintenanceHandler.HandleSeed)
	api.Post("/clear-products", auth(maintenanceHandler.HandleClearProducts))

	return nil
}
