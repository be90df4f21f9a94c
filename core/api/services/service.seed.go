package services

import (
	"context"

	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/logger"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// SeedService nạp dữ liệu khởi tạo cho cửa hàng.
// Chỉ giữ phần base của từng service vì seed chỉ cần upsert và xóa.
type SeedService struct {
	products    BaseServiceMongo[models.Product]
	categories  BaseServiceMongo[models.Category]
	reviews     BaseServiceMongo[models.Review]
	faqs        BaseServiceMongo[models.Faq]
	socialLinks BaseServiceMongo[models.SocialLink]
}

// NewSeedService tạo mới SeedService
func NewSeedService(
	products *ProductService,
	categories *CategoryService,
	reviews *ReviewService,
	faqs *FaqService,
	socialLinks *SocialLinkService,
) *SeedService {
	return &SeedService{
		products:    products,
		categories:  categories,
		reviews:     reviews,
		faqs:        faqs,
		socialLinks: socialLinks,
	}
}

// Seed nạp liên kết mạng xã hội, đánh giá và FAQ mặc định.
// Upsert theo id cố định nên chạy lại nhiều lần không nhân bản dữ liệu.
func (s *SeedService) Seed(ctx context.Context) error {
	socialLinks := []models.SocialLink{
		{ID: "fb", Platform: "Facebook", URL: "https://facebook.com/gameshopnepal", Icon: "facebook"},
		{ID: "ig", Platform: "Instagram", URL: "https://instagram.com/gameshopnepal", Icon: "instagram"},
		{ID: "tt", Platform: "TikTok", URL: "https://tiktok.com/@gameshopnepal", Icon: "tiktok"},
		{ID: "wa", Platform: "WhatsApp", URL: "https://wa.me/9779743488871", Icon: "whatsapp"},
	}
	for _, link := range socialLinks {
		if _, err := s.socialLinks.Upsert(ctx, bson.M{"_id": link.ID}, link); err != nil {
			return err
		}
	}

	reviews := []models.Review{
		{ID: "rev1", ReviewerName: "Sujan Thapa", Rating: 5, Comment: "Fast delivery and genuine products. Got my Netflix subscription within minutes!", ReviewDate: "2025-01-10T10:00:00Z", CreatedAt: utility.NowISO8601()},
		{ID: "rev2", ReviewerName: "Anisha Sharma", Rating: 5, Comment: "Best prices in Nepal for digital products. Highly recommended!", ReviewDate: "2025-01-08T14:30:00Z", CreatedAt: utility.NowISO8601()},
		{ID: "rev3", ReviewerName: "Rohan KC", Rating: 5, Comment: "Bought PUBG UC, instant delivery. Will buy again!", ReviewDate: "2025-01-05T09:15:00Z", CreatedAt: utility.NowISO8601()},
	}
	for _, review := range reviews {
		if _, err := s.reviews.Upsert(ctx, bson.M{"_id": review.ID}, review); err != nil {
			return err
		}
	}

	faqs := []models.Faq{
		{ID: "faq1", Question: "How do I place an order?", Answer: "Simply browse our products, select the plan you want, and click 'Order Now'. This will redirect you to WhatsApp where you can complete your order.", SortOrder: 0},
		{ID: "faq2", Question: "How long does delivery take?", Answer: "Most products are delivered instantly within minutes after payment confirmation.", SortOrder: 1},
		{ID: "faq3", Question: "What payment methods do you accept?", Answer: "We accept eSewa, Khalti, bank transfer, and other local payment methods.", SortOrder: 2},
		{ID: "faq4", Question: "Are your products genuine?", Answer: "Yes! All our products are 100% genuine and sourced directly from authorized channels.", SortOrder: 3},
	}
	for _, faq := range faqs {
		if _, err := s.faqs.Upsert(ctx, bson.M{"_id": faq.ID}, faq); err != nil {
			return err
		}
	}

	logger.GetAppLogger().Info("Seed data applied")
	return nil
}

// ClearProducts xóa toàn bộ sản phẩm và danh mục
func (s *SeedService) ClearProducts(ctx context.Context) error {
	if _, err := s.products.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if _, err := s.categories.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	return nil
}
