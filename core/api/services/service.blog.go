package services

import (
	"context"
	"fmt"
	"strings"

	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogService là cấu trúc chứa các phương thức liên quan đến bài viết blog
type BlogService struct {
	*BaseServiceMongoImpl[models.BlogPost]
}

// NewBlogService tạo mới BlogService
func NewBlogService() (*BlogService, error) {
	blogCollection, exist := global.RegistryCollections.Get(global.ColNames.BlogPosts)
	if !exist {
		return nil, fmt.Errorf("failed to get blog_posts collection: %v", common.ErrNotFound)
	}

	return &BlogService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.BlogPost](blogCollection),
	}, nil
}

// BlogSlug sinh slug từ tiêu đề bài viết
func BlogSlug(title string) string {
	slug := strings.ToLower(title)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "?", "")
	slug = strings.ReplaceAll(slug, "!", "")
	return slug
}

// ListPosts trả về bài viết mới nhất trước, publishedOnly lọc cho trang công khai
func (s *BlogService) ListPosts(ctx context.Context, publishedOnly bool) ([]models.BlogPost, error) {
	filter := bson.M{}
	if publishedOnly {
		filter["is_published"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(100)
	return s.Find(ctx, filter, opts)
}

// GetPublishedBySlug trả về bài viết đã xuất bản theo slug
func (s *BlogService) GetPublishedBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	post, err := s.FindOne(ctx, bson.M{"slug": slug, "is_published": true}, nil)
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost tạo bài viết mới, slug được sinh từ tiêu đề khi không cung cấp
func (s *BlogService) CreatePost(ctx context.Context, input *dto.BlogPostInput) (*models.BlogPost, error) {
	slug := input.Slug
	if slug == "" {
		slug = BlogSlug(input.Title)
	}

	now := utility.NowISO8601()
	post := models.BlogPost{
		ID:          utility.NewUUID(),
		Title:       input.Title,
		Slug:        slug,
		Excerpt:     input.Excerpt,
		Content:     input.Content,
		ImageURL:    input.ImageURL,
		IsPublished: input.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if _, err := s.InsertOne(ctx, post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost ghi đè nội dung bài viết, updated_at được làm mới
func (s *BlogService) UpdatePost(ctx context.Context, id string, input *dto.BlogPostInput) (*models.BlogPost, error) {
	update := bson.M{
		"title":        input.Title,
		"slug":         input.Slug,
		"excerpt":      input.Excerpt,
		"content":      input.Content,
		"image_url":    input.ImageURL,
		"is_published": input.IsPublished,
		"updated_at":   utility.NowISO8601(),
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
