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

// CategoryService là cấu trúc chứa các phương thức liên quan đến danh mục sản phẩm
type CategoryService struct {
	*BaseServiceMongoImpl[models.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	categoryCollection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Category](categoryCollection),
	}, nil
}

// CategorySlug sinh slug từ tên danh mục
func CategorySlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")
	slug = strings.ReplaceAll(slug, "&", "and")
	return slug
}

// ListCategories trả về toàn bộ danh mục
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetLimit(100))
}

// CreateCategory tạo danh mục mới với slug sinh từ tên
func (s *CategoryService) CreateCategory(ctx context.Context, input *dto.CategoryCreateInput) (*models.Category, error) {
	category := models.Category{
		ID:   utility.NewUUID(),
		Name: input.Name,
		Slug: CategorySlug(input.Name),
	}

	if _, err := s.InsertOne(ctx, category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory đổi tên danh mục, slug được sinh lại theo tên mới
func (s *CategoryService) UpdateCategory(ctx context.Context, id string, input *dto.CategoryCreateInput) (*models.Category, error) {
	update := bson.M{
		"name": input.Name,
		"slug": CategorySlug(input.Name),
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
