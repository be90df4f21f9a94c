package services

import (
	"context"
	"errors"
	"fmt"

	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm
type ProductService struct {
	*BaseServiceMongoImpl[models.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Product](productCollection),
	}, nil
}

// ListProducts trả về sản phẩm theo bộ lọc, sắp xếp theo sort_order tăng rồi created_at giảm
func (s *ProductService) ListProducts(ctx context.Context, categoryID string, activeOnly bool) ([]models.Product, error) {
	filter := bson.M{}
	if categoryID != "" {
		filter["category_id"] = categoryID
	}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "sort_order", Value: 1}, {Key: "created_at", Value: -1}}).
		SetLimit(1000)
	return s.Find(ctx, filter, opts)
}

// NextSortOrder trả về thứ tự hiển thị kế tiếp cho sản phẩm mới
func (s *ProductService) NextSortOrder(ctx context.Context) (int, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "sort_order", Value: -1}})
	top, err := s.FindOne(ctx, bson.M{}, opts)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return top.SortOrder + 1, nil
}

// CreateProduct tạo sản phẩm mới, tự gán sort_order kế tiếp
func (s *ProductService) CreateProduct(ctx context.Context, input *dto.ProductCreateInput) (*models.Product, error) {
	nextOrder, err := s.NextSortOrder(ctx)
	if err != nil {
		return nil, err
	}

	product := models.Product{
		ID:           utility.NewUUID(),
		Name:         input.Name,
		Description:  input.Description,
		ImageURL:     input.ImageURL,
		CategoryID:   input.CategoryID,
		Variations:   toVariations(input.Variations),
		Tags:         input.Tags,
		SortOrder:    nextOrder,
		CustomFields: toCustomFields(input.CustomFields),
		IsActive:     input.IsActive,
		IsSoldOut:    input.IsSoldOut,
		CreatedAt:    utility.NowISO8601(),
	}

	if _, err := s.InsertOne(ctx, product); err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct cập nhật một sản phẩm, giữ nguyên sort_order và created_at
func (s *ProductService) UpdateProduct(ctx context.Context, id string, input *dto.ProductCreateInput) (*models.Product, error) {
	update := bson.M{
		"name":          input.Name,
		"description":   input.Description,
		"image_url":     input.ImageURL,
		"category_id":   input.CategoryID,
		"variations":    toVariations(input.Variations),
		"tags":          input.Tags,
		"custom_fields": toCustomFields(input.CustomFields),
		"is_active":     input.IsActive,
		"is_sold_out":   input.IsSoldOut,
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reorder gán sort_order theo vị trí trong danh sách id.
// Id không tồn tại được bỏ qua để không chặn các id còn lại.
func (s *ProductService) Reorder(ctx context.Context, productIds []string) error {
	for index, productID := range productIds {
		_, err := s.UpdateOne(ctx, bson.M{"_id": productID}, bson.M{"sort_order": index}, nil)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return err
		}
	}
	return nil
}

func toVariations(inputs []dto.VariationInput) []models.Variation {
	variations := make([]models.Variation, 0, len(inputs))
	for _, v := range inputs {
		id := v.ID
		if id == "" {
			id = utility.NewUUID()
		}
		variations = append(variations, models.Variation{
			ID:            id,
			Name:          v.Name,
			Price:         v.Price,
			OriginalPrice: v.OriginalPrice,
			Description:   v.Description,
		})
	}
	return variations
}

func toCustomFields(inputs []dto.CustomFieldInput) []models.CustomField {
	fields := make([]models.CustomField, 0, len(inputs))
	for _, f := range inputs {
		id := f.ID
		if id == "" {
			id = utility.NewUUID()
		}
		fields = append(fields, models.CustomField{
			ID:          id,
			Label:       f.Label,
			Placeholder: f.Placeholder,
			Required:    f.Required,
		})
	}
	return fields
}
