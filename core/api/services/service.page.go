package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// defaultPages là nội dung mặc định khi trang chưa từng được lưu
var defaultPages = map[string]models.Page{
	"about": {
		PageKey: "about",
		Title:   "About Us",
		Content: "<p>Welcome to GameShop Nepal - Your trusted source for digital products since 2021.</p>",
	},
	"terms": {
		PageKey: "terms",
		Title:   "Terms and Conditions",
		Content: "<p>Terms and conditions content here.</p>",
	},
	"faq": {
		PageKey: "faq",
		Title:   "FAQ",
		Content: "",
	},
}

// PageService là cấu trúc chứa các phương thức liên quan đến trang tĩnh
type PageService struct {
	*BaseServiceMongoImpl[models.Page]
}

// NewPageService tạo mới PageService
func NewPageService() (*PageService, error) {
	pageCollection, exist := global.RegistryCollections.Get(global.ColNames.Pages)
	if !exist {
		return nil, fmt.Errorf("failed to get pages collection: %v", common.ErrNotFound)
	}

	return &PageService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Page](pageCollection),
	}, nil
}

// GetPage trả về nội dung trang, fallback về nội dung mặc định nếu chưa lưu
func (s *PageService) GetPage(ctx context.Context, pageKey string) (*models.Page, error) {
	page, err := s.FindOneById(ctx, pageKey)
	if err == nil {
		return &page, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	if def, ok := defaultPages[pageKey]; ok {
		return &def, nil
	}
	return &models.Page{
		PageKey: pageKey,
		Title:   titleFromKey(pageKey),
		Content: "",
	}, nil
}

// titleFromKey sinh tiêu đề hiển thị từ page key, ví dụ "privacy" thành "Privacy"
func titleFromKey(pageKey string) string {
	if pageKey == "" {
		return ""
	}
	return strings.ToUpper(pageKey[:1]) + pageKey[1:]
}

// UpdatePage ghi đè nội dung trang, tạo mới nếu chưa có
func (s *PageService) UpdatePage(ctx context.Context, pageKey string, input *dto.PageUpdateInput) (*models.Page, error) {
	page := models.Page{
		PageKey:   pageKey,
		Title:     input.Title,
		Content:   input.Content,
		UpdatedAt: utility.NowISO8601(),
	}

	upserted, err := s.Upsert(ctx, bson.M{"_id": pageKey}, page)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}
