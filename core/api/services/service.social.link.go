package services

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SocialLinkService là cấu trúc chứa các phương thức liên quan đến liên kết mạng xã hội
type SocialLinkService struct {
	*BaseServiceMongoImpl[models.SocialLink]
}

// NewSocialLinkService tạo mới SocialLinkService
func NewSocialLinkService() (*SocialLinkService, error) {
	linkCollection, exist := global.RegistryCollections.Get(global.ColNames.SocialLinks)
	if !exist {
		return nil, fmt.Errorf("failed to get social_links collection: %v", common.ErrNotFound)
	}

	return &SocialLinkService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.SocialLink](linkCollection),
	}, nil
}

// ListSocialLinks trả về toàn bộ liên kết mạng xã hội
func (s *SocialLinkService) ListSocialLinks(ctx context.Context) ([]models.SocialLink, error) {
	return s.Find(ctx, bson.M{}, options.Find().SetLimit(100))
}

// CreateSocialLink tạo liên kết mới
func (s *SocialLinkService) CreateSocialLink(ctx context.Context, input *dto.SocialLinkCreateInput) (*models.SocialLink, error) {
	link := models.SocialLink{
		ID:       utility.NewUUID(),
		Platform: input.Platform,
		URL:      input.URL,
		Icon:     input.Icon,
	}

	if _, err := s.InsertOne(ctx, link); err != nil {
		return nil, err
	}
	return &link, nil
}

// UpdateSocialLink cập nhật một liên kết theo id
func (s *SocialLinkService) UpdateSocialLink(ctx context.Context, id string, input *dto.SocialLinkCreateInput) (*models.SocialLink, error) {
	update := bson.M{
		"platform": input.Platform,
		"url":      input.URL,
		"icon":     input.Icon,
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
