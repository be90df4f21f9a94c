package services

import (
	"context"
	"errors"
	"fmt"

	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"

	"go.mongodb.org/mongo-driver/bson"
)

// SiteSettingsService quản lý cấu hình chung của site, một document duy nhất với id "main"
type SiteSettingsService struct {
	*BaseServiceMongoImpl[models.SiteSettings]
}

// NewSiteSettingsService tạo mới SiteSettingsService
func NewSiteSettingsService() (*SiteSettingsService, error) {
	settingsCollection, exist := global.RegistryCollections.Get(global.ColNames.SiteSettings)
	if !exist {
		return nil, fmt.Errorf("failed to get site_settings collection: %v", common.ErrNotFound)
	}

	return &SiteSettingsService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.SiteSettings](settingsCollection),
	}, nil
}

// GetSettings trả về cấu hình hiện tại, fallback về mặc định nếu chưa lưu
func (s *SiteSettingsService) GetSettings(ctx context.Context) (models.SiteSettings, error) {
	settings, err := s.FindOneById(ctx, "main")
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.SiteSettings{
				"id":                       "main",
				"notification_bar_enabled": true,
				"chat_enabled":             true,
			}, nil
		}
		return nil, err
	}
	return normalizeSettings(settings), nil
}

// UpdateSettings ghi đè cấu hình, tạo mới nếu chưa có.
// Key lạ được giữ nguyên vì cấu hình là schemaless.
func (s *SiteSettingsService) UpdateSettings(ctx context.Context, settings map[string]interface{}) (models.SiteSettings, error) {
	update := bson.M{}
	for key, value := range settings {
		if key == "id" || key == "_id" {
			continue
		}
		update[key] = value
	}

	upserted, err := s.Upsert(ctx, bson.M{"_id": "main"}, update)
	if err != nil {
		return nil, err
	}
	return normalizeSettings(upserted), nil
}

// normalizeSettings đổi khóa _id nội bộ thành id trước khi trả ra ngoài
func normalizeSettings(settings models.SiteSettings) models.SiteSettings {
	result := models.SiteSettings{}
	for key, value := range settings {
		if key == "_id" {
			result["id"] = value
			continue
		}
		result[key] = value
	}
	if _, ok := result["id"]; !ok {
		result["id"] = "main"
	}
	return result
}
