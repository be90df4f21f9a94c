package services

import (
	"context"
	"errors"
	"fmt"

	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"

	"go.mongodb.org/mongo-driver/bson"
)

// NotificationBarService quản lý thanh thông báo, một document duy nhất với id "main"
type NotificationBarService struct {
	*BaseServiceMongoImpl[models.NotificationBar]
}

// NewNotificationBarService tạo mới NotificationBarService
func NewNotificationBarService() (*NotificationBarService, error) {
	barCollection, exist := global.RegistryCollections.Get(global.ColNames.NotificationBar)
	if !exist {
		return nil, fmt.Errorf("failed to get notification_bar collection: %v", common.ErrNotFound)
	}

	return &NotificationBarService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.NotificationBar](barCollection),
	}, nil
}

// GetActive trả về thanh thông báo nếu đang bật, nil nếu tắt hoặc chưa cấu hình
func (s *NotificationBarService) GetActive(ctx context.Context) (*models.NotificationBar, error) {
	bar, err := s.FindOne(ctx, bson.M{"is_active": true}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bar, nil
}

// Update ghi đè cấu hình thanh thông báo, tạo mới nếu chưa có
func (s *NotificationBarService) Update(ctx context.Context, input *dto.NotificationBarInput) (*models.NotificationBar, error) {
	// Dùng bson.M để field rỗng cũng ghi đè giá trị cũ
	update := bson.M{
		"text":       input.Text,
		"link":       input.Link,
		"is_active":  input.IsActive,
		"bg_color":   input.BgColor,
		"text_color": input.TextColor,
	}

	upserted, err := s.Upsert(ctx, bson.M{"_id": "main"}, update)
	if err != nil {
		return nil, err
	}
	return &upserted, nil
}
