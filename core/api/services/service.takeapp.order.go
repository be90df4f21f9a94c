package services

import (
	"context"
	"fmt"

	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// TakeAppOrderService lưu bản sao đơn hàng từ Take.app để tra cứu nội bộ
type TakeAppOrderService struct {
	*BaseServiceMongoImpl[map[string]interface{}]
}

// NewTakeAppOrderService tạo mới TakeAppOrderService
func NewTakeAppOrderService() (*TakeAppOrderService, error) {
	mirrorCollection, exist := global.RegistryCollections.Get(global.ColNames.TakeAppOrders)
	if !exist {
		return nil, fmt.Errorf("failed to get takeapp_orders collection: %v", common.ErrNotFound)
	}

	return &TakeAppOrderService{
		BaseServiceMongoImpl: NewBaseServiceMongo[map[string]interface{}](mirrorCollection),
	}, nil
}

// MirrorOrders upsert từng đơn hàng theo id từ gateway.
// Đơn thiếu id được bỏ qua, lỗi từng đơn không chặn các đơn còn lại.
func (s *TakeAppOrderService) MirrorOrders(ctx context.Context, orders []map[string]interface{}) {
	for _, order := range orders {
		id := jsonValueToString(order["id"])
		if id == "" {
			continue
		}

		update := bson.M{}
		for key, value := range order {
			if key == "_id" {
				continue
			}
			update[key] = value
		}

		if _, err := s.Upsert(ctx, bson.M{"_id": id}, update); err != nil {
			logger.GetErrorLogger().WithFields(map[string]interface{}{
				"takeapp_order_id": id,
				"error":            err.Error(),
			}).Error("Failed to mirror Take.app order")
		}
	}
}
