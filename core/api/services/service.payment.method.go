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

// PaymentMethodService là cấu trúc chứa các phương thức liên quan đến phương thức thanh toán
type PaymentMethodService struct {
	*BaseServiceMongoImpl[models.PaymentMethod]
}

// NewPaymentMethodService tạo mới PaymentMethodService
func NewPaymentMethodService() (*PaymentMethodService, error) {
	methodCollection, exist := global.RegistryCollections.Get(global.ColNames.PaymentMethods)
	if !exist {
		return nil, fmt.Errorf("failed to get payment_methods collection: %v", common.ErrNotFound)
	}

	return &PaymentMethodService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.PaymentMethod](methodCollection),
	}, nil
}

// ListPaymentMethods trả về phương thức thanh toán theo thứ tự hiển thị.
// activeOnly lọc lại các phương thức đang bật cho trang công khai.
func (s *PaymentMethodService) ListPaymentMethods(ctx context.Context, activeOnly bool) ([]models.PaymentMethod, error) {
	filter := bson.M{}
	if activeOnly {
		filter["is_active"] = true
	}

	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}).SetLimit(100)
	return s.Find(ctx, filter, opts)
}

// CreatePaymentMethod tạo phương thức thanh toán mới
func (s *PaymentMethodService) CreatePaymentMethod(ctx context.Context, input *dto.PaymentMethodInput) (*models.PaymentMethod, error) {
	method := models.PaymentMethod{
		ID:        utility.NewUUID(),
		Name:      input.Name,
		ImageURL:  input.ImageURL,
		IsActive:  input.IsActive,
		SortOrder: input.SortOrder,
	}

	if _, err := s.InsertOne(ctx, method); err != nil {
		return nil, err
	}
	return &method, nil
}

// UpdatePaymentMethod ghi đè một phương thức thanh toán theo id
func (s *PaymentMethodService) UpdatePaymentMethod(ctx context.Context, id string, input *dto.PaymentMethodInput) (*models.PaymentMethod, error) {
	update := bson.M{
		"name":       input.Name,
		"image_url":  input.ImageURL,
		"is_active":  input.IsActive,
		"sort_order": input.SortOrder,
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
