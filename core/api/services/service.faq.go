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

// FaqService là cấu trúc chứa các phương thức liên quan đến câu hỏi thường gặp
type FaqService struct {
	*BaseServiceMongoImpl[models.Faq]
}

// NewFaqService tạo mới FaqService
func NewFaqService() (*FaqService, error) {
	faqCollection, exist := global.RegistryCollections.Get(global.ColNames.Faqs)
	if !exist {
		return nil, fmt.Errorf("failed to get faqs collection: %v", common.ErrNotFound)
	}

	return &FaqService{
		BaseServiceMongoImpl: NewBaseServiceMongo[models.Faq](faqCollection),
	}, nil
}

// ListFaqs trả về toàn bộ câu hỏi theo thứ tự hiển thị
func (s *FaqService) ListFaqs(ctx context.Context) ([]models.Faq, error) {
	opts := options.Find().SetSort(bson.D{{Key: "sort_order", Value: 1}}).SetLimit(100)
	return s.Find(ctx, bson.M{}, opts)
}

// CreateFaq tạo câu hỏi mới, tự gán sort_order kế tiếp
func (s *FaqService) CreateFaq(ctx context.Context, input *dto.FaqCreateInput) (*models.Faq, error) {
	nextOrder := 0
	opts := options.FindOne().SetSort(bson.D{{Key: "sort_order", Value: -1}})
	top, err := s.FindOne(ctx, bson.M{}, opts)
	if err == nil {
		nextOrder = top.SortOrder + 1
	} else if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	faq := models.Faq{
		ID:        utility.NewUUID(),
		Question:  input.Question,
		Answer:    input.Answer,
		SortOrder: nextOrder,
	}

	if _, err := s.InsertOne(ctx, faq); err != nil {
		return nil, err
	}
	return &faq, nil
}

// UpdateFaq cập nhật nội dung một câu hỏi
func (s *FaqService) UpdateFaq(ctx context.Context, id string, input *dto.FaqCreateInput) (*models.Faq, error) {
	update := bson.M{
		"question": input.Question,
		"answer":   input.Answer,
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Reorder gán sort_order theo vị trí trong danh sách id
func (s *FaqService) Reorder(ctx context.Context, faqIds []string) error {
	for index, faqID := range faqIds {
		_, err := s.UpdateOne(ctx, bson.M{"_id": faqID}, bson.M{"sort_order": index}, nil)
		if err != nil && !errors.Is(err, common.ErrNotFound) {
			return err
		}
	}
	return nil
}
