package services

import (
	"context"
	"fmt"

	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ReviewService quản lý đánh giá của khách hàng, gồm cả đồng bộ từ Trustpilot
type ReviewService struct {
	BaseServiceMongo[models.Review]
	trustpilot *TrustpilotService
}

// NewReviewService tạo mới ReviewService
func NewReviewService(trustpilot *TrustpilotService) (*ReviewService, error) {
	reviewCollection, exist := global.RegistryCollections.Get(global.ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("failed to get reviews collection: %v", common.ErrNotFound)
	}

	return &ReviewService{
		BaseServiceMongo: NewBaseServiceMongo[models.Review](reviewCollection),
		trustpilot:       trustpilot,
	}, nil
}

// ListReviews trả về toàn bộ đánh giá, mới nhất trước
func (s *ReviewService) ListReviews(ctx context.Context) ([]models.Review, error) {
	opts := options.Find().SetSort(bson.D{{Key: "review_date", Value: -1}}).SetLimit(1000)
	return s.Find(ctx, bson.M{}, opts)
}

// CreateReview tạo đánh giá thủ công từ admin
func (s *ReviewService) CreateReview(ctx context.Context, input *dto.ReviewCreateInput) (*models.Review, error) {
	reviewDate := input.ReviewDate
	if reviewDate == "" {
		reviewDate = utility.NowISO8601()
	}

	review := models.Review{
		ID:           utility.NewUUID(),
		ReviewerName: input.ReviewerName,
		Rating:       input.Rating,
		Comment:      input.Comment,
		ReviewDate:   reviewDate,
		CreatedAt:    utility.NowISO8601(),
	}

	if _, err := s.InsertOne(ctx, review); err != nil {
		return nil, err
	}
	return &review, nil
}

// UpdateReview cập nhật một đánh giá theo id
func (s *ReviewService) UpdateReview(ctx context.Context, id string, input *dto.ReviewCreateInput) (*models.Review, error) {
	update := bson.M{
		"reviewer_name": input.ReviewerName,
		"rating":        input.Rating,
		"comment":       input.Comment,
	}
	if input.ReviewDate != "" {
		update["review_date"] = input.ReviewDate
	}
	updated, err := s.UpdateById(ctx, id, update)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// SyncTrustpilot kéo đánh giá từ trang Trustpilot và merge vào store.
// Chạy lại nhiều lần an toàn, review đã có không bị ghi trùng.
func (s *ReviewService) SyncTrustpilot(ctx context.Context) (*dto.ReviewSyncResult, error) {
	rawReviews, err := s.trustpilot.fetcher.FetchReviews(ctx)
	if err != nil {
		return nil, err
	}

	syncedCount := 0
	for _, raw := range rawReviews {
		filter := bson.M{
			"reviewer_name": raw.ReviewerName,
			"comment":       raw.Comment,
			"source":        "trustpilot",
		}

		exists, err := s.DocumentExists(ctx, filter)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		review := models.Review{
			ID:           utility.NewShortID("tp-"),
			ReviewerName: raw.ReviewerName,
			Rating:       raw.Rating,
			Comment:      raw.Comment,
			ReviewDate:   raw.ReviewDate,
			CreatedAt:    utility.NowISO8601(),
			Source:       "trustpilot",
		}

		if _, err := s.InsertOne(ctx, review); err != nil {
			// Unique index có thể bắt trùng trước DocumentExists khi sync chạy song song
			if convErr, ok := err.(*common.Error); ok && convErr.StatusCode == common.StatusConflict {
				continue
			}
			return nil, err
		}
		syncedCount++
	}

	// Luôn ghi last_sync kể cả khi không có review mới
	if err := s.trustpilot.SetLastSync(ctx, utility.NowISO8601()); err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"synced_count": syncedCount,
		"total_found":  len(rawReviews),
	}).Info("Trustpilot sync completed")

	return &dto.ReviewSyncResult{
		Success:     true,
		SyncedCount: syncedCount,
		TotalFound:  len(rawReviews),
		Message:     fmt.Sprintf("Synced %d new reviews from Trustpilot", syncedCount),
	}, nil
}

// TrustpilotStatus trả về trạng thái đồng bộ hiện tại
func (s *ReviewService) TrustpilotStatus(ctx context.Context) (*dto.ReviewSyncStatus, error) {
	count, err := s.CountDocuments(ctx, bson.M{"source": "trustpilot"})
	if err != nil {
		return nil, err
	}

	return &dto.ReviewSyncStatus{
		Domain:                 s.trustpilot.cfg.TrustpilotDomain,
		LastSync:               s.trustpilot.GetLastSync(ctx),
		TrustpilotReviewsCount: count,
		APIKeyConfigured:       s.trustpilot.cfg.TrustpilotAPIKey != "",
	}, nil
}
