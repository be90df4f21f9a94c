package services

import (
	"context"
	"testing"

	"gameshop_commerce/config"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// newSyncTestService dựng ReviewService với store in-memory, khóa theo (tên, comment)
func newSyncTestService(raw []RawReview) (*ReviewService, map[string]models.Review) {
	store := map[string]models.Review{}

	reviews := &stubBaseService[models.Review]{
		documentExistsFn: func(ctx context.Context, filter interface{}) (bool, error) {
			f := filter.(bson.M)
			key := f["reviewer_name"].(string) + "|" + f["comment"].(string)
			_, ok := store[key]
			return ok, nil
		},
		insertOneFn: func(ctx context.Context, data models.Review) (models.Review, error) {
			store[data.ReviewerName+"|"+data.Comment] = data
			return data, nil
		},
	}

	syncConfigs := map[string]models.SyncConfig{}
	trustpilot := &TrustpilotService{
		fetcher: &stubTrustpilotFetcher{reviews: raw},
		config: &stubBaseService[models.SyncConfig]{
			findOneFn: func(ctx context.Context, filter interface{}, _ *options.FindOneOptions) (models.SyncConfig, error) {
				key := filter.(bson.M)["key"].(string)
				if cfg, ok := syncConfigs[key]; ok {
					return cfg, nil
				}
				return models.SyncConfig{}, common.ErrNotFound
			},
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.SyncConfig, error) {
				cfg := data.(models.SyncConfig)
				syncConfigs[cfg.Key] = cfg
				return cfg, nil
			},
		},
		cfg: &config.Configuration{TrustpilotDomain: "gameshopnepal.com"},
	}

	return &ReviewService{BaseServiceMongo: reviews, trustpilot: trustpilot}, store
}

func TestSyncTrustpilot_InsertsNewReviews(t *testing.T) {
	raw := []RawReview{
		{ReviewerName: "Sita Thapa", Rating: 5, Comment: "Great", ReviewDate: "2025-01-15"},
		{ReviewerName: "Hari KC", Rating: 4, Comment: "Fast", ReviewDate: "2025-01-16"},
	}

	svc, store := newSyncTestService(raw)

	result, err := svc.SyncTrustpilot(context.Background())
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.SyncedCount)
	assert.Equal(t, 2, result.TotalFound)
	assert.Equal(t, "Synced 2 new reviews from Trustpilot", result.Message)

	require.Len(t, store, 2)
	saved := store["Sita Thapa|Great"]
	assert.Equal(t, "trustpilot", saved.Source)
	assert.Equal(t, 5, saved.Rating)
	assert.NotEmpty(t, saved.ID)
}

func TestSyncTrustpilot_Idempotent(t *testing.T) {
	raw := []RawReview{
		{ReviewerName: "Sita Thapa", Rating: 5, Comment: "Great", ReviewDate: "2025-01-15"},
	}

	svc, store := newSyncTestService(raw)

	first, err := svc.SyncTrustpilot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, first.SyncedCount)

	// Sync lần hai với cùng dữ liệu không tạo bản ghi mới
	second, err := svc.SyncTrustpilot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, second.SyncedCount)
	assert.Equal(t, 1, second.TotalFound)
	assert.Equal(t, "Synced 0 new reviews from Trustpilot", second.Message)
	assert.Len(t, store, 1)
}

func TestSyncTrustpilot_AlwaysWritesLastSync(t *testing.T) {
	svc, _ := newSyncTestService(nil)

	result, err := svc.SyncTrustpilot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.SyncedCount)

	// last_sync được ghi kể cả khi không có review mới
	assert.NotEmpty(t, svc.trustpilot.GetLastSync(context.Background()))
}

func TestTrustpilotStatus(t *testing.T) {
	svc, _ := newSyncTestService(nil)
	svc.BaseServiceMongo = &stubBaseService[models.Review]{
		countDocumentsFn: func(ctx context.Context, filter interface{}) (int64, error) {
			assert.Equal(t, bson.M{"source": "trustpilot"}, filter)
			return 7, nil
		},
	}

	status, err := svc.TrustpilotStatus(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "gameshopnepal.com", status.Domain)
	assert.Equal(t, int64(7), status.TrustpilotReviewsCount)
	assert.False(t, status.APIKeyConfigured)
}
