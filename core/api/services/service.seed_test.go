package services

import (
	"context"
	"testing"

	models "gameshop_commerce/core/api/models/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func newSeedTestService() (*SeedService, map[string]interface{}) {
	// Store chung khóa theo _id, upsert trùng id không tạo bản ghi mới
	store := map[string]interface{}{}

	upsertInto := func(filter interface{}, data interface{}) {
		store[filter.(bson.M)["_id"].(string)] = data
	}

	svc := &SeedService{
		products: &stubBaseService[models.Product]{},
		categories: &stubBaseService[models.Category]{},
		reviews: &stubBaseService[models.Review]{
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.Review, error) {
				upsertInto(filter, data)
				return data.(models.Review), nil
			},
		},
		faqs: &stubBaseService[models.Faq]{
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.Faq, error) {
				upsertInto(filter, data)
				return data.(models.Faq), nil
			},
		},
		socialLinks: &stubBaseService[models.SocialLink]{
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.SocialLink, error) {
				upsertInto(filter, data)
				return data.(models.SocialLink), nil
			},
		},
	}

	return svc, store
}

func TestSeed_UpsertsDefaults(t *testing.T) {
	svc, store := newSeedTestService()

	require.NoError(t, svc.Seed(context.Background()))

	// 4 social links + 3 reviews + 4 FAQ
	assert.Len(t, store, 11)

	link, ok := store["wa"].(models.SocialLink)
	require.True(t, ok)
	assert.Equal(t, "WhatsApp", link.Platform)

	faq, ok := store["faq1"].(models.Faq)
	require.True(t, ok)
	assert.Equal(t, 0, faq.SortOrder)
}

func TestSeed_Idempotent(t *testing.T) {
	svc, store := newSeedTestService()

	require.NoError(t, svc.Seed(context.Background()))
	require.NoError(t, svc.Seed(context.Background()))

	// Chạy lại không nhân bản dữ liệu vì upsert theo id cố định
	assert.Len(t, store, 11)
}

func TestClearProducts(t *testing.T) {
	productDeletes := 0
	categoryDeletes := 0

	svc, _ := newSeedTestService()
	svc.products = &stubBaseService[models.Product]{
		deleteManyFn: func(ctx context.Context, filter interface{}) (int64, error) {
			productDeletes++
			return 5, nil
		},
	}
	svc.categories = &stubBaseService[models.Category]{
		deleteManyFn: func(ctx context.Context, filter interface{}) (int64, error) {
			categoryDeletes++
			return 2, nil
		},
	}

	require.NoError(t, svc.ClearProducts(context.Background()))
	assert.Equal(t, 1, productDeletes)
	assert.Equal(t, 1, categoryDeletes)
}
