package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameshop_commerce/config"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const jsonLdHTML = `<html><head>
<script type="application/ld+json">
{
  "@type": "LocalBusiness",
  "review": [
    {
      "author": {"name": "Sita Thapa"},
      "reviewRating": {"ratingValue": "4"},
      "reviewBody": "Very fast delivery",
      "datePublished": "2025-01-15T10:00:00Z"
    },
    {
      "reviewRating": {"ratingValue": 3},
      "reviewBody": "Okay service"
    }
  ]
}
</script>
</head><body></body></html>`

const nextDataHTML = `<html><body>
<script id="__NEXT_DATA__" type="application/json">
{
  "props": {
    "pageProps": {
      "reviews": [
        {
          "consumer": {"displayName": "Hari KC"},
          "rating": 5,
          "text": "Best gaming store in Nepal",
          "dates": {"publishedDate": "2025-02-01T08:30:00Z"}
        },
        {
          "consumer": {},
          "title": "Good",
          "dates": {"experiencedDate": "2025-02-02"}
        }
      ]
    }
  }
}
</script>
</body></html>`

func TestExtractReviewsFromHTML_JSONLd(t *testing.T) {
	reviews := ExtractReviewsFromHTML(jsonLdHTML)
	require.Len(t, reviews, 2)

	assert.Equal(t, "Sita Thapa", reviews[0].ReviewerName)
	assert.Equal(t, 4, reviews[0].Rating)
	assert.Equal(t, "Very fast delivery", reviews[0].Comment)
	assert.Equal(t, "2025-01-15T10:00:00Z", reviews[0].ReviewDate)

	// Thiếu author thì dùng Anonymous, thiếu datePublished thì lấy thời điểm hiện tại
	assert.Equal(t, "Anonymous", reviews[1].ReviewerName)
	assert.Equal(t, 3, reviews[1].Rating)
	assert.NotEmpty(t, reviews[1].ReviewDate)
}

func TestExtractReviewsFromHTML_NextData(t *testing.T) {
	reviews := ExtractReviewsFromHTML(nextDataHTML)
	require.Len(t, reviews, 2)

	assert.Equal(t, "Hari KC", reviews[0].ReviewerName)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "Best gaming store in Nepal", reviews[0].Comment)
	assert.Equal(t, "2025-02-01T08:30:00Z", reviews[0].ReviewDate)

	// Không có text thì lấy title, không có publishedDate thì lấy experiencedDate
	assert.Equal(t, "Anonymous", reviews[1].ReviewerName)
	assert.Equal(t, "Good", reviews[1].Comment)
	assert.Equal(t, "2025-02-02", reviews[1].ReviewDate)
	assert.Equal(t, 5, reviews[1].Rating, "rating thiếu mặc định là 5")
}

func TestExtractReviewsFromHTML_IgnoresBrokenBlocks(t *testing.T) {
	html := `<script type="application/ld+json">{not valid json</script>
<script type="application/ld+json">{"@type": "Organization", "review": []}</script>
<script id="__NEXT_DATA__">also broken</script>`

	reviews := ExtractReviewsFromHTML(html)
	assert.Empty(t, reviews)
}

func TestExtractReviewsFromHTML_Empty(t *testing.T) {
	assert.Empty(t, ExtractReviewsFromHTML(""))
	assert.Empty(t, ExtractReviewsFromHTML("<html><body>No scripts here</body></html>"))
}

func TestGetBusinessUnitID_UsesCache(t *testing.T) {
	upsertCalls := 0
	svc := &TrustpilotService{
		fetcher: &stubTrustpilotFetcher{buid: "unit-from-api"},
		config: &stubBaseService[models.SyncConfig]{
			findOneFn: func(ctx context.Context, filter interface{}, _ *options.FindOneOptions) (models.SyncConfig, error) {
				return models.SyncConfig{Key: "business_unit_id", Value: "cached-unit"}, nil
			},
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.SyncConfig, error) {
				upsertCalls++
				return models.SyncConfig{}, nil
			},
		},
		cfg: &config.Configuration{TrustpilotDomain: "gameshopnepal.com"},
	}

	buid, err := svc.GetBusinessUnitID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "cached-unit", buid)
	assert.Equal(t, 0, upsertCalls, "giá trị đã cache thì không ghi lại")
}

func TestGetBusinessUnitID_FetchesAndCaches(t *testing.T) {
	var cached models.SyncConfig
	svc := &TrustpilotService{
		fetcher: &stubTrustpilotFetcher{buid: "unit-from-api"},
		config: &stubBaseService[models.SyncConfig]{
			findOneFn: func(ctx context.Context, filter interface{}, _ *options.FindOneOptions) (models.SyncConfig, error) {
				return models.SyncConfig{}, common.ErrNotFound
			},
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.SyncConfig, error) {
				cached = data.(models.SyncConfig)
				return cached, nil
			},
		},
		cfg: &config.Configuration{TrustpilotDomain: "gameshopnepal.com"},
	}

	buid, err := svc.GetBusinessUnitID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unit-from-api", buid)
	assert.Equal(t, "business_unit_id", cached.Key)
	assert.Equal(t, "unit-from-api", cached.Value)
}

func TestLastSyncRoundtrip(t *testing.T) {
	store := map[string]models.SyncConfig{}
	svc := &TrustpilotService{
		fetcher: &stubTrustpilotFetcher{},
		config: &stubBaseService[models.SyncConfig]{
			findOneFn: func(ctx context.Context, filter interface{}, _ *options.FindOneOptions) (models.SyncConfig, error) {
				key := filter.(bson.M)["key"].(string)
				if cfg, ok := store[key]; ok {
					return cfg, nil
				}
				return models.SyncConfig{}, common.ErrNotFound
			},
			upsertFn: func(ctx context.Context, filter interface{}, data interface{}) (models.SyncConfig, error) {
				cfg := data.(models.SyncConfig)
				store[cfg.Key] = cfg
				return cfg, nil
			},
		},
		cfg: &config.Configuration{},
	}

	assert.Equal(t, "", svc.GetLastSync(context.Background()), "chưa từng sync thì trả về rỗng")

	require.NoError(t, svc.SetLastSync(context.Background(), "2025-03-01T00:00:00Z"))
	assert.Equal(t, "2025-03-01T00:00:00Z", svc.GetLastSync(context.Background()))
}

func newTestFetcher(baseURL string) *httpTrustpilotFetcher {
	return &httpTrustpilotFetcher{
		httpClient:  &http.Client{},
		pageBaseURL: baseURL,
		apiBaseURL:  baseURL,
		domain:      "gameshopnepal.com",
	}
}

func TestFetchReviews_ParsesPage(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		assert.Equal(t, "/review/gameshopnepal.com", r.URL.Path)
		_, _ = w.Write([]byte(jsonLdHTML))
	}))
	defer srv.Close()

	reviews, err := newTestFetcher(srv.URL).FetchReviews(context.Background())
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, "Sita Thapa", reviews[0].ReviewerName)
	assert.Equal(t, browserUserAgent, gotUA, "request phải giả lập trình duyệt")
}

func TestFetchReviews_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	// Trang không tồn tại không được chặn sync, trả về danh sách rỗng
	reviews, err := newTestFetcher(srv.URL).FetchReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestFetchReviews_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	reviews, err := newTestFetcher(srv.URL).FetchReviews(context.Background())
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestFindBusinessUnitID_UsesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/business-units/find", r.URL.Path)
		assert.Equal(t, "tp-key", r.Header.Get("apikey"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"unit-1"}`))
	}))
	defer srv.Close()

	fetcher := newTestFetcher(srv.URL)
	fetcher.apiKey = "tp-key"

	buid, err := fetcher.FindBusinessUnitID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "unit-1", buid)
}

func TestFindBusinessUnitID_NoAPIKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	buid, err := newTestFetcher(srv.URL).FindBusinessUnitID(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "", buid)
	assert.Equal(t, 0, calls, "không có API key thì không gọi API")
}
