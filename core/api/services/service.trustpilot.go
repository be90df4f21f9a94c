package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"time"

	"gameshop_commerce/config"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// browserUserAgent giả lập trình duyệt để Trustpilot không chặn request
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// RawReview là một đánh giá thô trích được từ trang Trustpilot
type RawReview struct {
	ReviewerName string
	Rating       int
	Comment      string
	ReviewDate   string
}

// TrustpilotFetcher lấy đánh giá từ Trustpilot.
// Interface để test không cần gọi mạng thật.
type TrustpilotFetcher interface {
	FetchReviews(ctx context.Context) ([]RawReview, error)
	FindBusinessUnitID(ctx context.Context) (string, error)
}

// TrustpilotService quản lý đồng bộ đánh giá từ Trustpilot
type TrustpilotService struct {
	fetcher TrustpilotFetcher
	config  BaseServiceMongo[models.SyncConfig]
	cfg     *config.Configuration
}

// NewTrustpilotService tạo mới TrustpilotService
func NewTrustpilotService(cfg *config.Configuration, fetcher TrustpilotFetcher) (*TrustpilotService, error) {
	configCollection, exist := global.RegistryCollections.Get(global.ColNames.TrustpilotConfig)
	if !exist {
		return nil, fmt.Errorf("failed to get trustpilot_config collection: %v", common.ErrNotFound)
	}

	return &TrustpilotService{
		fetcher: fetcher,
		config:  NewBaseServiceMongo[models.SyncConfig](configCollection),
		cfg:     cfg,
	}, nil
}

// GetBusinessUnitID trả về business unit ID của domain, ưu tiên giá trị đã cache.
// Kết quả tra cứu mới được ghi cache để các lần sau không gọi API nữa.
func (s *TrustpilotService) GetBusinessUnitID(ctx context.Context) (string, error) {
	cached, err := s.config.FindOne(ctx, bson.M{"key": "business_unit_id"}, nil)
	if err == nil && cached.Value != "" {
		return cached.Value, nil
	}

	buid, err := s.fetcher.FindBusinessUnitID(ctx)
	if err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Error getting business unit ID")
		return "", nil
	}
	if buid == "" {
		return "", nil
	}

	_, err = s.config.Upsert(ctx, bson.M{"key": "business_unit_id"}, models.SyncConfig{
		Key:   "business_unit_id",
		Value: buid,
	})
	if err != nil {
		return "", err
	}
	return buid, nil
}

// SetLastSync ghi thời điểm đồng bộ gần nhất
func (s *TrustpilotService) SetLastSync(ctx context.Context, value string) error {
	_, err := s.config.Upsert(ctx, bson.M{"key": "last_sync"}, models.SyncConfig{
		Key:   "last_sync",
		Value: value,
	})
	return err
}

// GetLastSync trả về thời điểm đồng bộ gần nhất, chuỗi rỗng nếu chưa từng đồng bộ
func (s *TrustpilotService) GetLastSync(ctx context.Context) string {
	cfg, err := s.config.FindOne(ctx, bson.M{"key": "last_sync"}, nil)
	if err != nil {
		return ""
	}
	return cfg.Value
}

// ==================== HTTP fetcher ====================

var (
	jsonLdPattern   = regexp.MustCompile(`(?s)<script type="application/ld\+json"[^>]*>(.*?)</script>`)
	nextDataPattern = regexp.MustCompile(`(?s)<script id="__NEXT_DATA__"[^>]*>(.*?)</script>`)
)

type httpTrustpilotFetcher struct {
	httpClient  *http.Client
	pageBaseURL string // Trang review công khai
	apiBaseURL  string // API chính thức của Trustpilot
	domain      string
	apiKey      string
}

// NewTrustpilotFetcher tạo fetcher gọi Trustpilot thật
func NewTrustpilotFetcher(cfg *config.Configuration) TrustpilotFetcher {
	return &httpTrustpilotFetcher{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		pageBaseURL: "https://www.trustpilot.com",
		apiBaseURL:  "https://api.trustpilot.com",
		domain:      cfg.TrustpilotDomain,
		apiKey:      cfg.TrustpilotAPIKey,
	}
}

// FindBusinessUnitID tra cứu business unit ID qua API chính thức, cần API key
func (f *httpTrustpilotFetcher) FindBusinessUnitID(ctx context.Context) (string, error) {
	if f.apiKey == "" {
		return "", nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	url := fmt.Sprintf("%s/v1/business-units/find?name=%s", f.apiBaseURL, f.domain)
	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("apikey", f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", nil
	}

	var data struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", err
	}
	return data.ID, nil
}

// FetchReviews tải trang đánh giá công khai và trích review từ HTML.
// Lỗi mạng hoặc trang thay đổi cấu trúc trả về danh sách rỗng, không chặn sync.
func (f *httpTrustpilotFetcher) FetchReviews(ctx context.Context) ([]RawReview, error) {
	url := fmt.Sprintf("%s/review/%s", f.pageBaseURL, f.domain)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return []RawReview{}, nil
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Error scraping Trustpilot")
		return []RawReview{}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return []RawReview{}, nil
	}

	html, err := io.ReadAll(resp.Body)
	if err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Error scraping Trustpilot")
		return []RawReview{}, nil
	}

	return ExtractReviewsFromHTML(string(html)), nil
}

// ExtractReviewsFromHTML trích đánh giá từ HTML trang Trustpilot.
// Đọc cả JSON-LD LocalBusiness và __NEXT_DATA__, block JSON hỏng được bỏ qua.
func ExtractReviewsFromHTML(html string) []RawReview {
	reviews := make([]RawReview, 0)

	for _, match := range jsonLdPattern.FindAllStringSubmatch(html, -1) {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(match[1]), &data); err != nil {
			continue
		}
		if data["@type"] != "LocalBusiness" {
			continue
		}
		items, ok := data["review"].([]interface{})
		if !ok {
			continue
		}
		for _, item := range items {
			review, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			reviews = append(reviews, RawReview{
				ReviewerName: nestedString(review, "author", "name", "Anonymous"),
				Rating:       nestedRating(review, "reviewRating", "ratingValue"),
				Comment:      stringOr(review["reviewBody"], ""),
				ReviewDate:   stringOr(review["datePublished"], utility.NowISO8601()),
			})
		}
	}

	for _, match := range nextDataPattern.FindAllStringSubmatch(html, -1) {
		var data map[string]interface{}
		if err := json.Unmarshal([]byte(match[1]), &data); err != nil {
			continue
		}
		props, _ := data["props"].(map[string]interface{})
		pageProps, _ := props["pageProps"].(map[string]interface{})
		items, _ := pageProps["reviews"].([]interface{})

		for _, item := range items {
			review, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			dates, _ := review["dates"].(map[string]interface{})
			publishedDate := stringOr(dates["publishedDate"], "")
			if publishedDate == "" {
				publishedDate = stringOr(dates["experiencedDate"], "")
			}
			if publishedDate == "" {
				publishedDate = utility.NowISO8601()
			}

			comment := stringOr(review["text"], "")
			if comment == "" {
				comment = stringOr(review["title"], "")
			}

			reviews = append(reviews, RawReview{
				ReviewerName: nestedString(review, "consumer", "displayName", "Anonymous"),
				Rating:       intOr(review["rating"], 5),
				Comment:      comment,
				ReviewDate:   publishedDate,
			})
		}
	}

	return reviews
}

// nestedString đọc obj[outer][inner] dạng string với giá trị mặc định
func nestedString(obj map[string]interface{}, outer, inner, fallback string) string {
	nested, _ := obj[outer].(map[string]interface{})
	if s := stringOr(nested[inner], ""); s != "" {
		return s
	}
	return fallback
}

// nestedRating đọc obj[outer][inner] dạng điểm đánh giá, chấp nhận cả string lẫn number
func nestedRating(obj map[string]interface{}, outer, inner string) int {
	nested, _ := obj[outer].(map[string]interface{})
	return intOr(nested[inner], 5)
}

func stringOr(v interface{}, fallback string) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return fallback
}

func intOr(v interface{}, fallback int) int {
	switch val := v.(type) {
	case float64:
		return int(val)
	case int:
		return val
	case string:
		var n int
		if _, err := fmt.Sscanf(val, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}
