package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"gameshop_commerce/config"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/logger"
)

// TakeAppCreateOrderResult là kết quả tạo đơn trên Take.app.
// ID và Number được chuẩn hóa về string vì API có thể trả về số hoặc chuỗi.
type TakeAppCreateOrderResult struct {
	ID     string                 // ID đơn hàng trên gateway
	Number string                 // Số đơn hàng trên gateway
	Raw    map[string]interface{} // Payload gốc
}

// TakeAppClient là client gọi Take.app platform API.
// Interface để có thể thay bằng double trong test.
type TakeAppClient interface {
	CreateOrder(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error)
	GetStore(ctx context.Context) (map[string]interface{}, error)
	GetOrders(ctx context.Context) ([]map[string]interface{}, error)
	GetInventory(ctx context.Context) (interface{}, error)
}

type takeAppClientImpl struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	storeAlias string
}

// NewTakeAppClient tạo client Take.app từ cấu hình
func NewTakeAppClient(cfg *config.Configuration) TakeAppClient {
	return &takeAppClientImpl{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		baseURL:    cfg.TakeAppBaseURL,
		apiKey:     cfg.TakeAppAPIKey,
		storeAlias: cfg.TakeAppStoreAlias,
	}
}

// endpoint ghép URL với api_key query param (cách xác thực của Take.app platform API)
func (c *takeAppClientImpl) endpoint(path string) string {
	return fmt.Sprintf("%s%s?api_key=%s", c.baseURL, path, c.apiKey)
}

// CreateOrder tạo đơn hàng trên Take.app.
// Non-2xx được coi là lỗi upstream, body được giữ lại để debug.
func (c *takeAppClientImpl) CreateOrder(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint("/orders"), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("http new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	logger.GetAppLogger().WithField("payload", payload).Info("Creating Take.app order")

	// Chi tiết lỗi upstream (body, URL chứa api_key) chỉ ghi log,
	// client chỉ nhận thông báo chung
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Take.app request failed")
		return nil, common.NewError(common.ErrCodeUpstreamNetwork, "Không kết nối được Take.app", common.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	logger.GetAppLogger().WithFields(map[string]interface{}{
		"status": resp.StatusCode,
		"body":   string(respBody),
	}).Info("Take.app response")

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, common.NewError(common.ErrCodeUpstreamResponse, "Tạo đơn hàng trên Take.app thất bại", common.StatusBadGateway, nil)
	}

	// Decode với UseNumber để id/number dạng số không bị mất độ chính xác
	var raw map[string]interface{}
	dec := json.NewDecoder(bytes.NewReader(respBody))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Take.app returned invalid body")
		return nil, common.NewError(common.ErrCodeUpstreamResponse, "Take.app trả về body không hợp lệ", common.StatusBadGateway, nil)
	}

	return &TakeAppCreateOrderResult{
		ID:     jsonValueToString(raw["id"]),
		Number: jsonValueToString(raw["number"]),
		Raw:    raw,
	}, nil
}

// GetStore lấy thông tin store (endpoint /me)
func (c *takeAppClientImpl) GetStore(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.getJSON(ctx, "/me", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetOrders lấy danh sách đơn hàng trên gateway
func (c *takeAppClientImpl) GetOrders(ctx context.Context) ([]map[string]interface{}, error) {
	// API có thể trả về mảng trực tiếp hoặc bọc trong {"data": [...]}
	var raw interface{}
	if err := c.getJSON(ctx, "/orders", &raw); err != nil {
		return nil, err
	}

	switch v := raw.(type) {
	case []interface{}:
		return toMapSlice(v), nil
	case map[string]interface{}:
		if data, ok := v["data"].([]interface{}); ok {
			return toMapSlice(data), nil
		}
		return []map[string]interface{}{v}, nil
	default:
		return []map[string]interface{}{}, nil
	}
}

// GetInventory lấy thông tin tồn kho trên gateway
func (c *takeAppClientImpl) GetInventory(ctx context.Context) (interface{}, error) {
	var result interface{}
	if err := c.getJSON(ctx, "/inventory", &result); err != nil {
		return nil, err
	}
	return result, nil
}

// getJSON thực hiện GET và decode JSON, non-2xx là lỗi upstream
func (c *takeAppClientImpl) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path), nil)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Take.app request failed")
		return common.NewError(common.ErrCodeUpstreamNetwork, "Không kết nối được Take.app", common.StatusBadGateway, nil)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.GetErrorLogger().WithFields(map[string]interface{}{
			"status": resp.StatusCode,
			"body":   string(respBody),
		}).Error("Take.app returned error response")
		return common.NewError(common.ErrCodeUpstreamResponse, "Take.app trả về lỗi", common.StatusBadGateway, nil)
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Take.app returned invalid body")
		return common.NewError(common.ErrCodeUpstreamResponse, "Take.app trả về body không hợp lệ", common.StatusBadGateway, nil)
	}
	return nil
}

// jsonValueToString chuẩn hóa giá trị JSON (string/number) về string
func jsonValueToString(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// toMapSlice lọc các phần tử dạng object từ mảng JSON
func toMapSlice(items []interface{}) []map[string]interface{} {
	result := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			result = append(result, m)
		}
	}
	return result
}
