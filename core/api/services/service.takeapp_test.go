package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"gameshop_commerce/core/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonValueToString(t *testing.T) {
	// Take.app trả id khi thì number khi thì string, cả hai phải về cùng một dạng
	assert.Equal(t, "", jsonValueToString(nil))
	assert.Equal(t, "12345", jsonValueToString("12345"))
	assert.Equal(t, "12345", jsonValueToString(json.Number("12345")))
	assert.Equal(t, "true", jsonValueToString(true))
}

func TestToMapSlice(t *testing.T) {
	items := []interface{}{
		map[string]interface{}{"id": "1"},
		"not-an-object",
		map[string]interface{}{"id": "2"},
		nil,
	}

	result := toMapSlice(items)
	assert.Len(t, result, 2)
	assert.Equal(t, "1", result[0]["id"])
	assert.Equal(t, "2", result[1]["id"])
}

func newTestTakeAppClient(baseURL string) *takeAppClientImpl {
	return &takeAppClientImpl{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		apiKey:     "key",
		storeAlias: "gsn",
	}
}

func TestTakeAppCreateOrder_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)
		assert.Equal(t, "key", r.URL.Query().Get("api_key"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":12345,"number":"GSN-1"}`))
	}))
	defer srv.Close()

	result, err := newTestTakeAppClient(srv.URL).CreateOrder(context.Background(), map[string]string{
		"customer_name": "Ram Sharma",
	})
	require.NoError(t, err)
	assert.Equal(t, "12345", result.ID, "id dạng số phải được chuẩn hóa về string")
	assert.Equal(t, "GSN-1", result.Number)
}

func TestTakeAppCreateOrder_UpstreamErrorHidesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"gateway internals: order table locked"}`))
	}))
	defer srv.Close()

	result, err := newTestTakeAppClient(srv.URL).CreateOrder(context.Background(), map[string]string{})
	require.Error(t, err)
	assert.Nil(t, result)

	// Client chỉ nhận thông báo chung, body của gateway chỉ nằm trong log
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUpstreamResponse.Code, customErr.Code.Code)
	assert.Nil(t, customErr.Details)
	assert.NotContains(t, customErr.Message, "order table locked")
}

func TestTakeAppCreateOrder_NetworkErrorHidesEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := newTestTakeAppClient(srv.URL).CreateOrder(context.Background(), map[string]string{})
	require.Error(t, err)

	// Lỗi transport chứa URL kèm api_key, không được lộ ra ngoài
	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUpstreamNetwork.Code, customErr.Code.Code)
	assert.Nil(t, customErr.Details)
	assert.NotContains(t, customErr.Message, "api_key")
}

func TestTakeAppGetStore_UpstreamErrorHidesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid api key abcdef"}`))
	}))
	defer srv.Close()

	result, err := newTestTakeAppClient(srv.URL).GetStore(context.Background())
	require.Error(t, err)
	assert.Nil(t, result)

	var customErr *common.Error
	require.ErrorAs(t, err, &customErr)
	assert.Equal(t, common.ErrCodeUpstreamResponse.Code, customErr.Code.Code)
	assert.Nil(t, customErr.Details)
	assert.NotContains(t, customErr.Message, "abcdef")
}

func TestTakeAppGetOrders_HTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/orders", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"1"},{"id":"2"}]}`))
	}))
	defer srv.Close()

	orders, err := newTestTakeAppClient(srv.URL).GetOrders(context.Background())
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0]["id"])
}
