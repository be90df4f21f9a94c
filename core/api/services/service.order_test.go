package services

import (
	"context"
	"errors"
	"testing"

	"gameshop_commerce/config"
	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPhoneNumber(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"số 10 chữ số được thêm mã 977", "9812345678", "9779812345678"},
		{"số 0 đầu bị bỏ trước khi thêm mã", "09812345678", "9779812345678"},
		{"số đã có mã 977 giữ nguyên", "9779812345678", "9779812345678"},
		{"ký tự không phải số bị loại bỏ", "+977 981-234-5678", "9779812345678"},
		{"số ngắn không bị thêm mã", "12345", "12345"},
		{"chuỗi rỗng trả về rỗng", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatPhoneNumber(tc.input))
		})
	}
}

func TestBuildItemsText(t *testing.T) {
	items := []dto.OrderItemInput{
		{Name: "UC Pack", Quantity: 2, Variation: "660 UC"},
		{Name: "Netflix", Quantity: 1},
	}
	assert.Equal(t, "2x UC Pack (660 UC), 1x Netflix", BuildItemsText(items))
	assert.Equal(t, "", BuildItemsText(nil))
}

func newOrderInput() *dto.OrderCreateInput {
	return &dto.OrderCreateInput{
		CustomerName:  "Ram Sharma",
		CustomerPhone: "9812345678",
		CustomerEmail: "ram@example.com",
		Items: []dto.OrderItemInput{
			{Name: "UC Pack", Price: 750, Quantity: 2, Variation: "660 UC"},
		},
		TotalAmount: 1500,
		Remark:      "Giao nhanh giúp",
	}
}

func TestCreateOrder_Success(t *testing.T) {
	var inserted []models.Order
	var sentPayload map[string]string

	svc := &OrderService{
		orders: &stubBaseService[models.Order]{
			insertOneFn: func(ctx context.Context, data models.Order) (models.Order, error) {
				inserted = append(inserted, data)
				return data, nil
			},
		},
		takeapp: &stubTakeAppClient{
			createOrderFn: func(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error) {
				sentPayload = payload
				return &TakeAppCreateOrderResult{ID: "12345", Number: "GSN-1"}, nil
			},
		},
		cfg: &config.Configuration{TakeAppAPIKey: "key", TakeAppStoreAlias: "gsn"},
	}

	result, err := svc.CreateOrder(context.Background(), newOrderInput())
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.True(t, result.Success)
	assert.Equal(t, "12345", result.TakeAppOrderID)
	assert.Equal(t, "GSN-1", result.TakeAppOrderNumber)
	assert.Equal(t, "https://take.app/gsn/orders/12345/pay", result.PaymentURL)

	// Payload gửi sang gateway: phone đã chuẩn hóa, tổng tiền là chuỗi số nguyên
	require.NotNil(t, sentPayload)
	assert.Equal(t, "9779812345678", sentPayload["customer_phone"])
	assert.Equal(t, "1500", sentPayload["total_amount"])
	assert.Equal(t, "Items: 2x UC Pack (660 UC)\nNote: Giao nhanh giúp", sentPayload["remark"])

	// Bản sao nội bộ được lưu với trạng thái pending
	require.Len(t, inserted, 1)
	assert.Equal(t, "pending", inserted[0].Status)
	assert.Equal(t, "2x UC Pack (660 UC)", inserted[0].ItemsText)
	assert.Equal(t, "12345", inserted[0].TakeAppOrderID)
	assert.NotEmpty(t, inserted[0].ID)
	assert.NotEmpty(t, inserted[0].CreatedAt)
}

func TestCreateOrder_MissingAPIKey(t *testing.T) {
	insertCalls := 0
	svc := &OrderService{
		orders: &stubBaseService[models.Order]{
			insertOneFn: func(ctx context.Context, data models.Order) (models.Order, error) {
				insertCalls++
				return data, nil
			},
		},
		takeapp: &stubTakeAppClient{
			createOrderFn: func(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error) {
				t.Fatal("không được gọi gateway khi thiếu API key")
				return nil, nil
			},
		},
		cfg: &config.Configuration{TakeAppStoreAlias: "gsn"},
	}

	result, err := svc.CreateOrder(context.Background(), newOrderInput())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, common.ErrConfigMissing)
	assert.Equal(t, 0, insertCalls, "không được lưu đơn khi thiếu cấu hình")
}

func TestCreateOrder_GatewayFailure(t *testing.T) {
	insertCalls := 0
	gatewayErr := errors.New("take.app unavailable")

	svc := &OrderService{
		orders: &stubBaseService[models.Order]{
			insertOneFn: func(ctx context.Context, data models.Order) (models.Order, error) {
				insertCalls++
				return data, nil
			},
		},
		takeapp: &stubTakeAppClient{
			createOrderFn: func(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error) {
				return nil, gatewayErr
			},
		},
		cfg: &config.Configuration{TakeAppAPIKey: "key", TakeAppStoreAlias: "gsn"},
	}

	result, err := svc.CreateOrder(context.Background(), newOrderInput())
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, 0, insertCalls, "không được lưu đơn khi gateway thất bại")
}

func TestCreateOrder_DefaultsQuantity(t *testing.T) {
	var inserted []models.Order
	var sentPayload map[string]string

	svc := &OrderService{
		orders: &stubBaseService[models.Order]{
			insertOneFn: func(ctx context.Context, data models.Order) (models.Order, error) {
				inserted = append(inserted, data)
				return data, nil
			},
		},
		takeapp: &stubTakeAppClient{
			createOrderFn: func(ctx context.Context, payload map[string]string) (*TakeAppCreateOrderResult, error) {
				sentPayload = payload
				return &TakeAppCreateOrderResult{ID: "12345", Number: "GSN-2"}, nil
			},
		},
		cfg: &config.Configuration{TakeAppAPIKey: "key", TakeAppStoreAlias: "gsn"},
	}

	input := newOrderInput()
	input.Items = []dto.OrderItemInput{{Name: "Netflix", Price: 500}}
	input.TotalAmount = 500
	input.Remark = ""

	result, err := svc.CreateOrder(context.Background(), input)
	require.NoError(t, err)
	require.NotNil(t, result)

	// Số lượng bỏ trống được hiểu là 1, cả trong remark lẫn bản sao nội bộ
	assert.Equal(t, "Items: 1x Netflix", sentPayload["remark"])
	require.Len(t, inserted, 1)
	require.Len(t, inserted[0].Items, 1)
	assert.Equal(t, 1, inserted[0].Items[0].Quantity)
	assert.Equal(t, "1x Netflix", inserted[0].ItemsText)
}
