package services

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"gameshop_commerce/config"
	"gameshop_commerce/core/api/dto"
	models "gameshop_commerce/core/api/models/mongodb"
	"gameshop_commerce/core/common"
	"gameshop_commerce/core/global"
	"gameshop_commerce/core/logger"
	"gameshop_commerce/core/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService xử lý luồng tạo đơn hàng qua Take.app và lưu bản sao nội bộ
type OrderService struct {
	orders  BaseServiceMongo[models.Order]
	takeapp TakeAppClient
	cfg     *config.Configuration
}

// NewOrderService tạo mới OrderService
func NewOrderService(cfg *config.Configuration, takeapp TakeAppClient) (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		orders:  NewBaseServiceMongo[models.Order](orderCollection),
		takeapp: takeapp,
		cfg:     cfg,
	}, nil
}

// FormatPhoneNumber chuẩn hóa số điện thoại Nepal về dạng có mã quốc gia 977.
// Loại bỏ ký tự không phải số, bỏ số 0 đầu, thêm 977 cho số 10 chữ số.
func FormatPhoneNumber(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			digits.WriteRune(r)
		}
	}
	result := digits.String()
	result = strings.TrimPrefix(result, "0")
	if !strings.HasPrefix(result, "977") && len(result) == 10 {
		result = "977" + result
	}
	return result
}

// BuildItemsText tạo chuỗi mô tả các mặt hàng, ví dụ "2x UC Pack (660 UC), 1x Netflix"
func BuildItemsText(items []dto.OrderItemInput) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		part := fmt.Sprintf("%dx %s", item.Quantity, item.Name)
		if item.Variation != "" {
			part += fmt.Sprintf(" (%s)", item.Variation)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}

// CreateOrder tạo đơn hàng trên Take.app rồi lưu bản sao nội bộ.
// Chỉ lưu nội bộ khi gateway đã tạo thành công, đơn không bao giờ tồn tại một nửa.
func (s *OrderService) CreateOrder(ctx context.Context, input *dto.OrderCreateInput) (*dto.OrderCreateResult, error) {
	if s.cfg.TakeAppAPIKey == "" {
		return nil, common.ErrConfigMissing
	}

	orderID := utility.NewUUID()
	formattedPhone := FormatPhoneNumber(input.CustomerPhone)

	// Số lượng bỏ trống được hiểu là 1
	orderItems := make([]dto.OrderItemInput, len(input.Items))
	copy(orderItems, input.Items)
	for i := range orderItems {
		if orderItems[i].Quantity < 1 {
			orderItems[i].Quantity = 1
		}
	}
	itemsText := BuildItemsText(orderItems)

	fullRemark := "Items: " + itemsText
	if input.Remark != "" {
		fullRemark += "\nNote: " + input.Remark
	}

	// Take.app nhận tổng tiền dạng chuỗi số nguyên (rupee, không lẻ)
	payload := map[string]string{
		"customer_name":  input.CustomerName,
		"customer_phone": formattedPhone,
		"customer_email": input.CustomerEmail,
		"total_amount":   fmt.Sprintf("%d", int(input.TotalAmount)),
		"remark":         fullRemark,
	}

	remote, err := s.takeapp.CreateOrder(ctx, payload)
	if err != nil {
		logger.GetErrorLogger().WithField("error", err.Error()).Error("Take.app order creation failed")
		return nil, err
	}

	paymentURL := fmt.Sprintf("https://take.app/%s/orders/%s/pay", s.cfg.TakeAppStoreAlias, remote.ID)

	items := make([]models.OrderItem, 0, len(orderItems))
	for _, item := range orderItems {
		items = append(items, models.OrderItem{
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
			Variation: item.Variation,
		})
	}

	order := &models.Order{
		ID:                 orderID,
		TakeAppOrderID:     remote.ID,
		TakeAppOrderNumber: remote.Number,
		CustomerName:       input.CustomerName,
		CustomerPhone:      input.CustomerPhone,
		CustomerEmail:      input.CustomerEmail,
		Items:              items,
		TotalAmount:        input.TotalAmount,
		Remark:             input.Remark,
		ItemsText:          itemsText,
		Status:             "pending",
		PaymentURL:         paymentURL,
		CreatedAt:          utility.NowISO8601(),
	}

	if _, err := s.orders.InsertOne(ctx, *order); err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithFields(map[string]interface{}{
		"order_id":         orderID,
		"takeapp_order_id": remote.ID,
	}).Info("Order created")

	return &dto.OrderCreateResult{
		Success:            true,
		OrderID:            orderID,
		TakeAppOrderID:     remote.ID,
		TakeAppOrderNumber: remote.Number,
		PaymentURL:         paymentURL,
		Message:            "Order created successfully on Take.app",
	}, nil
}

// ListOrders trả về đơn hàng nội bộ, mới nhất trước
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}).SetLimit(1000)
	return s.orders.Find(ctx, bson.M{}, opts)
}
