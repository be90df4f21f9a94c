package models

// OrderItem là một dòng hàng trong đơn hàng
type OrderItem struct {
	Name      string  `json:"name" bson:"name"`                             // Tên sản phẩm
	Price     float64 `json:"price" bson:"price"`                           // Đơn giá
	Quantity  int     `json:"quantity" bson:"quantity"`                     // Số lượng
	Variation string  `json:"variation,omitempty" bson:"variation,omitempty"` // Biến thể (gói nạp, server, ...)
}

// Order lưu đơn hàng nội bộ, được ghi sau khi tạo đơn thành công trên Take.app
type Order struct {
	ID                 string      `json:"id" bson:"_id"`                                  // ID đơn hàng (uuid)
	TakeAppOrderID     string      `json:"takeapp_order_id" bson:"takeapp_order_id"`       // ID đơn hàng trên Take.app
	TakeAppOrderNumber string      `json:"takeapp_order_number" bson:"takeapp_order_number"` // Số đơn hàng trên Take.app
	CustomerName       string      `json:"customer_name" bson:"customer_name"`             // Tên khách hàng
	CustomerPhone      string      `json:"customer_phone" bson:"customer_phone"`           // Số điện thoại khách (bản gốc, chưa chuẩn hóa)
	CustomerEmail      string      `json:"customer_email,omitempty" bson:"customer_email,omitempty"` // Email khách hàng
	Items              []OrderItem `json:"items" bson:"items"`                             // Danh sách dòng hàng
	TotalAmount        float64     `json:"total_amount" bson:"total_amount"`               // Tổng tiền (rupee)
	Remark             string      `json:"remark,omitempty" bson:"remark,omitempty"`       // Ghi chú của khách
	ItemsText          string      `json:"items_text" bson:"items_text"`                   // Tóm tắt dòng hàng dạng text
	Status             string      `json:"status" bson:"status"`                           // Trạng thái đơn (pending, ...)
	PaymentScreenshot  string      `json:"payment_screenshot,omitempty" bson:"payment_screenshot,omitempty"` // Ảnh chụp thanh toán
	PaymentURL         string      `json:"payment_url" bson:"payment_url"`                 // URL thanh toán trên Take.app
	CreatedAt          string      `json:"created_at" bson:"created_at" index:"single;order:-1"` // Thời gian tạo (ISO 8601)
}
