package dto

// OrderItemInput là một dòng hàng trong yêu cầu tạo đơn
type OrderItemInput struct {
	Name      string  `json:"name" validate:"required"`  // Tên sản phẩm
	Price     float64 `json:"price" validate:"gte=0"`    // Đơn giá
	Quantity  int     `json:"quantity" validate:"gte=0"` // Số lượng (bỏ trống được hiểu là 1)
	Variation string  `json:"variation,omitempty"`       // Biến thể
}

// OrderCreateInput là input để tạo đơn hàng
type OrderCreateInput struct {
	CustomerName  string           `json:"customer_name" validate:"required,no_xss"` // Tên khách hàng
	CustomerPhone string           `json:"customer_phone" validate:"required"`       // Số điện thoại khách
	CustomerEmail string           `json:"customer_email,omitempty" validate:"omitempty,email"` // Email khách
	Items         []OrderItemInput `json:"items" validate:"required,min=1,dive"`     // Danh sách dòng hàng
	TotalAmount   float64          `json:"total_amount" validate:"gte=0"`            // Tổng tiền (rupee)
	Remark        string           `json:"remark,omitempty"`                         // Ghi chú của khách
}

// OrderCreateResult là kết quả tạo đơn hàng thành công
type OrderCreateResult struct {
	Success            bool   `json:"success"`              // Luôn true khi thành công
	OrderID            string `json:"order_id"`             // ID đơn hàng nội bộ
	TakeAppOrderID     string `json:"takeapp_order_id"`     // ID đơn hàng trên Take.app
	TakeAppOrderNumber string `json:"takeapp_order_number"` // Số đơn hàng trên Take.app
	PaymentURL         string `json:"payment_url"`          // URL thanh toán
	Message            string `json:"message"`              // Thông báo kết quả
}
