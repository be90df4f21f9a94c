package dto

// PaymentMethodInput là input để tạo/cập nhật phương thức thanh toán
type PaymentMethodInput struct {
	Name      string `json:"name" validate:"required,no_xss"` // Tên phương thức
	ImageURL  string `json:"image_url"`                       // Logo
	IsActive  bool   `json:"is_active"`                       // Hiển thị cho khách
	SortOrder int    `json:"sort_order"`                      // Thứ tự hiển thị
}
