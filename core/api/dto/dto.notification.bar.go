package dto

// NotificationBarInput là input để cập nhật thanh thông báo
type NotificationBarInput struct {
	Text      string `json:"text" validate:"required,no_xss"` // Nội dung thông báo
	Link      string `json:"link,omitempty"`                  // Link khi bấm vào
	IsActive  bool   `json:"is_active"`                       // Hiển thị hay không
	BgColor   string `json:"bg_color,omitempty"`              // Màu nền
	TextColor string `json:"text_color,omitempty"`            // Màu chữ
}
