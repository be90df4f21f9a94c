package dto

// SocialLinkCreateInput là input để tạo/cập nhật liên kết mạng xã hội
type SocialLinkCreateInput struct {
	Platform string `json:"platform" validate:"required"`        // Tên nền tảng
	URL      string `json:"url" validate:"required,url"`         // URL trang
	Icon     string `json:"icon,omitempty"`                      // Tên icon
}
