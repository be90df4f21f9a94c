package models

// SocialLink lưu liên kết mạng xã hội hiển thị ở footer
type SocialLink struct {
	ID       string `json:"id" bson:"_id"`          // ID liên kết (fb, ig, tt, wa, ...)
	Platform string `json:"platform" bson:"platform"` // Tên nền tảng
	URL      string `json:"url" bson:"url"`         // URL trang
	Icon     string `json:"icon" bson:"icon"`       // Tên icon hiển thị
}
