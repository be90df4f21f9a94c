package models

// NotificationBar lưu cấu hình thanh thông báo trên đầu trang.
// Singleton document với _id = "main".
type NotificationBar struct {
	ID        string `json:"id" bson:"_id"`                        // Luôn là "main"
	Text      string `json:"text" bson:"text"`                     // Nội dung thông báo
	Link      string `json:"link,omitempty" bson:"link,omitempty"` // Link khi bấm vào
	IsActive  bool   `json:"is_active" bson:"is_active"`           // Hiển thị hay không
	BgColor   string `json:"bg_color,omitempty" bson:"bg_color,omitempty"`     // Màu nền
	TextColor string `json:"text_color,omitempty" bson:"text_color,omitempty"` // Màu chữ
}
