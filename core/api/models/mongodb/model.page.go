package models

// Page lưu nội dung trang tĩnh (about, terms, faq).
// page_key là định danh duy nhất và được dùng làm _id.
type Page struct {
	PageKey   string `json:"page_key" bson:"_id"`                            // Khóa trang
	Title     string `json:"title" bson:"title"`                             // Tiêu đề trang
	Content   string `json:"content" bson:"content"`                         // Nội dung
	UpdatedAt string `json:"updated_at,omitempty" bson:"updated_at,omitempty"` // Thời gian cập nhật (ISO 8601)
}
