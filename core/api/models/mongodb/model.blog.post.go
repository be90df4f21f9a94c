package models

// BlogPost lưu bài viết blog. Slug được sinh từ tiêu đề khi không cung cấp.
type BlogPost struct {
	ID          string `json:"id" bson:"_id"`                                  // ID bài viết
	Title       string `json:"title" bson:"title"`                             // Tiêu đề
	Slug        string `json:"slug" bson:"slug" index:"single"`                // Slug dùng trên URL
	Excerpt     string `json:"excerpt,omitempty" bson:"excerpt,omitempty"`     // Đoạn mô tả ngắn
	Content     string `json:"content" bson:"content"`                         // Nội dung bài viết
	ImageURL    string `json:"image_url,omitempty" bson:"image_url,omitempty"` // Ảnh đại diện
	IsPublished bool   `json:"is_published" bson:"is_published"`               // Đã xuất bản hay còn nháp
	CreatedAt   string `json:"created_at" bson:"created_at" index:"single;order:-1"` // Thời gian tạo
	UpdatedAt   string `json:"updated_at,omitempty" bson:"updated_at,omitempty"`     // Thời gian cập nhật
}
