package dto

// BlogPostInput là input để tạo/cập nhật bài viết blog
type BlogPostInput struct {
	Title       string `json:"title" validate:"required,no_xss"` // Tiêu đề
	Slug        string `json:"slug,omitempty"`                   // Slug (sinh từ tiêu đề nếu rỗng)
	Excerpt     string `json:"excerpt"`                          // Đoạn mô tả ngắn
	Content     string `json:"content" validate:"required"`      // Nội dung
	ImageURL    string `json:"image_url,omitempty"`              // Ảnh đại diện
	IsPublished bool   `json:"is_published"`                     // Xuất bản ngay hay lưu nháp
}
