package dto

// PageUpdateInput là input để cập nhật nội dung trang tĩnh
type PageUpdateInput struct {
	PageKey string `json:"page_key" validate:"required"` // Khóa trang (about, terms, faq)
	Title   string `json:"title" validate:"required"`    // Tiêu đề
	Content string `json:"content" validate:"required"`  // Nội dung
}
